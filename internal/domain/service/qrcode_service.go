package service

import "contactlog/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactQR renders the contact as a vCard QR code PNG
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}
