package qrcode

import (
	"strings"

	"contactlog/internal/domain/entity"
	"contactlog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContactQR encodes the contact as a vCard 3.0 and renders it as PNG
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	if contact == nil {
		return nil, errors.New("contact is required")
	}

	qrCode, err := qrcode.New(VCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// VCard renders the contact as a vCard 3.0 document.
func VCard(contact *entity.Contact) string {
	var b strings.Builder
	line := func(parts ...string) {
		b.WriteString(strings.Join(parts, ""))
		b.WriteString("\r\n")
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("N:", escape(contact.Name.LastName), ";", escape(contact.Name.FirstName), ";;;")
	line("FN:", escape(contact.FullName()))
	if contact.Email != "" {
		line("EMAIL;TYPE=INTERNET:", escape(contact.Email))
	}
	if contact.PhoneNumber != "" {
		line("TEL;TYPE=CELL:", escape(contact.PhoneNumber))
	}
	street := strings.TrimSpace(contact.Address.Street + " " + contact.Address.HouseNumber)
	line("ADR;TYPE=HOME:;;", escape(street), ";", escape(contact.Address.City), ";;", escape(contact.Address.ZipCode), ";")
	line("END:VCARD")

	return b.String()
}

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

func escape(value string) string {
	return vcardEscaper.Replace(value)
}
