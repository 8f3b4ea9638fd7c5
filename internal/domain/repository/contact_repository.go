// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"contactlog/internal/domain/entity"
	"contactlog/internal/errors"
)

// Domain-specific errors for contact persistence.
var (
	// ErrMissingConnectionString is returned by every store operation when no connection string was supplied.
	ErrMissingConnectionString = errors.New("store connection string is not configured")
	// ErrInvalidContactID is returned when an identifier cannot be interpreted by the store.
	ErrInvalidContactID = errors.New("invalid contact id")
)

// ContactRepository defines the interface for contact document operations.
// Lookups by an unknown identifier return (nil, nil) rather than an error.
type ContactRepository interface {
	// Find returns all contacts in store order.
	Find(ctx context.Context) ([]*entity.Contact, error)

	// FindByID returns the contact with the given id, or nil if absent.
	FindByID(ctx context.Context, id string) (*entity.Contact, error)

	// Create persists a new contact and returns it with a store-assigned id.
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// UpdateByID replaces the full document matching id and returns the new version, or nil if absent.
	UpdateByID(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error)

	// DeleteByID removes the document matching id and returns it, or nil if absent.
	DeleteByID(ctx context.Context, id string) (*entity.Contact, error)

	// ReplaceAll clears the collection and inserts contacts.
	ReplaceAll(ctx context.Context, contacts []*entity.Contact) error
}
