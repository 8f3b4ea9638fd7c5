// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contactlog/internal/domain/entity"
)

// ContactUsecase defines the contact operations the delivery layer depends on.
//
// Update and Delete return a nil contact for an unknown id unless the service
// runs with strict not-found handling, in which case they fail with
// errors.ErrContactNotFound.
type ContactUsecase interface {
	// List returns every contact in store order
	List(ctx context.Context) ([]*entity.Contact, error)

	// Get returns one contact; an unknown id is always ErrContactNotFound
	Get(ctx context.Context, id string) (*entity.Contact, error)

	// Create persists a draft and returns it with its store-assigned id
	Create(ctx context.Context, draft *entity.Contact) (*entity.Contact, error)

	// Update replaces the full record stored under id
	Update(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error)

	// Delete removes the record stored under id and returns it
	Delete(ctx context.Context, id string) (*entity.Contact, error)

	// Seed replaces every contact with the fixture set and returns the new contents
	Seed(ctx context.Context) ([]*entity.Contact, error)

	// QRCode renders the contact as a vCard QR code PNG
	QRCode(ctx context.Context, id string) ([]byte, error)
}
