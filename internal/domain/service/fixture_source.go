package service

import (
	"context"

	"contactlog/internal/domain/entity"
)

// FixtureSource supplies the contacts written by the bulk seed.
type FixtureSource interface {
	LoadContacts(ctx context.Context) ([]*entity.Contact, error)
}
