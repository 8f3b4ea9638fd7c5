// Package postgres contains the relational implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/repository"
	"contactlog/internal/domain/validation"
	"contactlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const seedBatchSize = 100

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Find returns every contact in insertion order.
func (repo *contactRepository) Find(ctx context.Context) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&contactModels).Error; err != nil {
		return nil, toPersistenceError(err, "failed to find contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// FindByID returns one contact or nil if absent.
func (repo *contactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	contactM, err := findModel(ctx, repo.db, uid)
	if err != nil || contactM == nil {
		return nil, err
	}

	return toContactDomain(contactM), nil
}

// Create persists a new contact under a fresh time-ordered UUID.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if err := checkSchema(contact); err != nil {
		return nil, err
	}

	contactM, err := newContactModel(contact)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return nil, toPersistenceError(err, "failed to create contact")
	}

	return toContactDomain(contactM), nil
}

// UpdateByID replaces every field of an existing contact.
func (repo *contactRepository) UpdateByID(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(contact); err != nil {
		return nil, err
	}

	var updated *model.ContactModel
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findModel(ctx, tx, uid)
		if err != nil || existing == nil {
			return err
		}

		replacement := fromContactDomain(contact)
		replacement.ID = existing.ID
		replacement.CreatedAt = existing.CreatedAt
		if err := tx.Save(replacement).Error; err != nil {
			return toPersistenceError(err, "failed to update contact")
		}
		updated = replacement

		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	return toContactDomain(updated), nil
}

// DeleteByID removes a contact and returns what was removed.
func (repo *contactRepository) DeleteByID(ctx context.Context, id string) (*entity.Contact, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var removed *model.ContactModel
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findModel(ctx, tx, uid)
		if err != nil || existing == nil {
			return err
		}

		if err := tx.Delete(&model.ContactModel{}, "id = ?", existing.ID).Error; err != nil {
			return toPersistenceError(err, "failed to delete contact")
		}
		removed = existing

		return nil
	})
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, nil
	}

	return toContactDomain(removed), nil
}

// ReplaceAll empties the table and inserts contacts in one transaction.
func (repo *contactRepository) ReplaceAll(ctx context.Context, contacts []*entity.Contact) error {
	contactModels := make([]*model.ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		if err := checkSchema(contact); err != nil {
			return err
		}
		contactM, err := newContactModel(contact)
		if err != nil {
			return err
		}
		contactModels = append(contactModels, contactM)
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ContactModel{}).Error; err != nil {
			return toPersistenceError(err, "failed to clear contacts")
		}

		if len(contactModels) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(contactModels, seedBatchSize).Error; err != nil {
			return toPersistenceError(err, "failed to insert contacts")
		}

		return nil
	})
}

func findModel(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ContactModel, error) {
	var contactM model.ContactModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, toPersistenceError(err, "failed to find contact by id")
	}

	return &contactM, nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.NewPersistenceError(
			errors.Wrap(repository.ErrInvalidContactID, err.Error()),
			"contact id must be a UUID",
		)
	}

	return uid, nil
}

func newContactModel(contact *entity.Contact) (*model.ContactModel, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to generate contact id")
	}

	contactM := fromContactDomain(contact)
	contactM.ID = id

	return contactM, nil
}

func checkSchema(contact *entity.Contact) error {
	if contact == nil {
		return domainerrors.NewPersistenceError(nil, "contact is required")
	}
	if fieldErrs := validation.CheckSchema(contact); len(fieldErrs) > 0 {
		return domainerrors.NewPersistenceError(fieldErrs, "contact validation failed")
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(contactM *model.ContactModel) *entity.Contact {
	if contactM == nil {
		return nil
	}

	return &entity.Contact{
		ID: contactM.ID.String(),
		Name: entity.Name{
			FirstName: contactM.FirstName,
			LastName:  contactM.LastName,
		},
		Email:       contactM.Email,
		PhoneNumber: contactM.PhoneNumber,
		Address: entity.Address{
			Street:      contactM.Street,
			HouseNumber: contactM.HouseNumber,
			City:        contactM.City,
			ZipCode:     contactM.ZipCode,
		},
	}
}

func fromContactDomain(contact *entity.Contact) *model.ContactModel {
	if contact == nil {
		return nil
	}

	return &model.ContactModel{
		FirstName:   contact.Name.FirstName,
		LastName:    contact.Name.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		Street:      contact.Address.Street,
		HouseNumber: contact.Address.HouseNumber,
		City:        contact.Address.City,
		ZipCode:     contact.Address.ZipCode,
	}
}
