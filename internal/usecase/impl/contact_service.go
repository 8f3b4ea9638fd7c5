// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"contactlog/config"
	deliverycontext "contactlog/internal/delivery/context"
	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/repository"
	"contactlog/internal/domain/service"
	"contactlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo    repository.ContactRepository
	publisher      service.EventPublisher
	qrcodeService  service.QRCodeService
	fixtures       service.FixtureSource
	strictNotFound bool
	now            func() time.Time
	logger         *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo   repository.ContactRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Fixtures      service.FixtureSource
	Config        *config.Config
	Logger        *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	strictNotFound := false
	if params.Config != nil {
		strictNotFound = params.Config.API.StrictNotFound
	}

	return &contactService{
		contactRepo:    params.ContactRepo,
		publisher:      params.Publisher,
		qrcodeService:  params.QRCodeService,
		fixtures:       params.Fixtures,
		strictNotFound: strictNotFound,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all contacts.
func (srv *contactService) List(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.Find(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list contacts", slog.Any("error", err))

		return nil, err
	}

	return contacts, nil
}

// Get returns a single contact.
func (srv *contactService) Get(ctx context.Context, id string) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domainerrors.ErrContactNotFound.WrapMessage("no contact with id " + id)
	}

	return contact, nil
}

// Create persists a draft. The store enforces the schema; the id the caller sent, if any, is ignored.
func (srv *contactService) Create(ctx context.Context, draft *entity.Contact) (*entity.Contact, error) {
	if draft == nil {
		return nil, domainerrors.ErrInvalidContactInput.WrapMessage("contact body is required")
	}

	candidate := draft.Clone()
	candidate.ID = ""

	created, err := srv.contactRepo.Create(ctx, candidate)
	if err != nil {
		srv.log(ctx).Warn("Failed to create contact", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Contact created", slog.String("contactID", created.ID))
	srv.publish(ctx, entity.ContactCreated, created.ID, created)

	return created, nil
}

// Update replaces the record under id. An unknown id yields a nil contact
// unless strict not-found handling is enabled.
func (srv *contactService) Update(ctx context.Context, id string, contact *entity.Contact) (*entity.Contact, error) {
	if contact == nil {
		return nil, domainerrors.ErrInvalidContactInput.WrapMessage("contact body is required")
	}

	replacement := contact.Clone()
	replacement.ID = id

	updated, err := srv.contactRepo.UpdateByID(ctx, id, replacement)
	if err != nil {
		srv.log(ctx).Warn("Failed to update contact", slog.String("contactID", id), slog.Any("error", err))

		return nil, err
	}
	if updated == nil {
		return nil, srv.missing(ctx, "update", id)
	}

	srv.log(ctx).Info("Contact updated", slog.String("contactID", id))
	srv.publish(ctx, entity.ContactUpdated, id, updated)

	return updated, nil
}

// Delete removes the record under id and returns it.
func (srv *contactService) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	removed, err := srv.contactRepo.DeleteByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete contact", slog.String("contactID", id), slog.Any("error", err))

		return nil, err
	}
	if removed == nil {
		return nil, srv.missing(ctx, "delete", id)
	}

	srv.log(ctx).Info("Contact deleted", slog.String("contactID", id))
	srv.publish(ctx, entity.ContactDeleted, id, removed)

	return removed, nil
}

// Seed replaces the whole collection with the fixture set.
func (srv *contactService) Seed(ctx context.Context) ([]*entity.Contact, error) {
	fixtures, err := srv.fixtures.LoadContacts(ctx)
	if err != nil {
		return nil, err
	}

	if err := srv.contactRepo.ReplaceAll(ctx, fixtures); err != nil {
		srv.log(ctx).Error("Failed to seed contacts", slog.Any("error", err))

		return nil, err
	}

	contacts, err := srv.contactRepo.Find(ctx)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contacts seeded", slog.Int("count", len(contacts)))

	return contacts, nil
}

// QRCode renders the stored contact as a vCard QR code.
func (srv *contactService) QRCode(ctx context.Context, id string) ([]byte, error) {
	contact, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateContactQR(contact)
	if err != nil {
		srv.log(ctx).Error("Failed to generate contact QR code", slog.String("contactID", id), slog.Any("error", err))

		return nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}

// missing maps a NotFoundResult from the store to the configured outcome.
func (srv *contactService) missing(ctx context.Context, op, id string) error {
	srv.log(ctx).Debug("Contact not found", slog.String("op", op), slog.String("contactID", id))

	if srv.strictNotFound {
		return domainerrors.ErrContactNotFound.WrapMessage(op + ": no contact with id " + id)
	}

	return nil
}

// publish emits a lifecycle event. Failures are logged and never reach the caller.
func (srv *contactService) publish(ctx context.Context, eventType entity.ContactEventType, id string, contact *entity.Contact) {
	event := &entity.ContactEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ContactID:  id,
		Contact:    contact,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishContactEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact event",
			slog.String("eventType", string(eventType)),
			slog.String("contactID", id),
			slog.Any("error", errors.WithStack(err)),
		)
	}
}
