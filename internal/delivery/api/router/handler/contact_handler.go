package handler

import (
	"log/slog"
	"net/http"

	"contactlog/internal/delivery/api/response"
	"contactlog/internal/domain/entity"
	"contactlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the contact resource
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactIDRequest carries the identifier of the record an update or delete targets
type ContactIDRequest struct {
	ID string `json:"_id" validate:"required"`
}

// SeedResponse is the body of the bulk seed endpoint
type SeedResponse struct {
	Contacts []*entity.Contact `json:"contacts"`
}

// ListContacts returns every contact as a JSON array
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusOK, nonNil(contacts))
}

// GetContact returns one contact
func (h *ContactHandler) GetContact(c echo.Context) error {
	contact, err := h.contactUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusOK, contact)
}

// CreateContact persists a draft; the store's schema is the only validation
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var draft entity.Contact
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact payload")
	}

	created, err := h.contactUC.Create(c.Request().Context(), &draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusCreated, created)
}

// UpdateContact replaces the record named by the body's _id.
// An unknown id answers 200 with a null body unless strict not-found handling is on.
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	var contact entity.Contact
	if err := c.Bind(&contact); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact payload")
	}

	if err := c.Validate(&ContactIDRequest{ID: contact.ID}); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "_id is required")
	}

	updated, err := h.contactUC.Update(c.Request().Context(), contact.ID, &contact)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusOK, updated)
}

// DeleteContact removes the record named by the body's _id and returns it, or null
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	var req ContactIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "_id is required")
	}

	removed, err := h.contactUC.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusOK, removed)
}

// ContactQRCode renders the contact as a vCard QR code PNG
func (h *ContactHandler) ContactQRCode(c echo.Context) error {
	png, err := h.contactUC.QRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FillDB clears the store and reloads the fixture set
func (h *ContactHandler) FillDB(c echo.Context) error {
	contacts, err := h.contactUC.Seed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Document(c, http.StatusOK, SeedResponse{Contacts: nonNil(contacts)})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func nonNil(contacts []*entity.Contact) []*entity.Contact {
	if contacts == nil {
		return []*entity.Contact{}
	}

	return contacts
}
