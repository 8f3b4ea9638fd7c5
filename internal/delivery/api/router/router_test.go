package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "contactlog/internal/delivery/api/middleware"
	"contactlog/internal/delivery/api/response"
	"contactlog/internal/delivery/api/router/handler"
	"contactlog/internal/delivery/api/validator"
	"contactlog/internal/delivery/middleware"
	"contactlog/internal/domain/entity"
	domainerrors "contactlog/internal/domain/errors"
	mockUsecase "contactlog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockContactUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	contactUC := mockUsecase.NewMockContactUsecase(t)

	e := echo.New()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	NewRouter(RouterParams{
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{
			ContactUC: contactUC,
			Logger:    logger,
		}),
	}).RegisterRoutes(e)

	return e, contactUC
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sampleContact(id string) *entity.Contact {
	return &entity.Contact{
		ID:          id,
		Name:        entity.Name{FirstName: "Peter", LastName: "Parker"},
		Email:       "peter@example.com",
		PhoneNumber: "01701234567",
		Address: entity.Address{
			Street: "Ingram Street", HouseNumber: "20", City: "Queens", ZipCode: "11375",
		},
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestListContacts(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().List(mock.Anything).Return([]*entity.Contact{sampleContact("a")}, nil)

	rec := do(e, http.MethodGet, "/api/contacts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var contacts []entity.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "a", contacts[0].ID)
	assert.Contains(t, rec.Body.String(), `"_id":"a"`)
	assert.Contains(t, rec.Body.String(), `"phoneNumber":"01701234567"`)
}

func TestListContacts_EmptyIsArray(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().List(mock.Anything).Return(nil, nil)

	rec := do(e, http.MethodGet, "/api/contacts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListContacts_StoreFailure(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().List(mock.Anything).
		Return(nil, domainerrors.NewPersistenceError(errors.New("connection refused"), "failed to find contacts"))

	rec := do(e, http.MethodGet, "/api/contacts", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PERSISTENCE_FAILED", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCreateContact(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.Name.FirstName == "Peter" && c.Address.ZipCode == "11375"
		})).
		Return(sampleContact("new"), nil)

	payload, err := json.Marshal(sampleContact(""))
	require.NoError(t, err)
	rec := do(e, http.MethodPost, "/api/contacts", string(payload))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"new"`)
}

func TestCreateContact_MalformedBody(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/contacts", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUpdateContact(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().Update(mock.Anything, "a", mock.AnythingOfType("*entity.Contact")).Return(sampleContact("a"), nil)

	payload, err := json.Marshal(sampleContact("a"))
	require.NoError(t, err)
	rec := do(e, http.MethodPatch, "/api/contacts", string(payload))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"a"`)
}

func TestUpdateContact_MissingID(t *testing.T) {
	e, _ := newTestServer(t)

	payload, err := json.Marshal(sampleContact(""))
	require.NoError(t, err)
	rec := do(e, http.MethodPatch, "/api/contacts", string(payload))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownIDAnswersNull(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().Update(mock.Anything, "gone", mock.Anything).Return(nil, nil)
	contactUC.EXPECT().Delete(mock.Anything, "gone").Return(nil, nil)

	payload, err := json.Marshal(sampleContact("gone"))
	require.NoError(t, err)

	rec := do(e, http.MethodPatch, "/api/contacts", string(payload))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = do(e, http.MethodDelete, "/api/contacts", `{"_id":"gone"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestStrictNotFound(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().Delete(mock.Anything, "gone").
		Return(nil, domainerrors.ErrContactNotFound.WrapMessage("delete: no contact with id gone"))

	rec := do(e, http.MethodDelete, "/api/contacts", `{"_id":"gone"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CONTACT_NOT_FOUND", body.Error.Code)
}

func TestDeleteContact(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().Delete(mock.Anything, "a").Return(sampleContact("a"), nil)

	rec := do(e, http.MethodDelete, "/api/contacts", `{"_id":"a"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"a"`)
}

func TestDeleteContact_MissingID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodDelete, "/api/contacts", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactQRCode(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().QRCode(mock.Anything, "a").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec := do(e, http.MethodGet, "/api/contacts/a/qrcode", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestFillDB(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().Seed(mock.Anything).Return([]*entity.Contact{sampleContact("1"), sampleContact("2")}, nil)

	rec := do(e, http.MethodGet, "/api/fillDB", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.SeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Contacts, 2)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e, contactUC := newTestServer(t)
	contactUC.EXPECT().List(mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("X-Request-Id", "trace-me")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-me", rec.Header().Get("X-Request-Id"))
}
