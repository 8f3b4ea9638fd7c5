package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactlog/config"
	"contactlog/internal/delivery/api/router"
	"contactlog/internal/delivery/api/router/handler"
	mockUsecase "contactlog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newEcho(cfg, logger, router.RouterParams{
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{
			ContactUC: mockUsecase.NewMockContactUsecase(t),
			Logger:    logger,
		}),
	})
}

func TestNewEcho_RequestIDHeader(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewEcho_Preflight(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPatch)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPatch)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(`{"email":"`+strings.Repeat("a", 2048)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/boom", func(echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "boom")
}
