package middleware

import (
	"log/slog"

	deliverycontext "contactlog/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds a client-supplied request ID.
const maxRequestIDLength = 64

// RequestIDMiddleware tags every request with an ID and a logger carrying it.
// The ID travels back in X-Request-Id and in error envelopes, and is stamped
// on the contact events the request causes.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed client request ID or generates one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short IDs made of URL-safe characters, so a forwarded
// header cannot inject line breaks into logs or event attributes.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}

	return true
}
