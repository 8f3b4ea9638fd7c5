package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"contactlog/config"
	deliverycontext "contactlog/internal/delivery/context"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one line per request. In debug every request is
// logged; otherwise only responses with status 400 and above.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// The central error handler has not written the response yet, so the
		// status of a failed request comes from the error itself.
		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}
		if m.debug || status >= 400 {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_in", req.ContentLength),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, slog.String("contact_id", id))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

// statusOf predicts the status the central error handler will answer err with.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
