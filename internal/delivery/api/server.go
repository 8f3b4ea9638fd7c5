package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"contactlog/config"
	"contactlog/internal/delivery"
	apimiddleware "contactlog/internal/delivery/api/middleware"
	"contactlog/internal/delivery/api/router"
	"contactlog/internal/delivery/api/validator"
	"contactlog/internal/delivery/middleware"
	"contactlog/internal/domain/lifecycle"
	"contactlog/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// contactMethods are the verbs the contact resource answers to.
var contactMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

type contactServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &contactServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   newEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho assembles the middleware chain and the contact routes.
// Recovery runs outermost and the request id is set before anything logs.
func newEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  contactMethods,
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	// Envelopes only; contact fields are checked by the store.
	e.Validator = validator.New()

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}

func (s *contactServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "Contact API listening",
		slog.String("addr", addr),
		slog.String("store", s.cfg.Store.Driver),
	)

	h2s := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.echo.StartH2CServer(addr, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "contact API server")
	}

	return nil
}

func (s *contactServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Contact API shutting down")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
