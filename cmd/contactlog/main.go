package main

import (
	"context"
	"log/slog"
	"os"

	"contactlog/config"
	"contactlog/internal/delivery"
	"contactlog/internal/delivery/api"
	"contactlog/internal/delivery/api/router/handler"
	"contactlog/internal/domain/service"
	"contactlog/internal/infra/fixture"
	logs "contactlog/internal/infra/log"
	"contactlog/internal/infra/persistence"
	"contactlog/internal/infra/pubsub"
	"contactlog/internal/infra/qrcode"
	"contactlog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
			fixture.NewSource,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContactService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
