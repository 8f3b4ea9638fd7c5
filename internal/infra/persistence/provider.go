// Package persistence selects the contact store backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"contactlog/config"
	"contactlog/internal/domain/repository"
	"contactlog/internal/infra/persistence/mongodb"
	"contactlog/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the contact repository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewContactRepository builds the repository for the configured store driver.
// The document store connects lazily on first use; the relational store is
// opened and migrated when the application starts.
func NewContactRepository(params RepositoryParams) (repository.ContactRepository, error) {
	logger := params.Logger

	switch params.Config.Store.Driver {
	case "", config.StoreDriverMongo:
		conn := mongodb.NewConnection(params.Config.Mongo, logger)
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return conn.Close(ctx)
			},
		})
		logger.Info("Using MongoDB contact store",
			slog.String("database", params.Config.Mongo.Database),
			slog.String("collection", params.Config.Mongo.Collection),
		)

		return mongodb.NewContactRepository(conn), nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL contact store")

		return postgres.NewContactRepository(db), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewContactRepository),
)
