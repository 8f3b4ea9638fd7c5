package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"contactlog/config"
	"contactlog/internal/domain/lifecycle"
	"contactlog/internal/errors"
	"contactlog/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client backing the relational contact store.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is required when store.driver is postgres")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes open their own transactions in the repository.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.ContactModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate contacts table")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool reports connection-pool contention. Every contact request
// is a single short statement or transaction, so any wait means the pool is
// undersized for the request rate.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Contact store pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool snapshots. ok is false when nobody waited.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.String("store", "postgres"),
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
