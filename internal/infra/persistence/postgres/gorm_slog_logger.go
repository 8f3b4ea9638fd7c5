package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"contactlog/config"
	deliverycontext "contactlog/internal/delivery/context"
	"contactlog/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped slog logger so
// every statement carries the request ID. Bound parameters hold contact data
// (names, email, phone, address) and are only printed in debug mode.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	showParams    bool
}

var (
	_ logger.Interface  = (*gormSlogLogger)(nil)
	_ gorm.ParamsFilter = (*gormSlogLogger)(nil)
)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) *gormSlogLogger {
	debug := cfg != nil && cfg.Env.Debug
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
		showParams:    debug,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops bound values from logged SQL unless debugging.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.showParams {
		return sql, params
	}

	return sql, nil
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("store", "postgres"),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify picks how a finished statement is reported. A missing row is the
// normal answer for an unknown contact id and is never reported as a failure.
// Constraint violations are rejected contacts, not outages, and log as warnings.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelDebug, "GORM query", l.level >= logger.Info
	case err != nil && isConstraintViolation(err):
		return slog.LevelWarn, "GORM constraint violation", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "GORM query failed", l.level >= logger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "GORM slow query", l.level >= logger.Warn
	default:
		return slog.LevelDebug, "GORM query", l.level >= logger.Info
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
