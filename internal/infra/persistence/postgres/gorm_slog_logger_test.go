package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"contactlog/config"
	deliverycontext "contactlog/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_ParamsHiddenOutsideDebug(t *testing.T) {
	l, _ := newTestGormLogger(false)
	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO contacts VALUES ($1)", "peter@example.com")
	assert.Equal(t, "INSERT INTO contacts VALUES ($1)", sql)
	assert.Nil(t, params)

	l, _ = newTestGormLogger(true)
	_, params = l.ParamsFilter(context.Background(), "INSERT INTO contacts VALUES ($1)", "peter@example.com")
	assert.Equal(t, []any{"peter@example.com"}, params)
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_Classification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		begin time.Time
		want  string
	}{
		{name: "failure", err: errors.New("connection reset"), begin: time.Now(), want: "level=ERROR"},
		{name: "constraint", err: errors.New(`ERROR: null value in column "email" (SQLSTATE 23502)`), begin: time.Now(), want: "GORM constraint violation"},
		{name: "slow", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(false)

			l.Trace(context.Background(), tt.begin, sqlFn("SELECT * FROM contacts"), tt.err)

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "store=postgres")
		})
	}
}

func TestGormLogger_FastQueriesOnlyInDebug(t *testing.T) {
	l, buf := newTestGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String())

	l, buf = newTestGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newTestGormLogger(false)
	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "r-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn("DELETE FROM contacts"), errors.New("boom"))

	assert.Contains(t, reqBuf.String(), "request_id=r-7")
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWait(prev, prev)
	assert.False(t, ok)

	level, attrs, ok := poolWait(prev, sql.DBStats{WaitCount: 5, WaitDuration: 20 * time.Millisecond, MaxOpenConnections: 4})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))

	level, _, ok = poolWait(prev, sql.DBStats{WaitCount: 4, WaitDuration: time.Second})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
