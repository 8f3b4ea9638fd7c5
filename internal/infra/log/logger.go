package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"contactlog/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the server logger writing to stdout
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(params.Config, os.Stdout)
}

// NewWithWriter creates a logger honouring env.log writing to w.
// The terminal client uses it to keep log lines off the screen it draws on.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Env.Log.Pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// parseLogLevel converts string log level to slog.Level; empty means info
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
