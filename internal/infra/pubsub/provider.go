package pubsub

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"contactlog/config"
	"contactlog/internal/domain/entity"
	"contactlog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishContactEvent(ctx context.Context, event *entity.ContactEvent) error {
	p.logger.DebugContext(ctx, "Contact event dropped",
		slog.String("event_type", string(event.Type)),
		slog.String("contact_id", event.ContactID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the contact event sink from pubsub.provider.
// Without a provider the server still runs; events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger

	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, logger)
	if err != nil {
		return nil, errors.Wrap(err, "contact event publisher")
	}
	if _, disabled := publisher.(*noopPublisher); disabled {
		return publisher, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing contact event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	provider := ""
	if cfg != nil {
		provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	}

	switch provider {
	case "":
		logger.Info("Contact events disabled, no pubsub provider configured")

		return &noopPublisher{logger: logger}, nil

	case config.PubSubProviderLocal:
		endpoint, err := url.Parse(cfg.LocalEndpoint)
		if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
			return nil, errors.Errorf("local provider needs an http(s) localEndpoint, got %q", cfg.LocalEndpoint)
		}
		logger.Info("Pushing contact events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("google provider needs projectId and topicId")
		}
		logger.Info("Publishing contact events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
