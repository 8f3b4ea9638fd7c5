package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"contactlog/internal/domain/entity"
	"contactlog/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub.
// Events of one contact share an ordering key, so subscribers see a contact's
// created, updated and deleted events in the order they happened.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher bound to an existing topic
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishContactEvent publishes the event and waits for the server ack
func (p *googlePubSubPublisher) PublishContactEvent(ctx context.Context, event *entity.ContactEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(orderingKey(event))

		return errors.Wrapf(err, "publish %s event for contact %s", event.Type, event.ContactID)
	}

	p.logger.DebugContext(ctx, "Contact event published",
		slog.String("event_type", string(event.Type)),
		slog.String("contact_id", event.ContactID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func orderingKey(event *entity.ContactEvent) string {
	if event.ContactID == "" {
		return ""
	}

	return "contact/" + event.ContactID
}
