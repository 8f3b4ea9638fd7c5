package service

import (
	"context"

	"contactlog/internal/domain/entity"
)

// EventPublisher defines the interface for publishing contact lifecycle events to a message queue
type EventPublisher interface {
	// PublishContactEvent publishes one event after a successful mutation
	PublishContactEvent(ctx context.Context, event *entity.ContactEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
