package pubsub

import "contactlog/internal/domain/entity"

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *entity.ContactEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"contact_id": event.ContactID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
