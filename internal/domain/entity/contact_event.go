package entity

import "time"

// ContactEventType names a contact lifecycle transition.
type ContactEventType string

const (
	ContactCreated ContactEventType = "contact.created"
	ContactUpdated ContactEventType = "contact.updated"
	ContactDeleted ContactEventType = "contact.deleted"
)

// ContactEvent is emitted after a mutation has been persisted.
type ContactEvent struct {
	EventID    string           `json:"event_id"`
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       ContactEventType `json:"type"`
	ContactID  string           `json:"contact_id"`
	Contact    *Contact         `json:"contact,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
