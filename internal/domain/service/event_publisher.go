package service

import (
	"context"
	"time"
)

// PreferenceEvent announces that a user's preference document was saved.
// Downstream collaborators (notification inbox, email automation) subscribe
// to these instead of polling the store.
type PreferenceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	DocumentID string    `json:"document_id"`
	UpdatedAt  time.Time `json:"updated_at"`
	Synced     bool      `json:"synced"` // false when the save landed in the local cache only
	Note       string    `json:"note,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPreferenceEvent publishes a preference-updated event for async processing
	PublishPreferenceEvent(ctx context.Context, event *PreferenceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
