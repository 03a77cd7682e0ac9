// Package events publishes ledger change notifications to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types, also used as routing keys.
const (
	TransactionSaved   = "transaction.saved"
	TransactionDeleted = "transaction.deleted"
	BudgetSaved        = "budget.saved"
	AssetUpdated       = "asset.updated"
)

// Event is one change notification.
type Event struct {
	Type       string          `json:"type"`
	ResourceID string          `json:"resource_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// New builds an event, encoding payload as JSON. A payload that cannot be
// encoded is dropped.
func New(eventType, resourceID string, payload any) Event {
	e := Event{Type: eventType, ResourceID: resourceID, OccurredAt: time.Now().UTC()}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			e.Payload = raw
		}
	}
	return e
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
