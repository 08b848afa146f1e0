package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the outbound contract for everything this service emits.
type Event interface {
	// EventType returns the unique code for this event.
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// TypeQueryProcessed is emitted after a query turn has been resolved and
// its history record persisted.
const TypeQueryProcessed = "QUERY_PROCESSED"

// BaseEvent is a ready-made Event implementation for ad-hoc emissions.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string { return e.Type }

func (e BaseEvent) Payload() map[string]interface{} { return e.Data }

func (e BaseEvent) Timestamp() time.Time { return e.OccurredAt }

// QueryProcessed builds the event for a persisted query turn.
func QueryProcessed(historyId, conversationId uuid.UUID, queryType string, success bool) Event {
	return BaseEvent{
		Type: TypeQueryProcessed,
		Data: map[string]interface{}{
			"history_id":      historyId.String(),
			"conversation_id": conversationId.String(),
			"type":            queryType,
			"success":         success,
		},
		OccurredAt: time.Now(),
	}
}
