package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the domain services.
const (
	EventBookingCreated        = "booking.created"
	EventBookingStatusChanged  = "booking.status_changed"
	EventVerificationRequested = "auth.verification_requested"
)

// Header keys attached to every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Message is a Kafka message with metadata.
type Message struct {
	Key       string            // partition key (booking id, uid)
	Value     []byte            // JSON-encoded payload
	Headers   map[string]string // message headers
	Timestamp time.Time
}

// NewEvent builds a message for an event type with a JSON payload and
// the standard headers.
func NewEvent(eventType, key string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now().UTC()
	return Message{
		Key:       key,
		Value:     value,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:   uuid.NewString(),
			HeaderEventType: eventType,
			HeaderSource:    "elitecars",
			HeaderTimestamp: now.Format(time.RFC3339),
		},
	}, nil
}
