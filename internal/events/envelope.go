package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/google/uuid"
)

var ErrUnknownEventType = errors.New("unknown event type")

// Envelope is the wire form of an event.
type Envelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Namespace  string          `json:"namespace"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewEnvelope(event domain.Event, occurredAt time.Time) (Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", event.EventType(), err)
	}
	return Envelope{
		ID:         uuid.NewString(),
		Type:       event.EventType(),
		Namespace:  domain.Namespace,
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	}, nil
}

// Decode rebuilds the typed event carried by the envelope.
func (e Envelope) Decode() (domain.Event, error) {
	switch e.Type {
	case domain.FlightCreatedEventType:
		var ev domain.FlightCreated
		if err := json.Unmarshal(e.Payload, &ev); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Type, err)
		}
		return ev, nil
	case domain.AircraftAssignedEventType:
		var ev domain.AircraftAssigned
		if err := json.Unmarshal(e.Payload, &ev); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Type, err)
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
}

func DecodeEnvelope(data []byte) (Envelope, domain.Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, nil, fmt.Errorf("decode envelope: %w", err)
	}
	ev, err := env.Decode()
	if err != nil {
		return env, nil, err
	}
	return env, ev, nil
}
