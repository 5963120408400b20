// Package notify turns flight events into operator notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airline/internal/domain"
)

type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

// Send logs a notification for the event. Unknown event types are ignored.
func (s *Sender) Send(ctx context.Context, event domain.Event) error {
	msg, ok := Message(event)
	if !ok {
		return nil
	}
	s.logger.InfoContext(ctx, msg, "event_type", event.EventType(), "flight_id", event.FlightKey())
	return nil
}

// Handle adapts Send to an events.Bus subscriber.
func (s *Sender) Handle(ctx context.Context, event domain.Event) {
	_ = s.Send(ctx, event)
}

func Message(event domain.Event) (string, bool) {
	switch ev := event.(type) {
	case domain.FlightCreated:
		return fmt.Sprintf("flight %s scheduled", ev.FlightID), true
	case domain.AircraftAssigned:
		return fmt.Sprintf("aircraft %s assigned to flight %s", ev.AircraftID, ev.FlightID), true
	default:
		return "", false
	}
}
