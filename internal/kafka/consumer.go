package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	reader messageReader
	logger *slog.Logger
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		logger: slog.Default(),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}

// ConsumeEvents decodes each message as an event envelope. Messages that do not
// decode are logged and skipped.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, events.Envelope, domain.Event) error) error {
	return c.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		env, ev, err := events.DecodeEnvelope(msg.Value)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping undecodable event", "offset", msg.Offset, "key", string(msg.Key), "error", err)
			return nil
		}
		return handler(ctx, env, ev)
	})
}
