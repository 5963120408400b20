package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events to a single topic, keyed by flight ID so
// all events of one flight land on one partition.
type Producer struct {
	brokers      []string
	topic        string
	retries      int
	writeTimeout time.Duration
	writer       messageWriter
	logger       *slog.Logger
	now          func() time.Time
}

// DefaultWriteTimeout bounds a single write attempt.
const DefaultWriteTimeout = time.Second

type ProducerOption func(*Producer)

func WithRetries(n int) ProducerOption {
	return func(p *Producer) {
		if n > 0 {
			p.retries = n
		}
	}
}

func WithWriteTimeout(d time.Duration) ProducerOption {
	return func(p *Producer) {
		if d > 0 {
			p.writeTimeout = d
		}
	}
}

func WithProducerLogger(logger *slog.Logger) ProducerOption {
	return func(p *Producer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProducer builds a synchronous writer. Emit runs inside request handling,
// so the writer makes a single attempt bounded by the write timeout and the
// producer's own retries are the only ones. A broker outage delays a request
// by at most retries*writeTimeout plus the backoff between attempts.
func NewProducer(brokers []string, topic string, opts ...ProducerOption) *Producer {
	p := newProducer(brokers, topic, nil, opts...)
	p.writer = newWriter(brokers, p.writeTimeout)
	return p
}

func newWriter(brokers []string, timeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  1,
		WriteTimeout: timeout,
		ReadTimeout:  timeout,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

func newProducer(brokers []string, topic string, writer messageWriter, opts ...ProducerOption) *Producer {
	p := &Producer{
		brokers:      brokers,
		topic:        topic,
		retries:      1,
		writeTimeout: DefaultWriteTimeout,
		writer:       writer,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// retryDelay is the pause after failed attempt i (zero based).
func retryDelay(i int) time.Duration {
	return time.Duration(i+1) * 250 * time.Millisecond
}

// Emit wraps the event in an envelope and publishes it.
func (p *Producer) Emit(ctx context.Context, event domain.Event) error {
	env, err := events.NewEnvelope(event, p.now())
	if err != nil {
		return err
	}
	return p.PublishWithRetry(ctx, p.topic, event.FlightKey(), env, p.retries)
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	p.logger.DebugContext(ctx, "publishing to kafka", "topic", topic, "key", key)

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  p.now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.logger.DebugContext(ctx, "published to kafka", "topic", topic, "key", key)
	return nil
}

func (p *Producer) PublishWithRetry(ctx context.Context, topic, key string, payload any, maxRetries int) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		err := p.Publish(ctx, topic, key, payload)
		if err == nil {
			return nil
		}

		lastErr = err
		p.logger.WarnContext(ctx, "kafka publish attempt failed", "attempt", i+1, "topic", topic, "error", err)

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay(i)):
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and lists partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	p.logger.InfoContext(ctx, "connected to kafka", "partitions", len(partitions))
	return nil
}

var _ events.Emitter = (*Producer)(nil)
