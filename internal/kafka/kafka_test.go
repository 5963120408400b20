package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	errs   []error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_Emit(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer([]string{"localhost:9092"}, "airline.events", w)
	p.now = func() time.Time { return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, p.Emit(context.Background(), domain.NewAircraftAssigned("SY001-01-15-29", "Aircraft-001")))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "airline.events", msg.Topic)
	assert.Equal(t, "SY001-01-15-29", string(msg.Key))

	var env events.Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	ev, err := env.Decode()
	require.NoError(t, err)
	assert.Equal(t, domain.NewAircraftAssigned("SY001-01-15-29", "Aircraft-001"), ev)
}

func TestProducer_PublishWithRetry(t *testing.T) {
	w := &fakeWriter{errs: []error{errors.New("leader not available"), nil}}
	p := newProducer(nil, "t", w)

	require.NoError(t, p.PublishWithRetry(context.Background(), "t", "k", map[string]string{"a": "b"}, 2))
	assert.Len(t, w.msgs, 1)
}

func TestProducer_PublishFails(t *testing.T) {
	boom := errors.New("broker down")
	w := &fakeWriter{errs: []error{boom}}
	p := newProducer(nil, "t", w)

	err := p.Emit(context.Background(), domain.NewFlightCreated("F1"))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, w.msgs)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

type fakeReader struct {
	msgs []kafka.Message
}

func (r *fakeReader) ReadMessage(context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) Close() error { return nil }

func TestConsumer_ConsumeEvents(t *testing.T) {
	env, err := events.NewEnvelope(domain.NewFlightCreated("SY001-01-15-29"), time.Now())
	require.NoError(t, err)
	good, err := json.Marshal(env)
	require.NoError(t, err)

	c := &Consumer{
		reader: &fakeReader{msgs: []kafka.Message{{Value: []byte("garbage")}, {Value: good}}},
		logger: newDiscardLogger(),
	}

	var got []domain.Event
	err = c.ConsumeEvents(context.Background(), func(_ context.Context, _ events.Envelope, ev domain.Event) error {
		got = append(got, ev)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []domain.Event{domain.NewFlightCreated("SY001-01-15-29")}, got)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type blockingWriter struct{}

func (blockingWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingWriter) Close() error { return nil }

func TestProducer_EmitBoundedWhenBrokerHangs(t *testing.T) {
	p := newProducer(nil, "t", blockingWriter{},
		WithRetries(2),
		WithWriteTimeout(50*time.Millisecond),
		WithProducerLogger(newDiscardLogger()),
	)

	start := time.Now()
	err := p.Emit(context.Background(), domain.NewFlightCreated("F1"))
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 2*50*time.Millisecond+retryDelay(0)+time.Second)
}

func TestNewProducer_WriterSingleAttempt(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "t", WithWriteTimeout(300*time.Millisecond))

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, w.MaxAttempts)
	assert.Equal(t, 300*time.Millisecond, w.WriteTimeout)
	assert.Equal(t, 300*time.Millisecond, p.writeTimeout)
	require.NoError(t, p.Close())
}

func TestProducer_CheckConnectionNoBrokers(t *testing.T) {
	p := newProducer(nil, "t", &fakeWriter{})
	assert.Error(t, p.CheckConnection(context.Background()))
}

func TestProducer_CheckConnectionUnreachable(t *testing.T) {
	p := newProducer([]string{"127.0.0.1:1"}, "t", &fakeWriter{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.ErrorContains(t, p.CheckConnection(ctx), "failed to connect to Kafka")
}
