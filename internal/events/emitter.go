// Package events carries domain events from the transaction handlers to
// their subscribers.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/Domenick1991/airline/internal/domain"
)

// Emitter delivers an event to zero or more subscribers. Delivery may
// complete after Emit returns.
type Emitter interface {
	Emit(ctx context.Context, event domain.Event) error
}

type Handler func(ctx context.Context, event domain.Event)

// Bus is an in-process emitter. Subscribers run synchronously inside Emit,
// in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h and returns a func that removes it.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, h)
	idx := len(b.handlers) - 1
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if idx < len(b.handlers) {
			b.handlers[idx] = nil
		}
	}
}

func (b *Bus) Emit(ctx context.Context, event domain.Event) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		if h != nil {
			handlers = append(handlers, h)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, event)
	}
	return nil
}

// Fanout emits to every emitter and joins their errors.
type Fanout []Emitter

func (f Fanout) Emit(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, e := range f {
		if e == nil {
			continue
		}
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every emitted event.
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *Recorder) Emit(_ context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

var (
	_ Emitter = (*Bus)(nil)
	_ Emitter = Fanout(nil)
	_ Emitter = (*Recorder)(nil)
)
