package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/Domenick1991/airline/internal/domain"
)

// MemoryRegistry keeps assets in a map. Values are copied on the way in and
// out so callers never share state with the store.
type MemoryRegistry[T any] struct {
	mu         sync.RWMutex
	collection string
	key        func(T) string
	clone      func(T) T
	items      map[string]T
}

func NewMemoryRegistry[T any](collection string, key func(T) string, clone func(T) T) *MemoryRegistry[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &MemoryRegistry[T]{
		collection: collection,
		key:        key,
		clone:      clone,
		items:      make(map[string]T),
	}
}

func NewMemoryFlightRegistry() *MemoryRegistry[domain.Flight] {
	return NewMemoryRegistry(FlightCollection, func(f domain.Flight) string { return f.ID }, cloneFlight)
}

func NewMemoryAircraftRegistry() *MemoryRegistry[domain.Aircraft] {
	return NewMemoryRegistry(AircraftCollection, func(a domain.Aircraft) string { return a.ID }, nil)
}

func (r *MemoryRegistry[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	if !ok {
		return nil, NewNotFoundError(r.collection, id)
	}
	out := r.clone(v)
	return &out, nil
}

func (r *MemoryRegistry[T]) Add(ctx context.Context, asset T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.key(asset)
	if _, ok := r.items[id]; ok {
		return NewDuplicateError(r.collection, id)
	}
	r.items[id] = r.clone(asset)
	return nil
}

// Update replaces an existing asset. Last write wins.
func (r *MemoryRegistry[T]) Update(ctx context.Context, asset T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.key(asset)
	if _, ok := r.items[id]; !ok {
		return NewNotFoundError(r.collection, id)
	}
	r.items[id] = r.clone(asset)
	return nil
}

// List returns every asset ordered by identifier.
func (r *MemoryRegistry[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.clone(r.items[id]))
	}
	return out, nil
}

func (r *MemoryRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func cloneFlight(f domain.Flight) domain.Flight {
	out := f
	out.AliasFlightNumber = append([]string{}, f.AliasFlightNumber...)
	if f.Aircraft != nil {
		ref := *f.Aircraft
		out.Aircraft = &ref
	}
	return out
}

var (
	_ FlightRegistry   = (*MemoryRegistry[domain.Flight])(nil)
	_ AircraftRegistry = (*MemoryRegistry[domain.Aircraft])(nil)
)
