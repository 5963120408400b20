// Package registry defines the keyed asset stores the transaction handlers
// read and write, and an in-memory implementation of them.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airline/internal/domain"
)

var (
	ErrNotFound  = errors.New("asset does not exist")
	ErrDuplicate = errors.New("asset already exists")
)

// AssetRegistry is a keyed store for one asset type.
type AssetRegistry[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Add(ctx context.Context, asset T) error
	Update(ctx context.Context, asset T) error
}

// Lister is implemented by registries that can enumerate their assets.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type (
	FlightRegistry   = AssetRegistry[domain.Flight]
	AircraftRegistry = AssetRegistry[domain.Aircraft]
)

// CollectionID returns the collection identifier for a fully qualified type name.
func CollectionID(typeName string) string {
	return "Asset:" + typeName
}

var (
	FlightCollection   = CollectionID(domain.FlightType)
	AircraftCollection = CollectionID(domain.AircraftType)
)

type NotFoundError struct {
	ID         string
	Collection string
}

func NewNotFoundError(collection, id string) *NotFoundError {
	return &NotFoundError{ID: id, Collection: collection}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Object with ID '%s' in collection with ID '%s' does not exist", e.ID, e.Collection)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type DuplicateError struct {
	ID         string
	Collection string
}

func NewDuplicateError(collection, id string) *DuplicateError {
	return &DuplicateError{ID: id, Collection: collection}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("Failed to add object with ID '%s' in collection with ID '%s' as the object already exists", e.ID, e.Collection)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}
