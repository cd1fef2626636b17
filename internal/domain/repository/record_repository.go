// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockroom/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for record persistence.
var (
	// ErrRecordNotFound is returned when no record matches the given id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecordID is returned when an id is not a well-formed identifier.
	ErrInvalidRecordID = errors.New("invalid record id")
)

// RecordRepository is the generic contract for a single document collection.
// Both catalog collections share the same validate-insert-replace-delete
// lifecycle, so the interface is instantiated per record type rather than
// hand-duplicated per resource.
type RecordRepository[T any] interface {
	// FindAll retrieves every record in the collection. An empty collection
	// yields an empty slice, not an error.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID retrieves the record matching the given id.
	FindByID(ctx context.Context, id string) (*T, error)

	// Insert persists a new record and returns the database-assigned id.
	// Any client-supplied id is discarded.
	Insert(ctx context.Context, record *T) (string, error)

	// Replace fully replaces the record with the given id. A replace whose
	// payload equals the stored record still succeeds; only an absent id is
	// ErrRecordNotFound.
	Replace(ctx context.Context, id string, record *T) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}

// ItemRepository is the items collection contract.
type ItemRepository = RecordRepository[entity.Item]

// OutOfStockRepository is the outofstock collection contract.
type OutOfStockRepository = RecordRepository[entity.OutOfStockRequest]
