// Package usecase defines the application use-case interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"
)

// ResourceUsecase is the generic CRUD operation set over one document
// collection. It is instantiated once per resource (items, outofstock) with
// the same semantics, instead of duplicating near-identical controllers.
type ResourceUsecase[T any] interface {
	// ListAll returns every record, with no pagination. An empty collection
	// yields an empty slice.
	ListAll(ctx context.Context) ([]T, error)

	// GetByID returns the record with the given id. A malformed or absent id
	// yields the resource's not-found error.
	GetByID(ctx context.Context, id string) (*T, error)

	// Create inserts an already-validated payload and returns the new id.
	Create(ctx context.Context, payload *T) (string, error)

	// Replace fully replaces the record with the given id.
	Replace(ctx context.Context, id string, payload *T) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}
