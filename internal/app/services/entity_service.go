package services

import (
	"context"
	"fmt"
)

// Store abstracts the generic CRUD repository so transports and tests can
// substitute implementations.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Update(ctx context.Context, id int64, record *T) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
}

// EntityService exposes list/get/create/update/delete for one entity. One
// instance per entity table; all behavior differences live in the store's
// table definition.
type EntityService[T any] struct {
	store    Store[T]
	resource string
}

// NewEntityService creates a service over the given store. resource is the
// singular display name ("Department").
func NewEntityService[T any](store Store[T], resource string) *EntityService[T] {
	return &EntityService[T]{
		store:    store,
		resource: resource,
	}
}

// Resource returns the singular display name of the entity.
func (s *EntityService[T]) Resource() string {
	return s.resource
}

// List returns all records ordered by primary key; an empty table yields an
// empty slice.
func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing %ss: %w", s.resource, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// GetByID returns the record with the given identifier. The store decides
// whether an id exists; the schema places no lower bound on keys, so a row
// keyed 0 or below is as reachable as any other.
func (s *EntityService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.store.GetByID(ctx, id)
}

// Create inserts a record and returns it as stored, including generated
// fields.
func (s *EntityService[T]) Create(ctx context.Context, record *T) (*T, error) {
	return s.store.Create(ctx, record)
}

// Update replaces the record's non-key fields and returns the updated row.
func (s *EntityService[T]) Update(ctx context.Context, id int64, record *T) (*T, error) {
	return s.store.Update(ctx, id, record)
}

// Delete removes the record and returns its prior contents.
func (s *EntityService[T]) Delete(ctx context.Context, id int64) (*T, error) {
	return s.store.Delete(ctx, id)
}
