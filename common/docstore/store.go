// Package docstore is a small document-store abstraction: named collections of
// JSON-shaped documents keyed by a 24-hex ObjectID string held in "_id".
package docstore

import (
	"context"
	"errors"
)

// IDField is the document key holding the id.
const IDField = "_id"

var (
	// ErrNotFound is returned by Increment when the document does not exist.
	ErrNotFound = errors.New("docstore: document not found")
	// ErrBelowZero is returned by Increment when the result would be negative.
	ErrBelowZero = errors.New("docstore: value would drop below zero")
	// ErrNotInteger is returned by Increment when the field is not an integer.
	ErrNotInteger = errors.New("docstore: field is not an integer")
)

// Store is implemented by every backend. Malformed ids behave as unknown ids.
// dest arguments are pointers to structs (or slices of structs for FindAll)
// decoded with encoding/json tags.
type Store interface {
	FindByID(ctx context.Context, collection, id string, dest any) (bool, error)
	// FindOne returns the first document, in id order, whose field equals value.
	FindOne(ctx context.Context, collection, field string, value any, dest any) (bool, error)
	// FindAll returns every document of the collection in id order.
	FindAll(ctx context.Context, collection string, dest any) error
	// Insert stores doc under a freshly generated id, ignoring any "_id" it carries.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// UpdateByID sets the top-level fields in patch. Missing documents report false.
	UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (bool, error)
	DeleteByID(ctx context.Context, collection, id string) (bool, error)
	// Increment atomically adds delta to an integer field and returns the new value.
	// The value never goes below zero: such a change fails with ErrBelowZero and
	// leaves the document untouched.
	Increment(ctx context.Context, collection, id, field string, delta int) (int, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
