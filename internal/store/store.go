// Package store provides whole-value key-value persistence for the bookstore
// aggregates. Every value is a single JSON document read and written in full;
// atomicity holds per key only, there are no transactions spanning keys.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the given key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is an interface for whole-value storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type KVStore interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string, dest any) error

	// Set marshals value to JSON and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error
}
