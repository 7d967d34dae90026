// Package store defines the document-store port behind the booking
// repository. The source system kept its records in browser-local storage;
// the port keeps the same get/set/remove shape over keyed JSON documents so
// the repository is testable against the in-memory implementation and
// deployable against Redis or Postgres.
package store

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type DocumentStore interface {
	// Get returns the document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
