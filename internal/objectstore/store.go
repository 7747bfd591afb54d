// Package objectstore persists VRS entities by their ga4gh identifier
// so that enref/deref (internal/enderef) can collapse an object graph
// to references and expand it back. The interface is deliberately
// byte-oriented: callers marshal/unmarshal with encoding/json and
// objectstore just keys blobs by id, keeping SQL plumbing separate
// from VRS object semantics.
package objectstore

import (
	"context"
	"errors"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// ErrNotFound is a sentinel for a missing entry. Get implementations
// report a missing id as *vrserr.UnknownReferenceError, which does not
// wrap ErrNotFound, so errors.Is(err, ErrNotFound) is false for them.
var ErrNotFound = errors.New("objectstore: not found")

// Store persists and retrieves serialized VRS entities keyed by their
// ga4gh CURIE identifier.
type Store interface {
	// Put stores blob under id, overwriting any existing entry.
	Put(ctx context.Context, id string, blob []byte) error
	// Get retrieves the blob stored under id. Returns
	// *vrserr.UnknownReferenceError if no entry exists.
	Get(ctx context.Context, id string) ([]byte, error)
	// Has reports whether an entry exists under id.
	Has(ctx context.Context, id string) (bool, error)
}

func notFound(id string) error {
	return &vrserr.UnknownReferenceError{Identifier: id}
}
