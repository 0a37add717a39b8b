// Package store implements the durable key/value substrate the registry
// engine runs against. The substrate is deliberately narrow: opaque
// fixed-width keys mapped to opaque byte values, with get/set/has/remove and
// all-or-nothing visibility of each individual write. Three backends are
// provided: an embedded SQLite database (GORM, pure-Go driver), a BoltDB
// file, and an in-memory map for tests and ephemeral runs.
package store

import (
	"context"
	"fmt"

	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// KV is the storage substrate contract. Implementations must be safe for
// concurrent use; each call is individually atomic.
type KV interface {
	// Get returns the value stored under key, or ok=false when absent.
	Get(ctx context.Context, key keys.Key) (value []byte, ok bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key keys.Key, value []byte) error
	// Has reports whether a value exists under key.
	Has(ctx context.Context, key keys.Key) (bool, error)
	// Remove deletes the value under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key keys.Key) error
	// Close releases the backend's resources.
	Close() error
}

// Backend names accepted by Open / the STORE_BACKEND config knob.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Open constructs the KV backend named by backend. path is the database file
// location for the sqlite and bolt backends and is ignored for memory.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendBolt:
		return OpenBolt(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
