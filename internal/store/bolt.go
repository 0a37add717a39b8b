// BoltDB-backed KV. All pairs live in a single bucket inside one file, which
// keeps deployments that do not want SQL down to a single embedded
// dependency. Bolt gives each Update call all-or-nothing visibility, which
// is exactly the write guarantee the substrate contract asks for.
package store

import (
	"context"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/offerhub/go-reputation-registry/internal/keys"
)

const boltBucket = "registry"

// Bolt is a KV backed by a BoltDB file.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a BoltDB database at path and ensures the
// registry bucket exists. The open timeout avoids hanging forever on a
// stale file lock.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

// Get implements KV.
func (s *Bolt) Get(_ context.Context, key keys.Key) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get(key[:])
		if v == nil {
			return nil
		}
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

// Set implements KV.
func (s *Bolt) Set(_ context.Context, key keys.Key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put(key[:], value)
	})
}

// Has implements KV.
func (s *Bolt) Has(_ context.Context, key keys.Key) (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket([]byte(boltBucket)).Get(key[:]) != nil
		return nil
	})
	return ok, err
}

// Remove implements KV. bolt's Delete on an absent key is a no-op, which is
// the idempotent behaviour the substrate contract wants.
func (s *Bolt) Remove(_ context.Context, key keys.Key) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete(key[:])
	})
}

// Close releases the database file lock.
func (s *Bolt) Close() error { return s.db.Close() }
