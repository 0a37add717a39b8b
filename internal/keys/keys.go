// Package keys derives the fixed-width storage keys under which every piece
// of registry state lives. A key is the SHA-256 digest of a namespace tag,
// optionally concatenated with the big-endian encoding of a record id or the
// raw bytes of a principal. Derivation is deterministic and pure; collision
// resistance is delegated to the hash.
package keys

import (
	"crypto/sha256"
	"encoding/binary"
)

// Size is the width of every derived storage key in bytes.
const Size = sha256.Size

// Namespace tags. One tag per logical table; singleton state (the admin, the
// counter, the stats and leaderboard maps) hashes the tag alone.
const (
	NSOwner       = "token_owner"
	NSMetadata    = "token_metadata"
	NSAdmin       = "admin"
	NSMinters     = "minters"
	NSCounter     = "token_id_counter"
	NSUserIndex   = "user_achievements"
	NSStats       = "achievement_stats"
	NSLeaderboard = "achievement_leaderboard"
	NSReputation  = "user_reputation"
)

// Key is a fixed-width derived storage key.
type Key [Size]byte

// ForID derives the key for (namespace, record id): sha256(tag || be64(id)).
func ForID(ns string, id uint64) Key {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	h := sha256.New()
	h.Write([]byte(ns))
	h.Write(buf[:])
	return sum(h.Sum(nil))
}

// ForPrincipal derives the key for (namespace, principal):
// sha256(tag || principal).
func ForPrincipal(ns, principal string) Key {
	h := sha256.New()
	h.Write([]byte(ns))
	h.Write([]byte(principal))
	return sum(h.Sum(nil))
}

// Singleton derives the key for a namespace with no identifier: sha256(tag).
func Singleton(ns string) Key {
	return sum256([]byte(ns))
}

func sum256(b []byte) Key { return Key(sha256.Sum256(b)) }

func sum(b []byte) Key {
	var k Key
	copy(k[:], b)
	return k
}
