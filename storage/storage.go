// storage/storage.go
//
// Persistence collaborators for the scoring core. The core only ever sees
// this interface: serialized JSON blobs saved and loaded by string key.
// Concrete adapters cover the device filesystem, an in-memory fallback for
// tests and headless runs, and a SQLite file.
package storage

import "errors"

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Well-known keys the app persists under.
const (
	KeyMatchState   = "match_state"
	KeyMatchHistory = "match_history"
)

// Store is a key/value blob store. Implementations must treat values as
// opaque bytes; all shape validation happens at the scoring boundary.
type Store interface {
	// Save writes data under key, replacing any previous value.
	Save(key string, data []byte) error
	// Load returns the value for key, or ErrNotFound.
	Load(key string) ([]byte, error)
	// Clear removes key. Clearing an absent key is not an error.
	Clear(key string) error
}
