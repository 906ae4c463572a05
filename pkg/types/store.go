package types

import "errors"

// Snapshot holds the three top-level collections. Operations read a current
// snapshot, compute a new one, and hand it back to the store — the store
// never sees partial updates.
type Snapshot struct {
	Types    []ItemType `json:"types"`
	Items    []Item     `json:"items"`
	Projects []Project  `json:"projects"`
}

// Store defines the interface for backend-agnostic snapshot persistence.
// Callers attach to a backend, load and save snapshots, and detach when done.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load reads the current snapshot. A fresh store yields empty collections.
	Load() (Snapshot, error)

	// Save durably replaces the stored snapshot with the given one,
	// all-or-nothing.
	Save(snapshot Snapshot) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
