package store

import "errors"

// Sentinel errors matched with errors.Is at the route boundary. Anything else
// coming out of a store is an opaque persistence failure and maps to a 500
// (or, for contacts, a single retry against the file store).
var (
	// ErrNotFound signals that the addressed record does not exist. Absence
	// is a normal result and never triggers the contact fallback.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a SKU uniqueness violation. Wrapping errors carry
	// the full client-safe message, e.g. "product with SKU X already exists".
	ErrConflict = errors.New("already exists")

	// ErrNotConfigured is returned by the gorm adapters when the hosted store
	// was never configured. Products and reviews have no fallback, so their
	// handlers surface this as a 500.
	ErrNotConfigured = errors.New("database not configured")
)
