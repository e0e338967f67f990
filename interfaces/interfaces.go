// Package interfaces defines the core abstractions of the medinfo service
// so the conversation router can be tested against fakes.
package interfaces

import (
	"context"
	"time"

	"github.com/sidesh-hub/medinfo-india/medicine"
)

// LocalStore is the static fallback medicine source. It is demo data, not
// authoritative; lookup is exact-then-substring with no ranking.
type LocalStore interface {
	// Lookup returns the first record matching the query, or false.
	Lookup(name string) (*medicine.Medicine, bool)

	// All returns every record in the store.
	All() []medicine.Medicine

	// Count returns the number of records.
	Count() int

	// LastLoaded returns when the store was last seeded.
	LastLoaded() time.Time
}

// Resolver translates a medicine name into structured data through an
// external generative-text call. Implementations must convert provider
// failures into a LookupResult with Found=false and a short error, never
// raw provider output.
type Resolver interface {
	Lookup(ctx context.Context, name string) (*medicine.LookupResult, error)
}

// Janitor is a background job with a start/stop lifecycle.
type Janitor interface {
	Start() error
	Stop()
}
