// Package store provides the static fallback medicine source. It holds a
// fixed set of sample records behind atomic pointers so reads never block
// and a reseed swaps the whole set at once.
package store

import (
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sidesh-hub/medinfo-india/interfaces"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/medicine"
)

// Compile-time check to ensure Store implements LocalStore
var _ interfaces.LocalStore = (*Store)(nil)

// foldChain strips diacritics so queries like "paracétamol" still match.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases, trims and diacritic-folds a medicine name.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if folded, _, err := transform.String(foldChain, name); err == nil {
		return folded
	}
	return name
}

// snapshot is the immutable state swapped on each seed.
type snapshot struct {
	records map[string]medicine.Medicine // normalized key -> record
	keys    []string                     // insertion order, for deterministic scans
}

// Store holds the sample medicines with atomic swaps for reseeding.
type Store struct {
	data       atomic.Value // *snapshot
	lastLoaded atomic.Value // time.Time
}

// New creates a store seeded with the built-in sample medicines.
func New() *Store {
	s := &Store{}
	s.Seed(SampleMedicines())
	return s
}

// Seed replaces the record set. Keys are the normalized display names;
// insertion order of the slice is preserved for substring scans.
func (s *Store) Seed(records []medicine.Medicine) {
	snap := &snapshot{records: make(map[string]medicine.Medicine, len(records))}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			logging.Warn("Skipping invalid sample medicine", "error", err)
			continue
		}
		key := Normalize(rec.Name)
		if _, dup := snap.records[key]; dup {
			logging.Warn("Duplicate sample medicine key", "key", key)
			continue
		}
		snap.records[key] = rec
		snap.keys = append(snap.keys, key)
	}

	s.data.Store(snap)
	s.lastLoaded.Store(time.Now())
}

func (s *Store) snapshot() *snapshot {
	if v := s.data.Load(); v != nil {
		if snap, ok := v.(*snapshot); ok {
			return snap
		}
	}

	logging.Warn("Medicine store is empty or invalid")
	return &snapshot{records: map[string]medicine.Medicine{}}
}

// Lookup finds a record for the query: exact match on the normalized key
// first, then the first record whose key, display name or composition
// contains the query (or whose key is contained in the query).
func (s *Store) Lookup(name string) (*medicine.Medicine, bool) {
	query := Normalize(name)
	if query == "" {
		return nil, false
	}

	snap := s.snapshot()

	if rec, ok := snap.records[query]; ok {
		return &rec, true
	}

	for _, key := range snap.keys {
		rec := snap.records[key]
		if strings.Contains(key, query) || strings.Contains(query, key) ||
			strings.Contains(Normalize(rec.Name), query) ||
			strings.Contains(Normalize(rec.Composition), query) {
			return &rec, true
		}
	}

	return nil, false
}

// All returns every record in seed order.
func (s *Store) All() []medicine.Medicine {
	snap := s.snapshot()
	records := make([]medicine.Medicine, 0, len(snap.keys))
	for _, key := range snap.keys {
		records = append(records, snap.records[key])
	}
	return records
}

// Count returns the number of records in the store.
func (s *Store) Count() int {
	return len(s.snapshot().keys)
}

// LastLoaded returns when the store was last seeded.
func (s *Store) LastLoaded() time.Time {
	if v := s.lastLoaded.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the store load time")
	return time.Time{}
}
