package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Predicate tests a single chart. Predicates must be pure: no side
// effects, no dependence on evaluation order.
type Predicate func(Chart) bool

var (
	// ErrNotFound is returned when a predicate-scoped lookup, update or
	// removal matched zero charts.
	ErrNotFound = errors.New("no matching chart")

	// ErrPredicateRequired is returned by Update when called without a
	// predicate.
	ErrPredicateRequired = errors.New("predicate required")
)

// Store persists a collection of charts as a JSON array in a single file.
// The store itself is stateless between calls: it holds nothing but the
// path to its backing document.
type Store struct {
	path string
}

// New creates a store backed by the document at path. The path is injected
// here; any environment lookup belongs at the caller's boundary.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Init creates the backing document with an empty collection. It refuses
// to overwrite an existing document.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("chart store already exists at %s", s.path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat chart store: %w", err)
	}
	return s.write([]Chart{})
}

// Create appends one chart to the collection and persists the result.
func (s *Store) Create(c Chart) error {
	charts, err := s.read()
	if err != nil {
		return err
	}
	return s.write(append(charts, c))
}

// BulkCreate appends every given chart with a single write. The append is
// all or nothing: either the whole batch lands in the document or none of
// it does.
func (s *Store) BulkCreate(cs []Chart) error {
	charts, err := s.read()
	if err != nil {
		return err
	}
	return s.write(append(charts, cs...))
}

// Select returns the charts matching p in document order. A nil predicate
// selects the entire collection. Select never writes.
func (s *Store) Select(p Predicate) ([]Chart, error) {
	charts, err := s.read()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return charts, nil
	}
	matched := make([]Chart, 0)
	for _, c := range charts {
		if p(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// FindOne returns the first chart matching p in document order. Unlike
// Select, a nil predicate never matches: FindOne(nil) returns ErrNotFound
// even on a non-empty collection. "First of everything" has no sensible
// meaning for a lookup, so the asymmetry with Select is deliberate.
func (s *Store) FindOne(p Predicate) (Chart, error) {
	charts, err := s.read()
	if err != nil {
		return Chart{}, err
	}
	if p == nil {
		return Chart{}, ErrNotFound
	}
	for _, c := range charts {
		if p(c) {
			return c, nil
		}
	}
	return Chart{}, ErrNotFound
}

// Update shallow-merges patch into every chart matching p and persists the
// result with a single write. The predicate is mandatory: updating without
// one would rewrite the whole collection by accident, so a nil predicate
// fails with ErrPredicateRequired. If nothing matches, the document is
// left untouched and ErrNotFound is returned.
func (s *Store) Update(p Predicate, patch Patch) error {
	if p == nil {
		return fmt.Errorf("update: %w", ErrPredicateRequired)
	}
	charts, err := s.read()
	if err != nil {
		return err
	}
	matched := 0
	for i := range charts {
		if p(charts[i]) {
			patch.apply(&charts[i])
			matched++
		}
	}
	if matched == 0 {
		return fmt.Errorf("update: %w", ErrNotFound)
	}
	return s.write(charts)
}

// UpdateOp pairs a predicate with the patch to apply to its matches.
type UpdateOp struct {
	Match Predicate
	Patch Patch
}

// BulkUpdate applies each op in order against the same in-memory snapshot,
// so later ops observe the mutations made by earlier ones. An op that
// matches nothing is skipped rather than failing the batch, and a nil
// predicate matches nothing. A single write persists the final state.
func (s *Store) BulkUpdate(ops []UpdateOp) error {
	charts, err := s.read()
	if err != nil {
		return err
	}
	for _, op := range ops {
		if op.Match == nil {
			continue
		}
		for i := range charts {
			if op.Match(charts[i]) {
				op.Patch.apply(&charts[i])
			}
		}
	}
	return s.write(charts)
}

// Remove deletes every chart matching p and persists the survivors in
// their original relative order. A nil predicate removes nothing rather
// than everything, the destructive mirror of FindOne's asymmetry. If no
// chart was removed, the document is left untouched and ErrNotFound is
// returned.
func (s *Store) Remove(p Predicate) error {
	charts, err := s.read()
	if err != nil {
		return err
	}
	kept := make([]Chart, 0, len(charts))
	for _, c := range charts {
		if p == nil || !p(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(charts) {
		return fmt.Errorf("remove: %w", ErrNotFound)
	}
	return s.write(kept)
}

// BulkRemove applies each predicate in turn as a filter against the
// progressively shrinking collection: a chart removed by an earlier
// predicate is not visible to later ones. BulkRemove always succeeds,
// even when no predicate removes anything.
func (s *Store) BulkRemove(ps []Predicate) error {
	charts, err := s.read()
	if err != nil {
		return err
	}
	for _, p := range ps {
		if p == nil {
			continue
		}
		kept := make([]Chart, 0, len(charts))
		for _, c := range charts {
			if !p(c) {
				kept = append(kept, c)
			}
		}
		charts = kept
	}
	return s.write(charts)
}

// read deserializes the whole backing document. A missing file, unreadable
// file or malformed document is a fatal error, never an empty collection:
// defaulting to empty would silently lose the document on the next write.
func (s *Store) read() ([]Chart, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart store: %w", err)
	}
	var charts []Chart
	if err := json.Unmarshal(data, &charts); err != nil {
		return nil, fmt.Errorf("failed to parse chart store: %w", err)
	}
	return charts, nil
}

// write serializes the full collection and replaces the backing document.
// The two-space indent keeps the document human-diffable; the formatting
// is a nicety, not a contract. On failure the in-memory mutation is not
// durable and callers must not assume it committed.
func (s *Store) write(charts []Chart) error {
	data, err := json.MarshalIndent(charts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chart store: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write chart store: %w", err)
	}
	return nil
}
