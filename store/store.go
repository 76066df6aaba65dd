// Package store implements the persisted entity store pattern: an
// insertion-ordered in-memory collection with CRUD operations, a selected
// slot, derived filter/search queries, and a whole-snapshot persistence
// binding to a durable key-value storage.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raddesk/raddesk/search"
	"github.com/raddesk/raddesk/storage"
	"github.com/raddesk/raddesk/types"
)

// Config describes a store before construction. Key and Storage are
// required; the rest default sensibly.
type Config[T types.Entity] struct {
	// Name is the collection noun used in error messages, e.g. "tests".
	Name string

	// Key is the fixed storage key the snapshot lives under.
	Key string

	// Storage is the durable backend, shared with sibling stores.
	Storage storage.Storage

	// Seed supplies the collection Fetch loads. In a networked deployment
	// this would be a remote call; here it is a static provider.
	Seed func() ([]T, error)

	// NewID generates entity identifiers. Defaults to random UUIDs.
	NewID func() string

	// Logger receives store events. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Store owns one entity collection. All operations are safe for concurrent
// use; mutating operations persist the full collection wholesale before
// they return.
//
// Not-found conditions on Update, Delete and Select are deliberate silent
// no-ops: the UI treats them as forgiving interactions, not errors. Only
// unexpected failures (validation, serialization, storage I/O) populate
// the error state.
type Store[T types.Entity] struct {
	name    string
	key     string
	storage storage.Storage
	seed    func() ([]T, error)
	newID   func() string
	log     zerolog.Logger

	mu       sync.RWMutex
	items    []T
	selected T
	loading  bool
	lastErr  string
}

// New constructs a store. The collection starts empty; call Hydrate to
// load the persisted snapshot.
func New[T types.Entity](cfg Config[T]) (*Store[T], error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("store requires a storage key")
	}
	if cfg.Storage == nil {
		return nil, fmt.Errorf("store %q requires a storage backend", cfg.Key)
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Key
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("store", cfg.Key).Logger()
	}
	return &Store[T]{
		name:    name,
		key:     cfg.Key,
		storage: cfg.Storage,
		seed:    cfg.Seed,
		newID:   newID,
		log:     log,
		items:   []T{},
	}, nil
}

// Hydrate loads the persisted snapshot into the collection. An absent or
// corrupt snapshot falls back to an empty collection without error; a
// corrupt one is logged and left on disk untouched.
func (s *Store[T]) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.storage.Get(s.key)
	if err != nil {
		return s.fail("hydrate", err)
	}
	if !found {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt snapshot")
		return nil
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.log.Debug().Int("count", len(items)).Msg("hydrated")
	return nil
}

// Fetch replaces the collection from the seed provider and persists the
// result. On failure the prior collection is left untouched and a generic
// message is recorded in the error state.
func (s *Store[T]) Fetch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if s.seed == nil {
		return s.fail("fetch", fmt.Errorf("no data source configured"))
	}
	items, err := s.seed()
	if err != nil {
		return s.fail("fetch", err)
	}
	if items == nil {
		items = []T{}
	}
	if err := s.persist(items); err != nil {
		return s.fail("fetch", err)
	}
	s.items = items
	s.log.Debug().Int("count", len(items)).Msg("fetched")
	return nil
}

// Add validates the entity, assigns it a fresh unique id, appends it and
// persists the grown collection. The append is rolled back if the
// snapshot write fails.
func (s *Store[T]) Add(ctx context.Context, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	if err := entity.Validate(); err != nil {
		return s.fail("add", err)
	}
	entity.SetUUID(s.newID())

	s.items = append(s.items, entity)
	if err := s.persist(s.items); err != nil {
		s.items = s.items[:len(s.items)-1]
		return s.fail("add", err)
	}
	s.log.Debug().Str("id", entity.UUID()).Msg("added")
	return nil
}

// Update applies a tagged-field update to the entity with the given id and
// persists the collection. A missing id is a silent no-op. If the snapshot
// write fails the in-memory entity is restored to its prior state.
func (s *Store[T]) Update(ctx context.Context, id string, update types.Update[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	idx := -1
	for i, e := range s.items {
		if e.UUID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	entity := s.items[idx]
	prior, err := json.Marshal(entity)
	if err != nil {
		return s.fail("update", err)
	}
	update.Apply(entity)
	if err := s.persist(s.items); err != nil {
		// Unmarshal into a fresh zero value, not the mutated entity:
		// omitempty fields that were zero before the update are absent
		// from the prior snapshot and would otherwise keep the new value.
		var restored T
		if uerr := json.Unmarshal(prior, &restored); uerr != nil {
			s.log.Error().Err(uerr).Str("id", id).Msg("could not restore entity after failed persist")
		} else {
			s.items[idx] = restored
			if any(s.selected) == any(entity) {
				s.selected = restored
			}
		}
		return s.fail("update", err)
	}
	s.log.Debug().Str("id", id).Msg("updated")
	return nil
}

// Delete removes the entity with the given id and persists the shrunk
// collection. Deleting an absent id is a silent no-op, so the operation
// is idempotent. Deleting the selected entity clears the selection.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	idx := -1
	for i, e := range s.items {
		if e.UUID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if err := s.persist(s.items); err != nil {
		s.items = append(s.items[:idx], append([]T{removed}, s.items[idx:]...)...)
		return s.fail("delete", err)
	}
	if any(s.selected) == any(removed) {
		var zero T
		s.selected = zero
	}
	s.log.Debug().Str("id", id).Msg("deleted")
	return nil
}

// Select sets the selected slot to the entity with the given id, or clears
// it when id is empty or unknown. Returns the new selection.
func (s *Store[T]) Select(id string) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.selected = zero
	if id == "" {
		return zero
	}
	if entity, ok := s.find(id); ok {
		s.selected = entity
	}
	return s.selected
}

// Selected returns the currently selected entity, or the zero value when
// nothing is selected.
func (s *Store[T]) Selected() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Get returns the entity with the given id, or the zero value when absent.
// It never touches the selected slot.
func (s *Store[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.find(id)
	if !ok {
		var zero T
		return zero
	}
	return entity
}

// Items returns the collection in insertion order. The slice is a copy;
// the elements are the live entities.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the collection size.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Filter returns the entities matching the predicate, in insertion order.
// Pure read; neither the collection nor the selection changes.
func (s *Store[T]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, e := range s.items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns the entities whose search-text fields contain the query,
// ignoring case. An empty query returns the full collection.
func (s *Store[T]) Search(query string) []T {
	if query == "" {
		return s.Items()
	}
	return s.Filter(func(e T) bool {
		return search.Matches(query, e.SearchText())
	})
}

// IsLoading reports whether a Fetch is in flight.
func (s *Store[T]) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the generic message recorded by the last failed operation,
// or the empty string. Not-found no-ops never populate it.
func (s *Store[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Flush persists the current collection. Called on teardown so a store
// that was only read still leaves a snapshot behind.
func (s *Store[T]) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(s.items); err != nil {
		return s.fail("flush", err)
	}
	return nil
}

// find locates an entity by id. Caller must hold the lock.
func (s *Store[T]) find(id string) (T, bool) {
	for _, e := range s.items {
		if e.UUID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// persist writes the given collection as the store's snapshot. Caller must
// hold the lock.
func (s *Store[T]) persist(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := s.storage.Set(s.key, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// fail records a generic message in the error state, logs the detail and
// returns the wrapped error. Caller must hold the lock.
func (s *Store[T]) fail(verb string, err error) error {
	s.lastErr = fmt.Sprintf("failed to %s %s", verb, s.name)
	s.log.Error().Err(err).Str("op", verb).Msg("store operation failed")
	return fmt.Errorf("%s %s: %w", verb, s.name, err)
}
