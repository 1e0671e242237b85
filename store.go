package treestore

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
)

// Config configures a Store.
type Config struct {
	// StrictIDs lets NewWithConfig reject an initial collection containing
	// duplicate identifiers.
	StrictIDs bool
	// CheckInvariants runs Check after every index rebuild and traces violations.
	CheckInvariants bool
}

// Store holds a flat collection of items and indexes their parent/child
// relationships.
//
// The store owns its backing slice. Items are values of type I and are copied in
// and out of the store; to change an item clients call Update. All indexes are
// derived from the backing slice and rebuilt after every mutation.
type Store[I Item] struct {
	items    []I         // backing slice, authoritative
	byID     map[ID]int  // id -> position in items
	children map[ID][]ID // parent id (or Null) -> child ids, in backing order
	config   Config
}

// New creates a store from items. The store takes ownership of the slice; clients
// should not use it afterwards, but rather call All to access the items.
//
// New does not validate identifiers. If items contains duplicate identifiers,
// lookups will resolve to the last of them, while All will list every one.
// Use NewWithConfig with StrictIDs to reject such collections.
func New[I Item](items []I) *Store[I] {
	s := &Store[I]{items: items}
	s.rebuildIndexes()
	return s
}

// NewWithConfig creates a store from items, configured by config.
// If config.StrictIDs is set and items contains duplicate identifiers,
// an error wrapping ErrDuplicateID is returned.
func NewWithConfig[I Item](items []I, config Config) (*Store[I], error) {
	if config.StrictIDs {
		seen := make(map[ID]struct{}, len(items))
		for _, item := range items {
			id := item.ID()
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: %s occurs more than once", ErrDuplicateID, id)
			}
			seen[id] = struct{}{}
		}
	}
	s := &Store[I]{items: items, config: config}
	s.rebuildIndexes()
	return s, nil
}

// Len returns the number of items in the store.
func (s *Store[I]) Len() int {
	return len(s.items)
}

// All returns a read-only view of the backing items, in their current order.
// The view is live: it reflects mutations of the store applied after the call.
func (s *Store[I]) All() View[I] {
	return View[I]{store: s}
}

// Add appends a new item to the store.
//
// If an item with the same identifier already exists, Add returns an error
// wrapping ErrDuplicateID and the store remains unchanged.
func (s *Store[I]) Add(item I) error {
	id := item.ID()
	if id.IsNull() {
		return fmt.Errorf("%w: cannot add item with Null identifier", ErrInvalidID)
	}
	if _, exists := s.byID[id]; exists {
		return fmt.Errorf("%w: item %s already exists", ErrDuplicateID, id)
	}
	s.items = append(s.items, item)
	s.rebuildIndexes()
	T().Debugf("treestore: added item %s below %s", id, item.Parent())
	return nil
}

// Remove deletes the item with identifier id together with all of its
// descendants. The relative order of the remaining items is preserved.
// Remove returns the number of items deleted, which is 0 if id is unknown.
func (s *Store[I]) Remove(id ID) int {
	if _, ok := s.byID[id]; !ok {
		return 0
	}
	doomed := map[ID]struct{}{id: {}}
	for _, d := range s.AllChildren(id) {
		doomed[d.ID()] = struct{}{}
	}
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(item I) bool {
		_, found := doomed[item.ID()]
		return found
	})
	s.rebuildIndexes()
	n -= len(s.items)
	T().Debugf("treestore: removed subtree %s, %d items", id, n)
	return n
}

// Update replaces the item carrying the identifier of item. The existing
// item is replaced as a whole, not merged. Changing the parent reference moves
// the item (and its subtree) below the new parent.
//
// If no item with the identifier exists, Update returns an error wrapping
// ErrItemNotFound and the store remains unchanged.
func (s *Store[I]) Update(item I) error {
	id := item.ID()
	pos, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: item %s does not exist", ErrItemNotFound, id)
	}
	if pos >= len(s.items) || s.items[pos].ID() != id {
		T().Errorf("treestore: index out of sync for item %s", id)
		s.rebuildIndexes()
		return fmt.Errorf("%w: cannot update item %s", ErrIndexMismatch, id)
	}
	old := s.items[pos].Parent()
	s.items[pos] = item
	s.rebuildIndexes()
	if old != item.Parent() {
		T().Debugf("treestore: moved item %s from %s to %s", id, old, item.Parent())
	}
	return nil
}

// rebuildIndexes throws away both indexes and recreates them from the
// backing slice.
func (s *Store[I]) rebuildIndexes() {
	s.byID = make(map[ID]int, len(s.items))
	s.children = make(map[ID][]ID)
	for pos, item := range s.items {
		id, parent := item.ID(), item.Parent()
		s.byID[id] = pos
		s.children[parent] = append(s.children[parent], id)
	}
	if s.config.CheckInvariants {
		if err := s.Check(); err != nil {
			T().Errorf("treestore: %v", err)
		}
	}
}

// resolve looks up an item by id, checking that the id index agrees with
// the backing slice.
func (s *Store[I]) resolve(id ID) (I, bool) {
	pos, ok := s.byID[id]
	if !ok || pos >= len(s.items) || s.items[pos].ID() != id {
		var zero I
		return zero, false
	}
	return s.items[pos], true
}

// --- View ------------------------------------------------------------------

// View is a read-only window onto the backing items of a store.
//
// A view does not copy the items. Reading from a view after the store has been
// mutated reflects the mutation. The zero value of View is empty.
type View[I Item] struct {
	store *Store[I]
}

// Len returns the number of items.
func (v View[I]) Len() int {
	if v.store == nil {
		return 0
	}
	return len(v.store.items)
}

// At returns the item at position i. It panics if i is out of range.
func (v View[I]) At(i int) I {
	if v.store == nil {
		panic("treestore: index out of range of empty view")
	}
	return v.store.items[i]
}

// Range returns an iterator over positions and items, in backing order.
func (v View[I]) Range() iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		if v.store == nil {
			return
		}
		for i, item := range v.store.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// IDs returns the identifiers of all items, in backing order.
func (v View[I]) IDs() []ID {
	ids := make([]ID, 0, v.Len())
	for _, item := range v.Range() {
		ids = append(ids, item.ID())
	}
	return ids
}

// Collect returns a copy of the items.
func (v View[I]) Collect() []I {
	if v.store == nil {
		return nil
	}
	return slices.Clone(v.store.items)
}
