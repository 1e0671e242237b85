package treestore

import "fmt"

// Check validates that the indexes of a store reflect its backing items.
//
// Duplicate identifiers are reported with an error wrapping ErrDuplicateID,
// items carrying the Null identifier with ErrInvalidID, and any disagreement
// between the indexes and the backing items with ErrIndexMismatch.
// Cycles and orphans are legal and not reported.
func (s *Store[I]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil store", ErrIndexMismatch)
	}
	seen := make(map[ID]int, len(s.items))
	for pos, item := range s.items {
		id := item.ID()
		if id.IsNull() {
			return fmt.Errorf("%w: item at position %d", ErrInvalidID, pos)
		}
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s at positions %d and %d", ErrDuplicateID, id, first, pos)
		}
		seen[id] = pos
	}
	for pos, item := range s.items {
		id := item.ID()
		if p, ok := s.byID[id]; !ok || p != pos {
			return fmt.Errorf("%w: id index misses %s at position %d", ErrIndexMismatch, id, pos)
		}
	}
	if len(s.byID) != len(s.items) {
		return fmt.Errorf("%w: id index has %d entries for %d items",
			ErrIndexMismatch, len(s.byID), len(s.items))
	}
	var count int
	for parent, ids := range s.children {
		last := -1
		for _, childID := range ids {
			pos, ok := s.byID[childID]
			if !ok {
				return fmt.Errorf("%w: stale child %s below %s", ErrIndexMismatch, childID, parent)
			}
			if s.items[pos].Parent() != parent {
				return fmt.Errorf("%w: child %s listed below %s, has parent %s",
					ErrIndexMismatch, childID, parent, s.items[pos].Parent())
			}
			if pos <= last {
				return fmt.Errorf("%w: children of %s out of order", ErrIndexMismatch, parent)
			}
			last = pos
			count++
		}
	}
	if count != len(s.items) {
		return fmt.Errorf("%w: child index has %d entries for %d items",
			ErrIndexMismatch, count, len(s.items))
	}
	return nil
}
