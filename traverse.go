package treestore

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Item returns the item with identifier id, if present.
func (s *Store[I]) Item(id ID) (I, bool) {
	return s.resolve(id)
}

// Children returns the direct children of the item with identifier id, in the
// order they appear in the backing items. Children(Null) returns the root items.
// For a leaf or an unknown id, Children returns an empty slice.
func (s *Store[I]) Children(id ID) []I {
	ids := s.children[id]
	result := make([]I, 0, len(ids))
	for _, childID := range ids {
		if child, ok := s.resolve(childID); ok {
			result = append(result, child)
		}
	}
	return result
}

// HasChildren reports whether at least one item references id as its parent.
func (s *Store[I]) HasChildren(id ID) bool {
	return len(s.children[id]) > 0
}

// AllChildren returns all descendants of the item with identifier id, at any
// depth, flattened into a single slice. The order of the result is unspecified.
//
// AllChildren terminates even if the items form a cycle. An item lying on a
// cycle through id is part of its own descendants.
func (s *Store[I]) AllChildren(id ID) []I {
	var result []I
	stack := append([]ID(nil), s.children[id]...)
	visited := make(map[ID]struct{})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[top]; seen {
			continue
		}
		visited[top] = struct{}{}
		if item, ok := s.resolve(top); ok {
			result = append(result, item)
		}
		stack = append(stack, s.children[top]...)
	}
	return result
}

// AllParents returns the chain of ancestors of the item with identifier id,
// starting with the item itself:
//
//	[ item, parent, grandparent, …, root ]
//
// The chain ends at an item without parent or at an item whose parent cannot
// be found. If the items form a cycle, the chain stops before repeating an item.
// For an unknown id, AllParents returns an empty slice.
func (s *Store[I]) AllParents(id ID) []I {
	var result []I
	visited := make(map[ID]struct{})
	current, ok := s.resolve(id)
	for ok {
		if _, seen := visited[current.ID()]; seen {
			T().Infof("treestore: cycle detected at item %s", current.ID())
			break
		}
		visited[current.ID()] = struct{}{}
		result = append(result, current)
		if current.Parent().IsNull() {
			break
		}
		current, ok = s.resolve(current.Parent())
	}
	return result
}
