/*
Package treestore indexes a flat collection of parent-referencing records as a tree.

Records carry an identifier and the identifier of their parent. A Store holds
such records in a backing slice, in the order they were supplied or added, and
maintains two derived indexes on top of it: one from identifier to record and
one from parent identifier to the ordered identifiers of its children. These
indexes make structural queries fast:

	Operation      |  Cost
	---------------+----------------------
	Item           |  O(1)
	Children       |  O(children)
	AllChildren    |  O(descendants)
	AllParents     |  O(depth)
	Add/Update     |  O(n)   (index rebuild)
	Remove         |  O(n)   (index rebuild)

Identifiers are either integers or strings, and an integer identifier never
equals a string identifier: IntID(1) and StrID("1") denote different records.

The backing slice is the single source of truth. Indexes are thrown away and
rebuilt from it after every mutation, never patched in place.

Records are not required to form a proper forest. A parent reference may point
to a record which does not exist (an orphan), and the data may even contain
cycles. All traversals guard against cycles and will always terminate.

A Store is not safe for concurrent use. Clients calling it from more than one
goroutine have to guard the complete store with a mutex, as every mutation
consists of an edit of the backing slice followed by an index rebuild.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package treestore

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the 'treestore' tracer.
func T() tracing.Trace {
	return tracing.Select("treestore")
}

// StoreError is an error type for the treestore module.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrDuplicateID is flagged when an item is added whose identifier is already
// present in the store.
const ErrDuplicateID = StoreError("duplicate item identifier")

// ErrItemNotFound is flagged when an item to update is not present in the store.
const ErrItemNotFound = StoreError("item not found")

// ErrIndexMismatch is flagged whenever the derived indexes of a store do not
// reflect its backing slice. This should never happen.
const ErrIndexMismatch = StoreError("index does not match backing items")

// ErrInvalidID is flagged when an item carries the Null identifier.
const ErrInvalidID = StoreError("invalid item identifier")
