/*
Package rows derives display rows from a tree store.

A presentation layer showing a tree store as a grouped table needs two
properties per item which the store deliberately does not compute: the path of
labels leading from the root to the item, and whether the item is a group
(has children) or a leaf. Derive computes both from the ancestry the store
exposes. Outline prints derived rows as an indented outline to a console,
which is mainly useful for inspecting a store during development.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package rows

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treestore'
func tracer() tracing.Trace {
	return tracing.Select("treestore")
}
