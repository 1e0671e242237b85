package treestore

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"strconv"
)

type idKind uint8

const (
	nullKind idKind = iota
	intKind
	strKind
)

// ID identifies an item of a tree. An ID is either an integer or a string.
//
// IDs are comparable and may be used as map keys. Two IDs are equal only if they
// are of the same kind and carry the same value, i.e.
//
//	IntID(1) != StrID("1")
//
// The zero value of ID is Null, which is neither an integer nor a string. It is
// used as the parent reference of root items.
type ID struct {
	kind idKind
	n    int64
	s    string
}

// Null is the parent reference of root items.
var Null = ID{}

// IntID creates an integer identifier.
func IntID(n int64) ID {
	return ID{kind: intKind, n: n}
}

// StrID creates a string identifier.
func StrID(s string) ID {
	return ID{kind: strKind, s: s}
}

// IsNull reports whether id is the Null reference.
func (id ID) IsNull() bool {
	return id.kind == nullKind
}

// Int returns the integer value of id, if id is an integer identifier.
func (id ID) Int() (int64, bool) {
	return id.n, id.kind == intKind
}

// Str returns the string value of id, if id is a string identifier.
func (id ID) Str() (string, bool) {
	return id.s, id.kind == strKind
}

// String formats an integer identifier as a decimal number and a string identifier
// as a quoted string, making the two kinds distinguishable in traces.
func (id ID) String() string {
	switch id.kind {
	case intKind:
		return strconv.FormatInt(id.n, 10)
	case strKind:
		return strconv.Quote(id.s)
	}
	return "null"
}

// Compare orders identifiers: Null sorts first, then integer identifiers by
// value, then string identifiers lexically. It returns -1, 0 or +1 and may be
// used with slices.SortFunc.
func (id ID) Compare(other ID) int {
	if c := cmp.Compare(id.kind, other.kind); c != 0 {
		return c
	}
	switch id.kind {
	case intKind:
		return cmp.Compare(id.n, other.n)
	case strKind:
		return cmp.Compare(id.s, other.s)
	}
	return 0
}

// Item is the minimal shape of a record held by a Store.
//
// Parent returns Null for root items. A parent reference does not have to point
// to an existing item.
type Item interface {
	ID() ID
	Parent() ID
}

// Entry is a simple labeled item.
type Entry struct {
	Key   ID     // identifier of this entry
	Up    ID     // identifier of the parent entry, or Null
	Label string // display label
}

// ID is part of interface Item.
func (e Entry) ID() ID { return e.Key }

// Parent is part of interface Item.
func (e Entry) Parent() ID { return e.Up }
