package rows

import (
	"github.com/npillmayer/treestore"
)

// Category classifies a row as a group or a leaf.
type Category int8

const (
	Leaf  Category = iota // item without children
	Group                 // item with at least one child
)

func (c Category) String() string {
	switch c {
	case Leaf:
		return "leaf"
	case Group:
		return "group"
	}
	return "<unknown category>"
}

// Row is an item of a store, decorated with its path of labels from the root
// and its category.
type Row[I treestore.Item] struct {
	Item     I
	Path     []string // labels of the ancestors of Item, root first, Item last
	Category Category
}

// Label returns the label of the row's item, i.e., the last element of its path.
func (r Row[I]) Label() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}

// Depth returns the number of ancestors of the row's item which are present in
// the store. Roots and orphans have depth 0.
func (r Row[I]) Depth() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Derive creates one row for every item of store, in the order of store.All().
//
// label maps an item to its display label. If label is nil, items are labeled
// with their identifiers.
func Derive[I treestore.Item](store *treestore.Store[I], label func(I) string) []Row[I] {
	if store == nil {
		return nil
	}
	if label == nil {
		label = func(item I) string {
			return item.ID().String()
		}
	}
	rows := make([]Row[I], 0, store.Len())
	for _, item := range store.All().Range() {
		chain := store.AllParents(item.ID())
		path := make([]string, len(chain))
		for i, ancestor := range chain {
			path[len(chain)-1-i] = label(ancestor)
		}
		category := Leaf
		if store.HasChildren(item.ID()) {
			category = Group
		}
		rows = append(rows, Row[I]{Item: item, Path: path, Category: category})
	}
	tracer().Debugf("derived %d rows", len(rows))
	return rows
}

// EntryLabel is a label function for treestore.Entry items.
func EntryLabel(e treestore.Entry) string {
	return e.Label
}
