package treestore

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[ID]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[ID]int),
		max:     1,
	}
}

func (ids nodeids) find(id ID) int {
	return ids.idTable[id]
}

func (ids *nodeids) alloc(id ID) int {
	if n := ids.find(id); n > 0 {
		return n
	}
	ids.idTable[id] = ids.max
	ids.max++
	return ids.max - 1
}

// Store2Dot outputs the parent/child structure of a store in Graphviz DOT format
// (for debugging purposes).
//
// Items are labeled with their identifiers. Parent references which do not
// resolve to an item are drawn as empty circles.
func Store2Dot[I Item](store *Store[I], w io.Writer) error {
	if store == nil {
		return fmt.Errorf("%w: nil store", ErrIndexMismatch)
	}
	ids := newtable()
	nodelist, edgelist := "", ""
	for _, item := range store.All().Range() {
		n := ids.alloc(item.ID())
		styles := nodeDotStyles(store.HasChildren(item.ID()))
		label := dotEscape(item.ID().String())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", n, label, styles)
	}
	for _, item := range store.All().Range() {
		parent := item.Parent()
		if parent.IsNull() {
			continue
		}
		if _, ok := store.Item(parent); !ok && ids.find(parent) == 0 {
			orphan := ids.alloc(parent)
			nodelist += fmt.Sprintf("\"%d\" %s;\n", orphan, emptyNode())
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ids.find(parent), ids.find(item.ID()))
	}
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		T().Errorf("store DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(group bool) string {
	s := ",style=filled"
	if group {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	} else {
		s += ",shape=box"
	}
	return s
}

func dotEscape(s string) string {
	r := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '"' || c == '\\' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(r)
}
