package radix

import (
	"fmt"
	"io"
	"strings"
)

// DumpString renders the trie's structure as indented text and returns
// it. Useful during development and in tests that assert on shape
// rather than just contents.
func (t *Trie[S, T]) DumpString() string {
	w := new(strings.Builder)
	if err := t.Dump(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Dump writes the trie's structure to w: one line per node, indented
// by depth, noting whether the node carries a value and its cached
// subtree size. Naked branches are printed like any other node since,
// unlike a valued leaf, they exist purely to describe the shape of the
// tree — which is exactly what Dump is for.
func (t *Trie[S, T]) Dump(w io.Writer) error {
	return t.root.dumpRec(w, 0)
}

func (n *Node[S, T]) dumpRec(w io.Writer, depth int) error {
	indent := strings.Repeat(".", depth)
	kind := "NAKED"
	if n.hasValue() {
		kind = "VALUE"
	}
	if n.isRoot() {
		kind = "ROOT"
	}
	if _, err := fmt.Fprintf(w, "%s[%s] depth:%d edgelen:%d size:%d children:%d\n",
		indent, kind, depth, n.edgeLen(), n.size, n.childCount()); err != nil {
		return err
	}

	if n.children == nil {
		return nil
	}
	for i := 0; i < n.children.capacity(); i++ {
		child, ok := n.children.valueAt(i)
		if !ok {
			continue
		}
		if err := child.dumpRec(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
