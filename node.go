package radix

// Node is a single edge-labeled radix node. Its sequence field is a
// borrowed handle: multiple nodes along a root-to-leaf path may share
// the same underlying sequence, windowed by [start, end). A node with no
// value is "naked" — it exists only as a branching point; a naked node's
// sequence window is an artifact of radix compression and must never be
// treated as a retrievable key.
//
// parent is a non-owning back-reference; the owning direction runs from
// a node to its children through childIndex. A Node is mutated in place
// rather than copied on write: there is exactly one tree, and exactly
// one writer at a time (see the package doc).
type Node[S any, T any] struct {
	parent   *Node[S, T]
	sequence S
	start    int
	end      int
	value    *T
	children *childIndex[S, T]
	size     int
}

func newRoot[S any, T any]() *Node[S, T] {
	return &Node[S, T]{}
}

func (n *Node[S, T]) isRoot() bool {
	return n.parent == nil
}

func (n *Node[S, T]) edgeLen() int {
	return n.end - n.start
}

func (n *Node[S, T]) hasValue() bool {
	return n.value != nil
}

func (n *Node[S, T]) childCount() int {
	if n.children == nil {
		return 0
	}
	return n.children.size()
}

// soleChild returns the one child of a node with exactly one child. It
// must only be called when childCount() == 1; finding none is a corrupt
// child index, not a reachable caller error, so it panics rather than
// returning a nil the caller would otherwise silently absorb.
func (n *Node[S, T]) soleChild() *Node[S, T] {
	for i := 0; i < n.children.capacity(); i++ {
		if ch, ok := n.children.valueAt(i); ok {
			return ch
		}
	}
	panic("radix: soleChild called on a node without exactly one child")
}

// adjustSize walks from n to the root, adding delta to every node's
// cached size along the way. It is the sole primitive that keeps
// invariant 4 (size == own value + sum of children's sizes) true after a
// value is attached to or cleared from a node.
func (n *Node[S, T]) adjustSize(delta int) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.size += delta
	}
}

// attachLeaf creates a new valued leaf (seq, start, end, value), attaches
// it to parent keyed by hash, and propagates the size increase to the
// root. This is the common tail of every insertion case in the insert
// algorithm that ends with "attach a new leaf".
func attachLeaf[S any, T any](parent *Node[S, T], hash int, seq S, start, end int, value T) *Node[S, T] {
	leaf := &Node[S, T]{parent: parent, sequence: seq, start: start, end: end}
	if parent.children == nil {
		parent.children = newChildIndex[S, T]()
	}
	parent.children.put(hash, leaf)
	v := value
	leaf.value = &v
	leaf.adjustSize(1)
	return leaf
}

// split implements the edge-splitting step of insertion. cur is split at
// the relative index at: a new node c takes over cur's previous identity
// (sequence window, value, children), and cur is rewritten in place to
// become the branching parent of c, optionally carrying newValue as its
// own new value.
//
// c's size is copied directly rather than recomputed, because c inherits
// exactly the subtree cur used to own; only the possible introduction of
// newValue at cur changes the total, so that is the only delta adjusted
// up the tree.
func split[S any, T any](seqr Sequencer[S], cur *Node[S, T], at int, newValue *T) *Node[S, T] {
	if at >= cur.edgeLen() {
		panic("radix: split called at or past the end of the edge")
	}
	c := &Node[S, T]{
		parent:   cur,
		sequence: cur.sequence,
		start:    cur.start + at,
		end:      cur.end,
		value:    cur.value,
		children: cur.children,
		size:     cur.size,
	}
	if c.children != nil {
		for i := 0; i < c.children.capacity(); i++ {
			if ch, ok := c.children.valueAt(i); ok {
				ch.parent = c
			}
		}
	}

	cur.value = newValue
	cur.end = cur.start + at
	cur.children = newChildIndex[S, T]()
	cur.size = c.size
	if newValue != nil {
		cur.adjustSize(1)
	}

	hash := seqr.Hash(cur.sequence, cur.end)
	cur.children.put(hash, c)
	return c
}

// removeAt clears n's value (propagating the size decrement to the
// root) and then compacts n according to its remaining child count:
// detach if it has none, absorb its sole remaining child if it has
// exactly one, or leave it as a surviving naked branch if it has two or
// more. Compaction is eager by one level: when detaching n leaves its
// parent a naked non-root node with a single child, the parent absorbs
// that child in the same call — see DESIGN.md's Open Question on lazy
// vs eager compaction.
func removeAt[S any, T any](seqr Sequencer[S], n *Node[S, T]) *T {
	old := n.value
	if old != nil {
		n.value = nil
		n.adjustSize(-1)
	}

	switch n.childCount() {
	case 0:
		p := n.parent
		if p != nil {
			h := seqr.Hash(n.sequence, n.start)
			p.children.remove(h)
		}
		n.parent = nil
		if p != nil && !p.isRoot() && !p.hasValue() && p.childCount() == 1 {
			removeAt[S, T](seqr, p)
		}
	case 1:
		d := n.soleChild()
		n.children = d.children
		n.value = d.value
		n.sequence = d.sequence
		n.end = d.end
		if n.children != nil {
			for i := 0; i < n.children.capacity(); i++ {
				if ch, ok := n.children.valueAt(i); ok {
					ch.parent = n
				}
			}
		}
		d.parent = nil
		d.children = nil
		d.value = nil
	}
	return old
}
