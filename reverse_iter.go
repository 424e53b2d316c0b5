package radix

// reversePositionIter walks a subtree in the exact reverse of
// positionIter's order: for each node, every descendant reachable
// through its highest-position child is visited before its
// lowest-position child, and the node itself is yielded only after all
// of its children have been. Rather than tracking "have we already
// pushed this node's edges" in a side map, each frame carries its own
// position counter, since the dense childIndex lets us ask directly for
// the next position to descend into instead of re-scanning a sorted
// edge slice.
type reversePositionIter[S any, T any] struct {
	seqr         Sequencer[S]
	frames       []rframe[S, T]
	includeNaked bool
	cur          *Node[S, T]
}

type rframe[S any, T any] struct {
	node *Node[S, T]
	pos  int
}

func newReversePositionIter[S any, T any](seqr Sequencer[S], root *Node[S, T], includeNaked bool) *reversePositionIter[S, T] {
	if root == nil {
		return &reversePositionIter[S, T]{seqr: seqr, includeNaked: includeNaked}
	}
	it := &reversePositionIter[S, T]{seqr: seqr, includeNaked: includeNaked}
	it.frames = []rframe[S, T]{it.makeFrame(root)}
	return it
}

func (it *reversePositionIter[S, T]) makeFrame(n *Node[S, T]) rframe[S, T] {
	pos := 0
	if n.children != nil {
		pos = n.children.capacity()
	}
	return rframe[S, T]{node: n, pos: pos}
}

// next advances to the next qualifying node in reverse position order.
func (it *reversePositionIter[S, T]) next() (*Node[S, T], bool) {
	for len(it.frames) > 0 {
		top := &it.frames[len(it.frames)-1]
		n := top.node

		if top.pos > 0 {
			prevPos, ok := n.children.prevOccupied(top.pos)
			if ok {
				top.pos = prevPos
				child, _ := n.children.valueAt(prevPos)
				it.frames = append(it.frames, it.makeFrame(child))
				continue
			}
			top.pos = 0
		}

		it.frames = it.frames[:len(it.frames)-1]
		if (n.hasValue() || it.includeNaked) && !n.isRoot() {
			it.cur = n
			return n, true
		}
	}
	return nil, false
}

func (it *reversePositionIter[S, T]) remove() (*T, bool) {
	if it.cur == nil {
		return nil, false
	}
	old := removeAt[S, T](it.seqr, it.cur)
	it.cur = nil
	return old, old != nil
}

// ReverseIterator yields node handles in the reverse of the order
// View.Nodes would produce them.
type ReverseIterator[S any, T any] struct {
	it *reversePositionIter[S, T]
}

// Next returns the next node handle in reverse position order.
func (r *ReverseIterator[S, T]) Next() (NodeHandle[S, T], bool) {
	n, ok := r.it.next()
	if !ok {
		return NodeHandle[S, T]{}, false
	}
	return NodeHandle[S, T]{node: n}, true
}

// Remove deletes the node most recently returned by Next.
func (r *ReverseIterator[S, T]) Remove() (T, bool) {
	old, ok := r.it.remove()
	if !ok {
		var zero T
		return zero, false
	}
	return *old, true
}
