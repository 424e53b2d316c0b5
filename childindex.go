package radix

import "github.com/bits-and-blooms/bitset"

// childIndex is the dense mapping from a small non-negative element hash
// to a child node. It is direct-indexed rather than popcount-compacted
// because valueAt must stay O(1): the position-order iterators in
// view.go and iter.go rely on being able to address every slot up to
// capacity() directly, not through a rank computation over a shrinking
// bitset.
//
// occupied tracks which slots are live so size() doesn't have to scan
// the whole backing slice, and so iterators can ask for the next
// occupied position instead of probing one slot at a time.
type childIndex[S any, T any] struct {
	slots    []*Node[S, T]
	occupied *bitset.BitSet
	count    int
}

func newChildIndex[S any, T any]() *childIndex[S, T] {
	return &childIndex[S, T]{occupied: bitset.New(0)}
}

func (c *childIndex[S, T]) get(h int) (*Node[S, T], bool) {
	if h < 0 || h >= len(c.slots) || !c.occupied.Test(uint(h)) {
		return nil, false
	}
	return c.slots[h], true
}

func (c *childIndex[S, T]) put(h int, n *Node[S, T]) {
	if h >= len(c.slots) {
		grown := make([]*Node[S, T], h+1)
		copy(grown, c.slots)
		c.slots = grown
	}
	if !c.occupied.Test(uint(h)) {
		c.occupied.Set(uint(h))
		c.count++
	}
	c.slots[h] = n
}

func (c *childIndex[S, T]) remove(h int) {
	if h < 0 || h >= len(c.slots) || !c.occupied.Test(uint(h)) {
		return
	}
	c.occupied.Clear(uint(h))
	c.slots[h] = nil
	c.count--
}

// size returns the number of occupied slots.
func (c *childIndex[S, T]) size() int {
	return c.count
}

// capacity returns 1 + the maximum hash ever inserted, or 0 if empty.
// It only ever grows: removals never shrink it, so iterator position
// indices stay valid across a remove that isn't the iterator's own.
func (c *childIndex[S, T]) capacity() int {
	return len(c.slots)
}

// valueAt returns the child at position i, for 0 <= i < capacity().
func (c *childIndex[S, T]) valueAt(i int) (*Node[S, T], bool) {
	if i < 0 || i >= len(c.slots) || !c.occupied.Test(uint(i)) {
		return nil, false
	}
	return c.slots[i], true
}

// nextOccupied returns the smallest occupied position strictly greater
// than after, or (0, false) if none exists. Iterators use this instead
// of scanning one slot at a time.
func (c *childIndex[S, T]) nextOccupied(after int) (int, bool) {
	if after+1 >= len(c.slots) {
		return 0, false
	}
	idx, ok := c.occupied.NextSet(uint(after + 1))
	if !ok || int(idx) >= len(c.slots) {
		return 0, false
	}
	return int(idx), true
}

// prevOccupied returns the largest occupied position strictly less than
// before, or (0, false) if none exists. Used only by the reverse
// position-order iterator (reverse_iter.go), which is not a hot path, so
// a linear backward scan is acceptable rather than requiring a bitset
// implementation that supports reverse rank queries.
func (c *childIndex[S, T]) prevOccupied(before int) (int, bool) {
	if before > len(c.slots) {
		before = len(c.slots)
	}
	for i := before - 1; i >= 0; i-- {
		if c.occupied.Test(uint(i)) {
			return i, true
		}
	}
	return 0, false
}

func (c *childIndex[S, T]) clear() {
	c.slots = nil
	c.occupied = bitset.New(0)
	c.count = 0
}
