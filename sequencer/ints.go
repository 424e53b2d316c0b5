package sequencer

import "github.com/arborix/radix"

// Integer is the set of built-in integer kinds a key element may be
// drawn from.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Ints returns a Sequencer over []T keys for any integer type T, one
// element per value.
func Ints[T Integer]() radix.Sequencer[[]T] { return intsSequencer[T]{} }

type intsSequencer[T Integer] struct{}

func (intsSequencer[T]) Length(s []T) int { return len(s) }

// Hash mixes the element's bits down to a bounded non-negative bucket
// rather than using the value directly: unlike Bytes and Runes, T can
// be negative or span the full 64-bit range, and the dense child index
// indexes slots directly by hash value, so an unreduced hash could both
// panic (a negative slice index) and allocate a wildly oversized index
// for a single outlying key. Collisions within a bucket are resolved by
// Matches, as with every Sequencer.
func (intsSequencer[T]) Hash(s []T, i int) int {
	v := uint64(s[i])
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	return int(v & 0xff)
}

func (intsSequencer[T]) Matches(a []T, ia int, b []T, ib int, cap int) int {
	n := 0
	for n < cap && a[ia+n] == b[ib+n] {
		n++
	}
	return n
}

var _ radix.Sequencer[[]int] = Ints[int]()
