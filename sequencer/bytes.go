// Package sequencer provides ready-made radix.Sequencer implementations
// for the key shapes most callers reach for first: raw bytes, Unicode
// text, fixed-width integers, and opaque binary tokens. radix itself
// never imports this package — a Sequencer is a capability callers
// supply, not something the core tree depends on.
package sequencer

import "github.com/arborix/radix"

// Bytes is a Sequencer over []byte keys, one element per byte. It is
// the natural default for byte-string keys: URL paths, protocol
// frames, raw identifiers.
var Bytes bytesSequencer

type bytesSequencer struct{}

func (bytesSequencer) Length(s []byte) int { return len(s) }

// Hash returns the byte's own value, which is already a small
// non-negative integer (0-255), so the dense child index never grows
// beyond what a single byte alphabet needs.
func (bytesSequencer) Hash(s []byte, i int) int { return int(s[i]) }

func (bytesSequencer) Matches(a []byte, ia int, b []byte, ib int, cap int) int {
	n := 0
	for n < cap && a[ia+n] == b[ib+n] {
		n++
	}
	return n
}

var _ radix.Sequencer[[]byte] = Bytes
