package sequencer

import (
	"bytes"
	"encoding/binary"

	"github.com/arborix/radix"
	"golang.org/x/crypto/blake2b"
)

// Content is a Sequencer over [][]byte keys: each element is an opaque
// binary token — a path segment, a protocol frame, a content-addressed
// chunk — compared and hashed by its full content rather than by a
// cheap positional byte, since unrelated tokens routinely share a
// first byte and a positional hash would collide on nearly every
// sibling set.
var Content contentSequencer

type contentSequencer struct{}

func (contentSequencer) Length(s [][]byte) int { return len(s) }

// Hash reduces the token's blake2b-256 digest to a bounded bucket. The
// digest, not the raw token, is hashed so two equal tokens always hash
// identically regardless of length, and two unequal tokens collide only
// at the bucket's resolution, same as Matches' full byte comparison is
// there to resolve.
func (contentSequencer) Hash(s [][]byte, i int) int {
	sum := blake2b.Sum256(s[i])
	return int(binary.LittleEndian.Uint16(sum[:2]))
}

func (contentSequencer) Matches(a [][]byte, ia int, b [][]byte, ib int, cap int) int {
	n := 0
	for n < cap && bytes.Equal(a[ia+n], b[ib+n]) {
		n++
	}
	return n
}

var _ radix.Sequencer[[][]byte] = Content
