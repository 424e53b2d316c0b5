package sequencer

import "github.com/arborix/radix"

// Runes is a Sequencer over []rune keys, one element per Unicode code
// point. It does not decode UTF-8 itself: convert a string key once
// with ToRuneKey before inserting or querying, so repeated
// element-at-index access stays O(1) instead of re-scanning the string
// from the start on every call.
var Runes runeSequencer

type runeSequencer struct{}

func (runeSequencer) Length(s []rune) int { return len(s) }

// Hash returns the code point's own value. For ordinary text this
// keeps the dense child index small (the Latin and common punctuation
// ranges fit in a byte); a key that mixes in rare high code points
// pays for a larger index only at the nodes branching on them.
func (runeSequencer) Hash(s []rune, i int) int { return int(s[i]) }

func (runeSequencer) Matches(a []rune, ia int, b []rune, ib int, cap int) int {
	n := 0
	for n < cap && a[ia+n] == b[ib+n] {
		n++
	}
	return n
}

var _ radix.Sequencer[[]rune] = Runes

// ToRuneKey converts a string into the []rune form Runes expects.
func ToRuneKey(s string) []rune { return []rune(s) }
