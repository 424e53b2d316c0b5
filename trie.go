package radix

// Trie is a compact radix trie mapping sequences of type S to values of
// type T. It is not safe for concurrent use: concurrent reads are safe
// only while no writer (Put, Remove, or a View's Remove/iterator Remove)
// is active.
type Trie[S any, T any] struct {
	seqr        Sequencer[S]
	root        *Node[S, T]
	defaultMode MatchMode
	defaultVal  T
}

// New creates an empty trie using seqr to interpret keys of type S. defaultValue
// is returned by Get on a miss. The trie's default match mode starts as
// StartsWith.
func New[S any, T any](seqr Sequencer[S], defaultValue T) *Trie[S, T] {
	return &Trie[S, T]{
		seqr:        seqr,
		root:        newRoot[S, T](),
		defaultMode: StartsWith,
		defaultVal:  defaultValue,
	}
}

// Size returns the number of valued keys currently stored, in O(1) via
// the root's cached size.
func (t *Trie[S, T]) Size() int {
	return t.root.size
}

// Clear drops all children of the root, discarding every stored key.
func (t *Trie[S, T]) Clear() {
	t.root = newRoot[S, T]()
}

// DefaultMode returns the trie's configured default match mode.
func (t *Trie[S, T]) DefaultMode() MatchMode {
	return t.defaultMode
}

// SetDefaultMode changes the match mode used by Get/Has when no explicit
// mode is passed.
func (t *Trie[S, T]) SetDefaultMode(m MatchMode) {
	if !m.valid() {
		return
	}
	t.defaultMode = m
}

// SetDefaultValue changes the value Get returns on a miss.
func (t *Trie[S, T]) SetDefaultValue(v T) {
	t.defaultVal = v
}

func (t *Trie[S, T]) resolveMode(modes []MatchMode) MatchMode {
	if len(modes) > 0 {
		return modes[0]
	}
	return t.defaultMode
}

// Put inserts value under key, replacing and returning any prior value
// stored under the exact same key. A zero-length key is a no-op that
// returns the zero value of T and false.
func (t *Trie[S, T]) Put(key S, value T) (T, bool) {
	l := t.seqr.Length(key)
	if l == 0 {
		var zero T
		return zero, false
	}

	offset := 0
	hash0 := t.seqr.Hash(key, 0)
	if t.root.children == nil {
		t.root.children = newChildIndex[S, T]()
	}

	cur, found := t.root.children.get(hash0)
	if !found {
		attachLeaf(t.root, hash0, key, 0, l, value)
		var zero T
		return zero, false
	}

	for {
		nodeLen := cur.edgeLen()
		capN := minInt(nodeLen, l-offset)
		m := t.seqr.Matches(cur.sequence, cur.start, key, offset, capN)
		offset += m

		switch {
		case m < capN:
			// Partial edge mismatch: split with a naked new parent, then
			// attach the remainder of key as a fresh leaf beneath it.
			split[S, T](t.seqr, cur, m, nil)
			hash := t.seqr.Hash(key, offset)
			attachLeaf(cur, hash, key, offset, l, value)
			var zero T
			return zero, false
		case capN < nodeLen:
			// key is exhausted inside this edge: split, with the new
			// parent carrying value and key itself.
			v := value
			split[S, T](t.seqr, cur, capN, &v)
			cur.sequence = key
			var zero T
			return zero, false
		default:
			if offset == l {
				// Full edge match and key exhausted: canonicalize.
				var prior T
				var had bool
				if cur.value != nil {
					prior, had = *cur.value, true
				}
				v := value
				if cur.value == nil {
					cur.adjustSize(1)
				}
				cur.value = &v
				cur.sequence = key
				return prior, had
			}
			if cur.children == nil {
				hash := t.seqr.Hash(key, offset)
				attachLeaf(cur, hash, key, offset, l, value)
				var zero T
				return zero, false
			}
			hash := t.seqr.Hash(key, offset)
			next, ok := cur.children.get(hash)
			if !ok {
				attachLeaf(cur, hash, key, offset, l, value)
				var zero T
				return zero, false
			}
			cur = next
		}
	}
}

// Get looks up key using mode (or the trie's default mode if omitted),
// returning the matched node's value, or the configured default value on
// a miss. A matched node that happens to be naked (no value of its own,
// reached only because it is a prefix of some longer key) is also a
// miss.
func (t *Trie[S, T]) Get(key S, mode ...MatchMode) (T, bool) {
	n, ok := search[S, T](t.seqr, t.root, key, t.resolveMode(mode))
	if !ok || !n.hasValue() {
		return t.defaultVal, false
	}
	return *n.value, true
}

// Has reports whether key resolves to a node under mode (or the trie's
// default mode if omitted). Unlike Get, Has succeeds for a naked match:
// it answers "does this prefix relationship hold", not "is there a value
// here".
func (t *Trie[S, T]) Has(key S, mode ...MatchMode) bool {
	_, ok := search[S, T](t.seqr, t.root, key, t.resolveMode(mode))
	return ok
}

// Remove deletes the exact key, returning its value if present. Only
// EXACT-match keys are removable.
func (t *Trie[S, T]) Remove(key S) (T, bool) {
	n, ok := search[S, T](t.seqr, t.root, key, Exact)
	if !ok {
		var zero T
		return zero, false
	}
	old := removeAt[S, T](t.seqr, n)
	if old == nil {
		var zero T
		return zero, false
	}
	return *old, true
}
