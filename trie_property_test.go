package radix

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole node tree rooted at n and asserts the
// core size/shape invariants at every node: size is value-plus-children,
// non-root edges are non-empty, siblings never collide on hash, naked
// branches have at least two children, and a valued node's sequence
// exactly spans its own key.
func checkInvariants(t *testing.T, seqr Sequencer[string], n *Node[string, int]) {
	t.Helper()

	wantSize := 0
	if n.hasValue() {
		wantSize = 1
	}
	seen := make(map[int]bool)
	if n.children != nil {
		for i := 0; i < n.children.capacity(); i++ {
			child, ok := n.children.valueAt(i)
			if !ok {
				continue
			}
			wantSize += child.size

			require.Greater(t, child.end, child.start, "non-root node must have end > start")

			h := seqr.Hash(child.sequence, child.start)
			require.False(t, seen[h], "two siblings share hash %d", h)
			seen[h] = true

			checkInvariants(t, seqr, child)
		}
	}
	require.Equal(t, wantSize, n.size, "size must equal own value plus children's sizes")

	if !n.hasValue() && !n.isRoot() {
		require.GreaterOrEqual(t, n.childCount(), 2, "naked non-root branch must have at least two children")
	}

	if n.hasValue() {
		require.Equal(t, n.end, seqr.Length(n.sequence), "valued node's end must equal its key length")
		require.Equal(t, n.end, seqr.Matches(n.sequence, 0, n.sequence, 0, n.end), "valued node's sequence must match itself fully")
	}
}

func TestPropertyInvariantsHoldAfterRandomOps(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(50, 200)

	for round := 0; round < 20; round++ {
		var keys []string
		f.Fuzz(&keys)

		tr := newStringTrie(0)
		model := map[string]int{}

		for i, k := range keys {
			if k == "" {
				continue
			}
			want, hadWant := model[k]
			old, had := tr.Put(k, i)
			require.Equal(t, hadWant, had, "key %q", k)
			if hadWant {
				require.Equal(t, want, old, "key %q", k)
			}
			model[k] = i
		}
		checkInvariants(t, stringSeq{}, tr.root)

		// Every key should be retrievable with its latest value, and the
		// cached size should match the model's cardinality exactly.
		require.Equal(t, len(model), tr.Size())
		for k, v := range model {
			got, ok := tr.Get(k, Exact)
			require.True(t, ok, "key %q", k)
			require.Equal(t, v, got, "key %q", k)
		}

		// Remove half the keys, checking size bookkeeping and invariants
		// as we go.
		i := 0
		for k := range model {
			if i%2 == 0 {
				_, ok := tr.Remove(k)
				require.True(t, ok)
				delete(model, k)
				_, ok = tr.Get(k, Exact)
				require.False(t, ok)
			}
			i++
		}
		checkInvariants(t, stringSeq{}, tr.root)
		require.Equal(t, len(model), tr.Size())
	}
}

func TestPropertyPutTwiceLeavesSizeUnchanged(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for round := 0; round < 50; round++ {
		var k string
		var v1, v2 int
		f.Fuzz(&k)
		f.Fuzz(&v1)
		f.Fuzz(&v2)
		if k == "" {
			continue
		}

		tr := newStringTrie(0)
		tr.Put(k, v1)
		sizeBefore := tr.Size()

		old, had := tr.Put(k, v2)
		require.True(t, had)
		require.Equal(t, v1, old)
		require.Equal(t, sizeBefore, tr.Size())
	}
}

func TestPropertySearchModes(t *testing.T) {
	tr := newStringTrie(0)
	stored := []string{"ham", "hammer", "hamster", "apple"}
	for i, k := range stored {
		tr.Put(k, i+1)
	}

	// EXACT must hit iff the key was put verbatim.
	for _, k := range []string{"ham", "hammer", "hamster", "apple", "ha", "hams", "appl"} {
		_, ok := tr.Get(k, Exact)
		isStored := false
		for _, s := range stored {
			if s == k {
				isStored = true
			}
		}
		require.Equal(t, isStored, ok, "EXACT(%q)", k)
	}

	// STARTS_WITH must hit iff some stored key begins with the query.
	// Has is used rather than Get because "hamm" resolves to the naked
	// "m" branch, which Get reports as a miss.
	for _, tc := range []struct {
		q    string
		want bool
	}{
		{"ha", true}, {"ham", true}, {"hamm", true}, {"hamx", false}, {"z", false}, {"a", true},
	} {
		ok := tr.Has(tc.q, StartsWith)
		require.Equal(t, tc.want, ok, "STARTS_WITH(%q)", tc.q)
	}
}

// TestPropertySearchModePartial exercises PARTIAL against a query that
// lands mid-edge: "hello"/"help" share the naked branch "hel", whose
// children are the edges "lo" and "p". "hell" consumes all of "hel" and
// stops one rune into "lo" — a true mid-edge landing, not a node
// boundary — which PARTIAL must accept and EXACT must reject. "hz"
// mismatches within the "hel" edge itself and must miss under either
// mode.
func TestPropertySearchModePartial(t *testing.T) {
	tr := newStringTrie(0)
	tr.Put("hello", 1)
	tr.Put("help", 2)

	v, ok := tr.Get("hell", Partial)
	require.True(t, ok, "PARTIAL(%q)", "hell")
	require.Equal(t, 1, v)

	_, ok = tr.Get("hell", Exact)
	require.False(t, ok, "EXACT(%q) must not accept a mid-edge landing", "hell")

	_, ok = tr.Get("hz", Partial)
	require.False(t, ok, "PARTIAL(%q)", "hz")

	require.True(t, tr.Has("hell", Partial))
}
