package radix

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// These mirror outofforest/iradix's own test idiom for a trie whose
// value type is a pointer to bool: lo.ToPtr builds the pointee inline
// instead of declaring a named variable just to take its address at
// every call site.
func TestPointerValuedTrieReplacesAndRestores(t *testing.T) {
	tr := New[string, *bool](stringSeq{}, nil)

	old, had := tr.Put("foo", lo.ToPtr(true))
	require.False(t, had)
	require.Nil(t, old)

	old, had = tr.Put("foo", lo.ToPtr(false))
	require.True(t, had)
	require.NotNil(t, old)
	require.True(t, *old)

	v, ok := tr.Get("foo", Exact)
	require.True(t, ok)
	require.False(t, *v)
}

func TestPointerValuedTrieOverOverlappingKeys(t *testing.T) {
	tr := New[string, *bool](stringSeq{}, nil)

	for _, k := range []string{"foobar", "foobaz", "foozip"} {
		_, had := tr.Put(k, lo.ToPtr(true))
		require.False(t, had)
	}
	require.Equal(t, 3, tr.Size())

	got := lo.Map(lo.Keys(map[string]struct{}{"foobar": {}, "foobaz": {}, "foozip": {}}), func(k string, _ int) bool {
		v, ok := tr.Get(k, Exact)
		return ok && v != nil && *v
	})
	require.ElementsMatch(t, []bool{true, true, true}, got)
}
