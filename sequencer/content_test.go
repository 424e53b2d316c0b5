package sequencer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentSequencer(t *testing.T) {
	a := [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}
	b := [][]byte{[]byte("foo"), []byte("bar"), []byte("qux")}

	require.Equal(t, 3, Content.Length(a))
	require.Equal(t, 2, Content.Matches(a, 0, b, 0, 3))

	require.Equal(t, Content.Hash(a, 0), Content.Hash(b, 0)) // equal tokens hash identically
	require.NotEqual(t, Content.Hash(a, 2), Content.Hash(b, 2), "distinct tokens should not collide in this tiny sample")
}
