package sequencer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesSequencer(t *testing.T) {
	a := []byte("hello")
	b := []byte("help")

	require.Equal(t, 5, Bytes.Length(a))
	require.Equal(t, int('h'), Bytes.Hash(a, 0))

	require.Equal(t, 3, Bytes.Matches(a, 0, b, 0, 5))
	require.Equal(t, 5, Bytes.Matches(a, 0, a, 0, 5))
}
