package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseNodesIsExactReverseOfForward(t *testing.T) {
	tr := seedHamTrie()

	var forward []int
	fi := tr.Values().Values()
	for {
		v, ok := fi.Next()
		if !ok {
			break
		}
		forward = append(forward, v)
	}

	var reverse []int
	ri := tr.Values().ReverseNodes()
	for {
		n, ok := ri.Next()
		if !ok {
			break
		}
		v, ok := n.Value()
		require.True(t, ok)
		reverse = append(reverse, v)
	}

	require.Len(t, reverse, len(forward))
	for i := range forward {
		require.Equal(t, forward[i], reverse[len(reverse)-1-i])
	}
}

func TestReverseNodesOnNodeSetAllIncludesNaked(t *testing.T) {
	tr := newStringTrie(0)
	tr.Put("hello", 1)
	tr.Put("help", 2)

	total := 0
	naked := 0
	ri := tr.NodeSetAll().ReverseNodes()
	for {
		n, ok := ri.Next()
		if !ok {
			break
		}
		total++
		if n.Naked() {
			naked++
		}
	}
	require.Equal(t, 3, total)
	require.Equal(t, 1, naked)
}
