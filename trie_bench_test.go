package radix

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"
)

var benchKeyCount = []int{1, 10, 100, 1_000, 10_000}

func randomKeys(prng *rand.Rand, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(prng.IntN(1<<30)) + "-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkPut(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := randomKeys(prng, n)
		b.Run(fmt.Sprintf("into %d", n), func(b *testing.B) {
			for b.Loop() {
				tr := newStringTrie(0)
				for i, k := range keys {
					tr.Put(k, i)
				}
			}
		})
	}
}

func BenchmarkGetExact(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := randomKeys(prng, n)
		tr := newStringTrie(0)
		for i, k := range keys {
			tr.Put(k, i)
		}
		probe := keys[prng.IntN(len(keys))]

		b.Run(fmt.Sprintf("in %d", n), func(b *testing.B) {
			for b.Loop() {
				tr.Get(probe, Exact)
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	prng := rand.New(rand.NewPCG(42, 42))
	for _, n := range benchKeyCount {
		keys := randomKeys(prng, n)
		b.Run(fmt.Sprintf("from %d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tr := newStringTrie(0)
				for j, k := range keys {
					tr.Put(k, j)
				}
				b.StartTimer()
				tr.Remove(keys[prng.IntN(len(keys))])
			}
		})
	}
}
