package util

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomShuffle_PreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for size := 0; size < 20; size++ {
		in := make([]int, size)
		for i := range in {
			in[i] = i % 4
		}
		got := append([]int(nil), in...)

		RandomShuffle(got, rng.IntN)

		require.Len(t, got, size)
		sort.Ints(got)
		assert.Equal(t, sortedCopy(in), got)
	}
}

func TestRandomShuffle_SwapCount(t *testing.T) {
	calls := 0
	seq := []string{"a", "b", "c"}

	RandomShuffle(seq, func(n int) int {
		calls++
		return 0
	})

	// dos índices por swap, 10*len swaps
	assert.Equal(t, 2*10*len(seq), calls)
	assert.Equal(t, []string{"a", "b", "c"}, seq)
}

func TestShuffle_Empty(t *testing.T) {
	var seq []int
	assert.NotPanics(t, func() { Shuffle(seq) })
}

func TestOnce_CallsOnceWithFirstArgs(t *testing.T) {
	calls := 0
	var seen []int
	wrapped := Once(func(v int) int {
		calls++
		seen = append(seen, v)
		return v * 2
	})

	assert.Equal(t, 6, wrapped(3))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, wrapped(i+10))
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{3}, seen)
}

func sortedCopy(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	return out
}
