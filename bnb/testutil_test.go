// Package bnb_test provides small helpers shared across *_test.go files in
// this package: instance builders and an exhaustive reference solver.
package bnb_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet seeds every pseudo-random instance so failures reproduce.
	seedDet = int64(20240611)

	// bruteMaxN caps instance sizes checked against exhaustive enumeration.
	bruteMaxN = 14
)

// classicItems is the textbook instance: capacity 50 → optimum 220 with
// items 1 and 2 packed.
func classicItems() []bnb.Item {
	return []bnb.Item{
		{Index: 0, Value: 60, Weight: 10},
		{Index: 1, Value: 100, Weight: 20},
		{Index: 2, Value: 120, Weight: 30},
	}
}

// sortedCopy returns a density-sorted copy of items.
func sortedCopy(items []bnb.Item) []bnb.Item {
	out := make([]bnb.Item, len(items))
	copy(out, items)
	bnb.SortByDensity(out)

	return out
}

// randomItems builds n items with values in [0, maxValue] and weights in
// [1, maxWeight], indexed in generation order.
func randomItems(rng *rand.Rand, n, maxValue, maxWeight int) []bnb.Item {
	items := make([]bnb.Item, n)
	var i int
	for i = 0; i < n; i++ {
		items[i] = bnb.Item{
			Index:  i,
			Value:  rng.Intn(maxValue + 1),
			Weight: 1 + rng.Intn(maxWeight),
		}
	}

	return items
}

// hardItems builds n items of density exactly 1 with even weights. With an
// odd capacity the relaxation always reports a fractional fill that no
// integral packing reaches, so bound pruning is almost useless and the
// search tree is exponential.
func hardItems(n int) []bnb.Item {
	items := make([]bnb.Item, n)
	var i int
	for i = 0; i < n; i++ {
		w := 2 * (i + 10)
		items[i] = bnb.Item{Index: i, Value: w, Weight: w}
	}

	return items
}

// bruteFrom returns the best integral value achievable from items[start:]
// within capacity, by enumerating every subset.
func bruteFrom(items []bnb.Item, capacity int, start int) int {
	var (
		rest = items[start:]
		m    = len(rest)
		best int
		mask int
	)
	for mask = 0; mask < 1<<m; mask++ {
		var v, w, j int
		for j = 0; j < m; j++ {
			if mask&(1<<j) != 0 {
				v += rest[j].Value
				w += rest[j].Weight
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// bruteForce returns the optimal value for the whole instance.
func bruteForce(items []bnb.Item, capacity int) int {
	return bruteFrom(items, capacity, 0)
}

// mustFeasible asserts that taken is a valid packing worth value.
func mustFeasible(t *testing.T, items []bnb.Item, capacity int, taken []int, value int) {
	t.Helper()
	require.NoError(t, bnb.ValidateSelection(items, capacity, taken), "selection must be feasible")
	require.Equal(t, value, bnb.SelectionValue(items, taken), "selection value must match reported value")
}
