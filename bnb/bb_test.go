// Package bnb_test validates the branch-and-bound search.
// Focus:
//  1. Known scenarios and degenerate inputs.
//  2. Optimality, feasibility and consistency against exhaustive enumeration.
//  3. Determinism and the documented take-first tie-break.
//  4. Budgets: node and time limits return a feasible incumbent.
package bnb_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
)

// ---------------------------
// 1) Scenarios and edge cases.
// ---------------------------

func TestSearch_ClassicScenario(t *testing.T) {
	items := sortedCopy(classicItems())

	value, taken := bnb.Search(items, 50)
	assert.Equal(t, 220, value)
	assert.Equal(t, []int{0, 1, 1}, taken, "items 1 and 2 packed, in original order")
}

func TestSearch_ItemDoesNotFit(t *testing.T) {
	items := []bnb.Item{{Index: 0, Value: 10, Weight: 5}}

	value, taken := bnb.Search(items, 3)
	assert.Equal(t, 0, value)
	assert.Equal(t, []int{0}, taken)
}

func TestSearch_NoItems(t *testing.T) {
	value, taken := bnb.Search(nil, 100)
	assert.Equal(t, 0, value)
	assert.Empty(t, taken)
}

func TestSearch_ZeroCapacity(t *testing.T) {
	items := sortedCopy(classicItems())

	value, taken := bnb.Search(items, 0)
	assert.Equal(t, 0, value)
	assert.Equal(t, []int{0, 0, 0}, taken)
}

func TestSearch_SingleItemFits(t *testing.T) {
	items := []bnb.Item{{Index: 0, Value: 42, Weight: 7}}

	value, taken := bnb.Search(items, 7)
	assert.Equal(t, 42, value)
	assert.Equal(t, []int{1}, taken)
}

func TestSearch_ZeroValueItemsNeverImprove(t *testing.T) {
	items := []bnb.Item{
		{Index: 0, Value: 0, Weight: 1},
		{Index: 1, Value: 0, Weight: 2},
	}

	value, taken := bnb.Search(sortedCopy(items), 10)
	assert.Equal(t, 0, value)
	assert.Equal(t, []int{0, 0}, taken, "an all-zero packing is never replaced by an equal one")
}

// ---------------------------------------------
// 2) Optimality / feasibility / consistency.
// ---------------------------------------------

func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var trial int
	for trial = 0; trial < 200; trial++ {
		items := sortedCopy(randomItems(rng, rng.Intn(bruteMaxN+1), 100, 30))
		capacity := rng.Intn(120)

		value, taken := bnb.Search(items, capacity)
		require.Equalf(t, bruteForce(items, capacity), value, "trial=%d", trial)
		require.Len(t, taken, len(items))
		mustFeasible(t, items, capacity, taken, value)
	}
}

// ---------------------------------------------
// 3) Determinism and tie-break.
// ---------------------------------------------

func TestSearch_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	items := sortedCopy(randomItems(rng, 25, 500, 60))

	v1, t1 := bnb.Search(items, 300)
	v2, t2 := bnb.Search(items, 300)
	assert.Equal(t, v1, v2, "same input, same value")
	assert.Equal(t, t1, t2, "same input, same selection")
}

func TestSearch_TieBreakTakesEarlierItem(t *testing.T) {
	// Two identical items, room for one: the take branch is explored first,
	// so the first item in sorted order wins.
	items := sortedCopy([]bnb.Item{
		{Index: 0, Value: 5, Weight: 5},
		{Index: 1, Value: 5, Weight: 5},
	})

	value, taken := bnb.Search(items, 5)
	assert.Equal(t, 5, value)
	assert.Equal(t, []int{1, 0}, taken)
}

func TestSearch_ReturnedVectorIsIndependent(t *testing.T) {
	items := sortedCopy(classicItems())

	_, taken := bnb.Search(items, 50)
	taken[0] = 1
	_, again := bnb.Search(items, 50)
	assert.Equal(t, []int{0, 1, 1}, again, "mutating a result must not leak into later searches")
}

// ---------------------------------------------
// 4) BranchAndBound: stats and budgets.
// ---------------------------------------------

func TestBranchAndBound_Stats(t *testing.T) {
	items := sortedCopy(classicItems())

	res, err := bnb.BranchAndBound(items, 50, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.Equal(t, 220, res.Value)

	st := res.Stats
	assert.GreaterOrEqual(t, st.Nodes, 1)
	assert.GreaterOrEqual(t, st.Expanded, 1)
	assert.GreaterOrEqual(t, st.Improvements, 1)
	assert.GreaterOrEqual(t, st.MaxFrontier, 2)
	assert.GreaterOrEqual(t, st.Nodes, st.Expanded+st.PrunedInfeasible+st.PrunedBound,
		"every popped node is expanded, pruned or a leaf")
}

func TestBranchAndBound_Errors(t *testing.T) {
	items := sortedCopy(classicItems())

	_, err := bnb.BranchAndBound(items, -1, bnb.DefaultOptions())
	assert.ErrorIs(t, err, bnb.ErrNegativeCapacity)

	_, err = bnb.BranchAndBound(items, 50, bnb.Options{NodeLimit: -1})
	assert.ErrorIs(t, err, bnb.ErrBadOptions)

	_, err = bnb.BranchAndBound(items, 50, bnb.Options{TimeLimit: -time.Second})
	assert.ErrorIs(t, err, bnb.ErrBadOptions)
}

func TestBranchAndBound_NodeLimit(t *testing.T) {
	items := sortedCopy(hardItems(40))
	const capacity = 501

	res, err := bnb.BranchAndBound(items, capacity, bnb.Options{NodeLimit: 64})
	require.ErrorIs(t, err, bnb.ErrNodeLimit)
	assert.False(t, res.Optimal)
	assert.Equal(t, 64, res.Stats.Nodes)
	assert.Positive(t, res.Value, "the take-first dive finds an incumbent quickly")
	mustFeasible(t, items, capacity, res.Taken, res.Value)
}

func TestBranchAndBound_TimeLimit(t *testing.T) {
	items := sortedCopy(hardItems(40))
	const capacity = 501

	res, err := bnb.BranchAndBound(items, capacity, bnb.Options{TimeLimit: time.Millisecond})
	require.ErrorIs(t, err, bnb.ErrTimeLimit)
	assert.False(t, res.Optimal)
	mustFeasible(t, items, capacity, res.Taken, res.Value)
}

func TestBranchAndBound_GenerousLimitsProveOptimality(t *testing.T) {
	items := sortedCopy(classicItems())

	res, err := bnb.BranchAndBound(items, 50, bnb.Options{TimeLimit: time.Minute, NodeLimit: 1 << 20})
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.Equal(t, 220, res.Value)
}
