// Package bnb defines the item model, options, results and sentinel errors
// shared by the 0/1 knapsack estimator and branch-and-bound search.
package bnb

import (
	"errors"
	"time"
)

// Sentinel errors returned by the bnb package.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("bnb: capacity must be non-negative")

	// ErrNonPositiveWeight indicates an item whose weight is zero or negative.
	// Such items would make the fractional relaxation divide by zero.
	ErrNonPositiveWeight = errors.New("bnb: item weight must be positive")

	// ErrNegativeValue indicates an item with a value below zero.
	ErrNegativeValue = errors.New("bnb: item value must be non-negative")

	// ErrBadIndex indicates that item indices are not a permutation of 0..n-1.
	ErrBadIndex = errors.New("bnb: item indices must be a permutation of 0..n-1")

	// ErrLengthMismatch indicates parallel input slices of different lengths.
	ErrLengthMismatch = errors.New("bnb: values and weights differ in length")

	// ErrBadOptions indicates a negative TimeLimit or NodeLimit.
	ErrBadOptions = errors.New("bnb: limits must be non-negative")

	// ErrInfeasibleSelection indicates a selection vector that is malformed
	// or exceeds capacity.
	ErrInfeasibleSelection = errors.New("bnb: selection is infeasible")

	// ErrTimeLimit is returned together with the incumbent when the time
	// budget ran out before the frontier emptied.
	ErrTimeLimit = errors.New("bnb: time limit exceeded")

	// ErrNodeLimit is returned together with the incumbent when the node
	// budget ran out before the frontier emptied.
	ErrNodeLimit = errors.New("bnb: node limit exceeded")
)

// Item is one candidate for the knapsack.
//
// Index is the 0-based position of the item in the original input. It
// survives sorting and addresses the item's slot in a selection vector.
type Item struct {
	Index  int
	Value  int
	Weight int
}

// Density returns Value/Weight. It is used only to order items.
func (it Item) Density() float64 {
	return float64(it.Value) / float64(it.Weight)
}

// Stats counts what the engine did during one search.
type Stats struct {
	Nodes            int           // nodes popped from the frontier
	Expanded         int           // nodes that produced two children
	PrunedInfeasible int           // nodes discarded for negative capacity
	PrunedBound      int           // nodes discarded because bound ≤ incumbent
	Improvements     int           // incumbent updates
	MaxFrontier      int           // peak frontier length
	Elapsed          time.Duration // wall-clock time spent in the search loop
}

// Result holds the outcome of a knapsack search.
type Result struct {
	// Value is the total value of the selected items.
	Value int

	// Taken has one 0/1 entry per item, addressed by Item.Index.
	Taken []int

	// Optimal is true when the frontier was exhausted, i.e. no limit stopped
	// the search and Value is proven optimal.
	Optimal bool

	// Stats describes the work performed.
	Stats Stats
}

// Options configures BranchAndBound and Solve.
//
//   - TimeLimit: wall-clock budget; 0 means unlimited. Checked every
//     4096 popped nodes.
//   - NodeLimit: maximum number of popped nodes; 0 means unlimited.
//
// When a limit is hit the incumbent is returned with Optimal=false and
// ErrTimeLimit or ErrNodeLimit.
type Options struct {
	TimeLimit time.Duration
	NodeLimit int
}

// DefaultOptions returns unlimited options: the search always runs to
// completion and proves optimality.
func DefaultOptions() Options {
	return Options{
		TimeLimit: 0,
		NodeLimit: 0,
	}
}
