// Package bnb - pipeline entry points.
//
// Solve is the canonical way to run the search on raw input: it validates,
// orders items by density on a private copy and runs BranchAndBound, then
// re-checks the returned selection against the original items.
package bnb

import (
	"errors"
	"fmt"
	"sort"
)

// NewItems builds items from parallel value/weight slices, assigning Index
// in input order. The slices must have equal length (ErrLengthMismatch).
// Values and weights are not validated here; see ValidateInstance.
func NewItems(values, weights []int) ([]Item, error) {
	if len(values) != len(weights) {
		return nil, ErrLengthMismatch
	}
	items := make([]Item, len(values))
	for i := range values {
		items[i] = Item{Index: i, Value: values[i], Weight: weights[i]}
	}

	return items, nil
}

// SortByDensity orders items in place by descending Value/Weight. Equal
// densities keep ascending Index, so the order (and therefore the search's
// tie-break) does not depend on the input permutation.
//
// Complexity: O(n log n).
func SortByDensity(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].Density(), items[j].Density()
		if di == dj {
			return items[i].Index < items[j].Index
		}

		return di > dj
	})
}

// Solve validates items and capacity, sorts a copy of items by density and
// runs BranchAndBound. The caller's slice is left untouched.
//
// Errors:
//   - validation sentinels from ValidateOptions and ValidateInstance;
//   - ErrTimeLimit / ErrNodeLimit with a feasible incumbent (Optimal=false);
//   - ErrInfeasibleSelection if the final selection fails re-validation,
//     which indicates a bug rather than bad input.
//
// Complexity: O(n log n) preprocessing plus the search (see bb.go).
func Solve(items []Item, capacity int, opts Options) (Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := ValidateInstance(items, capacity); err != nil {
		return Result{}, err
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	SortByDensity(sorted)

	res, err := BranchAndBound(sorted, capacity, opts)
	if err != nil && !errors.Is(err, ErrTimeLimit) && !errors.Is(err, ErrNodeLimit) {
		return Result{}, err
	}

	if verr := ValidateSelection(items, capacity, res.Taken); verr != nil {
		return Result{}, verr
	}
	if got := SelectionValue(items, res.Taken); got != res.Value {
		return Result{}, fmt.Errorf("selection value %d differs from reported %d: %w", got, res.Value, ErrInfeasibleSelection)
	}

	return res, err
}
