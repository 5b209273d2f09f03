// Package bnb - validation utilities shared by the search and the pipeline.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending position where it helps the caller.
//   - O(n) worst case; one O(n) scratch slice for the index permutation check.
package bnb

import "fmt"

// ValidateOptions rejects negative budgets.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	if opts.TimeLimit < 0 || opts.NodeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}

// ValidateInstance checks the preconditions of Estimate and Search:
//   - capacity ≥ 0                                  (ErrNegativeCapacity);
//   - every weight > 0                              (ErrNonPositiveWeight);
//   - every value ≥ 0                               (ErrNegativeValue);
//   - indices form a permutation of 0..len(items)-1 (ErrBadIndex).
//
// Item errors are wrapped with the item position.
//
// Complexity: O(n) time and O(n) extra space.
func ValidateInstance(items []Item, capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	var (
		n    = len(items)
		seen = make([]bool, n)
		i    int
		it   Item
	)
	for i, it = range items {
		if it.Weight <= 0 {
			return fmt.Errorf("item %d (weight %d): %w", i, it.Weight, ErrNonPositiveWeight)
		}
		if it.Value < 0 {
			return fmt.Errorf("item %d (value %d): %w", i, it.Value, ErrNegativeValue)
		}
		if it.Index < 0 || it.Index >= n || seen[it.Index] {
			return fmt.Errorf("item %d (index %d): %w", i, it.Index, ErrBadIndex)
		}
		seen[it.Index] = true
	}

	return nil
}

// SelectionValue returns the total value of the items marked in taken.
// Entries outside 0/1 or indices outside taken count as not selected.
//
// Complexity: O(n).
func SelectionValue(items []Item, taken []int) int {
	var total int
	for _, it := range items {
		if it.Index >= 0 && it.Index < len(taken) && taken[it.Index] == 1 {
			total += it.Value
		}
	}

	return total
}

// SelectionWeight returns the total weight of the items marked in taken.
//
// Complexity: O(n).
func SelectionWeight(items []Item, taken []int) int {
	var total int
	for _, it := range items {
		if it.Index >= 0 && it.Index < len(taken) && taken[it.Index] == 1 {
			total += it.Weight
		}
	}

	return total
}

// ValidateSelection verifies that taken is a 0/1 vector with one entry per
// item and that the selected weight fits in capacity.
//
// Complexity: O(n).
func ValidateSelection(items []Item, capacity int, taken []int) error {
	if len(taken) != len(items) {
		return fmt.Errorf("selection has %d entries for %d items: %w", len(taken), len(items), ErrInfeasibleSelection)
	}
	for i, x := range taken {
		if x != 0 && x != 1 {
			return fmt.Errorf("selection entry %d is %d: %w", i, x, ErrInfeasibleSelection)
		}
	}
	if w := SelectionWeight(items, taken); w > capacity {
		return fmt.Errorf("selected weight %d exceeds capacity %d: %w", w, capacity, ErrInfeasibleSelection)
	}

	return nil
}
