// Package bnb - fractional relaxation (upper bound) for 0/1 knapsack.
//
// Items are expected in descending density order. Walking that order and
// taking whole items while they fit, then the capacity-limited fraction of
// the first item that does not fit, yields the optimum of the LP relaxation.
// Dropping the integrality constraint can only enlarge the feasible set, so
// the result is never below the integral optimum reachable from the same
// state. Pruning soundness in bb.go relies on exactly this property.
package bnb

// Estimate returns an optimistic bound on the value obtainable from
// items[start:] with the given remaining capacity.
//
// Contracts:
//   - items are sorted by descending density (see SortByDensity);
//   - every weight is positive (see ValidateInstance);
//   - 0 ≤ start ≤ len(items); start == len(items) yields 0.
//
// A non-positive capacity admits nothing and yields 0.
//
// Complexity: O(n − start) time, O(1) space.
func Estimate(items []Item, capacity int, start int) float64 {
	if capacity <= 0 || start < 0 {
		return 0
	}

	var (
		estimate float64
		i        int
		it       Item
	)
	for i = start; i < len(items); i++ {
		it = items[i]
		if capacity >= it.Weight {
			estimate += float64(it.Value)
			capacity -= it.Weight

			continue
		}
		// First item that does not fit: take the fitting fraction and stop.
		estimate += float64(it.Value) * float64(capacity) / float64(it.Weight)

		break
	}

	return estimate
}
