// Package bnb solves the 0/1 knapsack problem exactly.
//
// Given items with a non-negative value and a positive weight and a
// capacity, it picks the subset of maximum total value whose total weight
// fits in the capacity.
//
// Building blocks:
//
//   - Estimate: fractional-relaxation upper bound from a position onward.
//     Complexity: O(n).
//   - Search: iterative depth-first branch-and-bound on an explicit stack.
//     Complexity: O(2ⁿ) worst case, far less in practice thanks to pruning.
//     Memory: O(depth·n).
//   - BranchAndBound: Search with time/node budgets and statistics.
//   - Solve: validation, density sort, BranchAndBound and a result check.
//
// Selection vectors always use original input order: entry i is 1 when the
// item with Index i is packed, whatever order the search visited items in.
//
// Usage:
//
//	items, _ := bnb.NewItems([]int{60, 100, 120}, []int{10, 20, 30})
//	res, err := bnb.Solve(items, 50, bnb.DefaultOptions())
//	// res.Value == 220, res.Taken == [0 1 1]
//
// Zero or negative weights are rejected with ErrNonPositiveWeight before
// any search starts.
package bnb
