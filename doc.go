// Package knapsack is an exact 0/1 knapsack solver: given items with a value
// and a weight and a capacity, it finds the most valuable subset that fits.
//
// 🚀 What is inside?
//
//	A small, deterministic, single-threaded toolkit:
//		• Fractional-relaxation upper bound (LP bound)
//		• Iterative depth-first branch-and-bound on an explicit stack
//		• Validation that rejects zero/negative weights before searching
//		• Optional time and node budgets returning the best packing so far
//		• Plain-text loader and two-line result reporter
//
// Packages:
//
//	bnb/           item model, Estimate, Search, BranchAndBound, Solve
//	instance/      input loader and result reporter
//	config/        YAML run configuration with validation
//	metrics/       Prometheus statistics of a search, textfile export
//	cmd/knapsack/  command-line front end
//
// Quick example:
//
//	items, _ := bnb.NewItems([]int{60, 100, 120}, []int{10, 20, 30})
//	res, _ := bnb.Solve(items, 50, bnb.DefaultOptions())
//	// res.Value == 220, res.Taken == [0 1 1]
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
