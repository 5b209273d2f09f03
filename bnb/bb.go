// Package bnb - Branch-and-Bound (exact search with an optimistic upper bound).
//
// The search walks the binary take/skip decision tree over items sorted by
// descending density. Recursion is replaced by an explicit LIFO frontier so
// that memory use is predictable and deep trees cannot overflow the call
// stack.
//
// Each popped node is processed in a fixed order:
//  1. Infeasibility prune: remaining capacity < 0 → discard.
//  2. Bound prune: bound ≤ incumbent → discard (a tie cannot improve value).
//  3. Incumbent update: value > incumbent → record value and selection.
//     Any prefix of feasible decisions is itself a feasible packing, so
//     inner nodes are valid candidates, not only leaves.
//  4. Terminal check: pos ≥ n → discard.
//  5. Expand: push the skip child, then the take child.
//
// Tie-break: children are pushed skip-first, so the take branch is popped
// first. Among equal-value optima the first one reached in take-first
// depth-first order is returned. The choice is deterministic for a given
// item order.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes (exact search); pruning keeps practical sizes small.
//   - Per node: O(n) for the bound plus O(n) for the child's selection copy.
//   - Memory: O(depth·n) for the frontier; each take child holds a fresh vector.
//
// Governance:
//   - Options.TimeLimit: soft wall-clock budget with sparse deadline checks.
//   - Options.NodeLimit: hard cap on popped nodes.
package bnb

import "time"

// deadlineMask spaces out wall-clock reads to one every 4096 pops.
const deadlineMask = 4095

// bbNode is one partial assignment of decisions for items[0:pos].
type bbNode struct {
	value    int     // value accumulated so far
	capacity int     // remaining capacity (may be negative for the take child)
	bound    float64 // value + Estimate(items, capacity, pos)
	taken    []int   // selection vector by Item.Index; read-only once pushed
	pos      int     // next item to decide
}

// bbEngine holds the policy, the frontier and the incumbent of one search.
// A fresh engine is built per call; nothing is shared between searches.
type bbEngine struct {
	items []Item
	n     int

	// Budgets
	useDeadline bool
	deadline    time.Time
	nodeLimit   int
	stopErr     error

	// Explicit LIFO frontier
	frontier []bbNode

	// Incumbent
	bestValue int
	bestTaken []int

	stats Stats
}

// push appends a node to the frontier and tracks its peak length.
func (e *bbEngine) push(nd bbNode) {
	e.frontier = append(e.frontier, nd)
	if len(e.frontier) > e.stats.MaxFrontier {
		e.stats.MaxFrontier = len(e.frontier)
	}
}

// pop removes and returns the most recently pushed node.
func (e *bbEngine) pop() bbNode {
	last := len(e.frontier) - 1
	nd := e.frontier[last]
	e.frontier[last] = bbNode{} // release the selection vector
	e.frontier = e.frontier[:last]

	return nd
}

// exhausted reports whether a budget stopped the search, recording the reason.
func (e *bbEngine) exhausted() bool {
	if e.nodeLimit > 0 && e.stats.Nodes >= e.nodeLimit {
		e.stopErr = ErrNodeLimit

		return true
	}
	if e.useDeadline && (e.stats.Nodes&deadlineMask) == 0 && time.Now().After(e.deadline) {
		e.stopErr = ErrTimeLimit

		return true
	}

	return false
}

// expand pushes both children of nd for the item at nd.pos.
func (e *bbEngine) expand(nd bbNode) {
	var (
		it   = e.items[nd.pos]
		next = nd.pos + 1
	)

	// Skip child: state unchanged. The parent is dead after expansion, so the
	// skip child may reuse its vector; the take child gets a fresh copy.
	skip := bbNode{
		value:    nd.value,
		capacity: nd.capacity,
		bound:    float64(nd.value) + Estimate(e.items, nd.capacity, next),
		taken:    nd.taken,
		pos:      next,
	}

	takeTaken := make([]int, e.n)
	copy(takeTaken, nd.taken)
	takeTaken[it.Index] = 1
	take := bbNode{
		value:    nd.value + it.Value,
		capacity: nd.capacity - it.Weight,
		taken:    takeTaken,
		pos:      next,
	}
	take.bound = float64(take.value) + Estimate(e.items, take.capacity, next)

	e.push(skip)
	e.push(take)
	e.stats.Expanded++
}

// run drains the frontier.
func (e *bbEngine) run(capacity int) {
	began := time.Now()
	e.push(bbNode{
		value:    0,
		capacity: capacity,
		bound:    Estimate(e.items, capacity, 0),
		taken:    make([]int, e.n),
		pos:      0,
	})

	var nd bbNode
	for len(e.frontier) > 0 {
		if e.exhausted() {
			break
		}
		nd = e.pop()
		e.stats.Nodes++

		if nd.capacity < 0 {
			e.stats.PrunedInfeasible++

			continue
		}
		if nd.bound <= float64(e.bestValue) {
			e.stats.PrunedBound++

			continue
		}
		if nd.value > e.bestValue {
			e.bestValue = nd.value
			copy(e.bestTaken, nd.taken)
			e.stats.Improvements++
		}
		if nd.pos >= e.n {
			continue
		}
		e.expand(nd)
	}
	e.stats.Elapsed = time.Since(began)
}

// newEngine prepares an engine for items with the given budgets.
func newEngine(items []Item, opts Options) *bbEngine {
	e := &bbEngine{
		items:     items,
		n:         len(items),
		nodeLimit: opts.NodeLimit,
		bestTaken: make([]int, len(items)),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// Search returns the optimal value and its selection vector for items
// sorted by descending density. The vector has one 0/1 entry per item,
// addressed by Item.Index.
//
// Contracts: items are sorted (SortByDensity) and valid (ValidateInstance);
// capacity ≥ 0. Empty items or zero capacity yield 0 and an all-zero vector.
//
// Complexity: see the file header.
func Search(items []Item, capacity int) (int, []int) {
	e := newEngine(items, DefaultOptions())
	e.run(capacity)

	return e.bestValue, e.bestTaken
}

// BranchAndBound runs the same search as Search under the budgets in opts and
// reports statistics.
//
// Errors:
//   - ErrBadOptions if a limit is negative (zero Result).
//   - ErrNegativeCapacity if capacity < 0 (zero Result).
//   - ErrTimeLimit / ErrNodeLimit if a budget stopped the search; the Result
//     then carries the incumbent with Optimal=false.
func BranchAndBound(items []Item, capacity int, opts Options) (Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}

	e := newEngine(items, opts)
	e.run(capacity)

	res := Result{
		Value:   e.bestValue,
		Taken:   e.bestTaken,
		Optimal: e.stopErr == nil,
		Stats:   e.stats,
	}

	return res, e.stopErr
}
