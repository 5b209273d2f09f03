// Package instance reads knapsack instances and writes solver results in the
// plain-text interchange format.
//
// Input format (whitespace separated integers):
//
//	n capacity
//	v_0 w_0
//	...
//	v_{n-1} w_{n-1}
//
// Item i receives Index i. Tokens after the n-th pair are ignored.
//
// Output format (two lines):
//
//	<value> <optimal flag>
//	<x_0> <x_1> ... <x_{n-1}>
//
// where the flag is 1 for a proven optimum and 0 otherwise, and x_i is 1
// when item i is packed.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/knapsack/bnb"
)

// ErrMalformed indicates missing or non-integer tokens, or a negative item count.
var ErrMalformed = errors.New("instance: malformed input")

// maxPrealloc caps the item slices reserved before any pair has been read.
const maxPrealloc = 1 << 16

// Instance is a loaded knapsack problem.
type Instance struct {
	Items    []bnb.Item
	Capacity int
}

// tokenReader yields integer tokens and remembers their position for errors.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

// next reads the next integer; what names the field for error messages.
func (tr *tokenReader) next(what string) (int, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return 0, fmt.Errorf("instance: reading %s: %w", what, err)
		}

		return 0, fmt.Errorf("token %d (%s): unexpected end of input: %w", tr.pos, what, ErrMalformed)
	}
	tok := tr.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s): %q is not an integer: %w", tr.pos, what, tok, ErrMalformed)
	}
	tr.pos++

	return v, nil
}

// Load parses an instance from r. Values and weights are not range-checked
// here; bnb.Solve rejects non-positive weights and negative values.
func Load(r io.Reader) (Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tr := &tokenReader{sc: sc}

	n, err := tr.next("item count")
	if err != nil {
		return Instance{}, err
	}
	if n < 0 {
		return Instance{}, fmt.Errorf("item count %d: %w", n, ErrMalformed)
	}
	capacity, err := tr.next("capacity")
	if err != nil {
		return Instance{}, err
	}

	// The declared count is untrusted: grow from a capped capacity so a short
	// file fails on its missing tokens instead of a huge allocation.
	var (
		values  = make([]int, 0, min(n, maxPrealloc))
		weights = make([]int, 0, min(n, maxPrealloc))
		v, w, i int
	)
	for i = 0; i < n; i++ {
		if v, err = tr.next(fmt.Sprintf("value of item %d", i)); err != nil {
			return Instance{}, err
		}
		if w, err = tr.next(fmt.Sprintf("weight of item %d", i)); err != nil {
			return Instance{}, err
		}
		values = append(values, v)
		weights = append(weights, w)
	}

	items, err := bnb.NewItems(values, weights)
	if err != nil {
		return Instance{}, err
	}

	return Instance{Items: items, Capacity: capacity}, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := Load(f)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: %s: %w", path, err)
	}

	return inst, nil
}
