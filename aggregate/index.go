package aggregate

import (
	"github.com/katalvlaran/schematic/grid"
	"github.com/katalvlaran/schematic/scan"
)

// Index buckets tokens by row for adjacency lookups.
// It is immutable once built and safe for concurrent readers.
type Index struct {
	rows map[int][]int // row -> positions in tokens, ascending
	toks []scan.NumberToken
}

// NewIndex builds an Index over tokens. The slice is retained, not copied;
// callers must not modify it afterwards.
// Complexity: O(T).
func NewIndex(tokens []scan.NumberToken) *Index {
	rows := make(map[int][]int)
	for i, t := range tokens {
		rows[t.Row] = append(rows[t.Row], i)
	}
	return &Index{rows: rows, toks: tokens}
}

// Adjacent returns the tokens adjacent to p, in the order they appear in
// the slice given to NewIndex.
func (ix *Index) Adjacent(p grid.Position) []scan.NumberToken {
	var out []scan.NumberToken
	ix.eachAdjacent(p, func(i int) {
		out = append(out, ix.toks[i])
	})
	return out
}

// eachAdjacent calls fn with the slice position of every token adjacent to p,
// in ascending order.
func (ix *Index) eachAdjacent(p grid.Position, fn func(i int)) {
	// rows are appended in input order, so merging the three buckets keeps
	// ascending positions
	below, same, above := ix.rows[p.Row-1], ix.rows[p.Row], ix.rows[p.Row+1]
	buckets := [3][]int{below, same, above}
	heads := [3]int{}
	for {
		best := -1
		for b := range buckets {
			if heads[b] < len(buckets[b]) && (best < 0 || buckets[b][heads[b]] < buckets[best][heads[best]]) {
				best = b
			}
		}
		if best < 0 {
			return
		}
		i := buckets[best][heads[best]]
		heads[best]++
		if ix.toks[i].AdjacentTo(p) {
			fn(i)
		}
	}
}

// naiveAdjacent is the reference lookup: every token is tested.
func naiveAdjacent(tokens []scan.NumberToken, p grid.Position, fn func(i int)) {
	for i, t := range tokens {
		if t.AdjacentTo(p) {
			fn(i)
		}
	}
}
