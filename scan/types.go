package scan

import (
	"fmt"

	"github.com/katalvlaran/schematic/grid"
)

// Symbol is a non-digit, non-filler character and its position.
type Symbol struct {
	Char rune          `json:"char"`
	Pos  grid.Position `json:"pos"`
}

// String formats the symbol as 'c'@col,row.
func (s Symbol) String() string {
	return fmt.Sprintf("%q@%v", s.Char, s.Pos)
}

// NumberToken is a maximal horizontal run of digits.
// Invariant: End > Start, and Value equals the digits in [Start, End) of Row.
type NumberToken struct {
	Value uint64 `json:"value"`
	Row   int    `json:"row"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Span returns the token's cells as a grid.Span.
func (t NumberToken) Span() grid.Span {
	return grid.Span{Row: t.Row, Start: t.Start, End: t.End}
}

// Len returns the number of digits in the token.
func (t NumberToken) Len() int {
	return t.End - t.Start
}

// Cells returns every position the token covers, left to right.
func (t NumberToken) Cells() []grid.Position {
	out := make([]grid.Position, 0, t.Len())
	for c := t.Start; c < t.End; c++ {
		out = append(out, grid.Position{Col: c, Row: t.Row})
	}
	return out
}

// AdjacentTo reports whether some digit of t lies in the Moore neighborhood
// of p. Diagonal contact with any digit counts, not only the endpoints.
func (t NumberToken) AdjacentTo(p grid.Position) bool {
	return grid.SpanAdjacent(t.Span(), p)
}

// String formats the token as value@row[start,end).
func (t NumberToken) String() string {
	return fmt.Sprintf("%d@%d[%d,%d)", t.Value, t.Row, t.Start, t.End)
}

// Schematic is the result of one scan: both collections in row-major order
// (row ascending, then column ascending). It is never mutated after Scan.
type Schematic struct {
	Symbols []Symbol      `json:"symbols"`
	Tokens  []NumberToken `json:"tokens"`
}
