package grid

import "fmt"

// Filler is the placeholder character of an empty cell.
const Filler = '.'

// Class is the classification of a single grid cell.
type Class int

const (
	// ClassFiller marks an empty cell ('.').
	ClassFiller Class = iota
	// ClassDigit marks an ASCII digit '0'..'9'.
	ClassDigit
	// ClassSymbol marks any other character.
	ClassSymbol
)

// String returns a lower-case name of the class.
func (c Class) String() string {
	switch c {
	case ClassFiller:
		return "filler"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Position is a (column, row) pair. Row 0 is the bottom line of the grid.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Add returns p shifted by the offset d = {dCol, dRow}.
func (p Position) Add(d [2]int) Position {
	return Position{Col: p.Col + d[0], Row: p.Row + d[1]}
}

// String formats the position as "col,row".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}

// Span is a half-open column range [Start, End) on a single row.
type Span struct {
	Row, Start, End int
}

// Len returns the number of cells in the span.
func (s Span) Len() int {
	return s.End - s.Start
}
