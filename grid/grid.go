// Package grid provides the text-backed Grid: rows of runes numbered from
// the bottom line upward, with per-row widths and bounds checks.
package grid

import "strings"

// Grid is an immutable view of a text blob as rows of runes.
// rows[0] holds the LAST physical line of the input.
type Grid struct {
	rows [][]rune
}

// Parse splits text into rows and builds a Grid.
//
// Lines are separated by '\n'; a trailing '\r' on a line is dropped so CRLF
// input behaves like LF input. A single trailing newline does not produce an
// extra empty row. Empty text yields a Grid with zero rows.
// Complexity: O(N) time and memory.
func Parse(text string) *Grid {
	if text == "" {
		return &Grid{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	h := len(lines)
	rows := make([][]rune, h)
	for i, line := range lines {
		// bottom-up: the last physical line becomes row 0
		rows[h-1-i] = []rune(strings.TrimSuffix(line, "\r"))
	}

	return &Grid{rows: rows}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of cells in row, or 0 if row does not exist.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Row returns the cells of row. The returned slice must not be modified.
func (g *Grid) Row(row int) []rune {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	return g.rows[row]
}

// InBounds reports whether p addresses an existing cell.
// Rows may be ragged, so the column bound is taken from p's own row.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.rows) && p.Col >= 0 && p.Col < len(g.rows[p.Row])
}

// At returns the rune at p and whether p is in bounds.
func (g *Grid) At(p Position) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.rows[p.Row][p.Col], true
}

// Neighbors returns the in-bounds neighbors of p under conn, in offset order.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(p Position, conn Connectivity) []Position {
	offsets := Offsets(conn)
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Cells calls fn for every cell, row by row from row 0 upward and left to
// right within a row.
func (g *Grid) Cells(fn func(p Position, r rune)) {
	for y, row := range g.rows {
		for x, r := range row {
			fn(Position{Col: x, Row: y}, r)
		}
	}
}
