package grid

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets {dCol, dRow} for conn.
// The returned slice is shared and must not be modified.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// Chebyshev returns max(|a.Col-b.Col|, |a.Row-b.Row|).
func Chebyshev(a, b Position) int {
	dc, dr := abs(a.Col-b.Col), abs(a.Row-b.Row)
	if dc > dr {
		return dc
	}
	return dr
}

// Adjacent reports whether a and b lie in each other's Moore neighborhood.
// The comparison is inclusive: a position is adjacent to itself.
func Adjacent(a, b Position) bool {
	return Chebyshev(a, b) <= 1
}

// SpanAdjacent reports whether any cell of s is adjacent to p.
// Equivalent to testing every column in [Start, End), in O(1).
func SpanAdjacent(s Span, p Position) bool {
	if s.End <= s.Start {
		return false
	}
	return abs(p.Row-s.Row) <= 1 && p.Col >= s.Start-1 && p.Col <= s.End
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
