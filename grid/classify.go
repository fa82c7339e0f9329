package grid

// Classify returns the class of r: Filler for '.', Digit for ASCII '0'..'9',
// Symbol for everything else (including whitespace and non-ASCII runes).
func Classify(r rune) Class {
	switch {
	case r == Filler:
		return ClassFiller
	case IsDigit(r):
		return ClassDigit
	default:
		return ClassSymbol
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Runs returns every maximal horizontal run of cells of class c in row,
// left to right. Runs of length 1 are included.
//
// Time:   O(W), W = Width(row).
// Memory: O(number of runs).
func (g *Grid) Runs(row int, c Class) []Span {
	cells := g.Row(row)
	var runs []Span
	start := -1
	for x, r := range cells {
		if Classify(r) == c {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, Span{Row: row, Start: start, End: x})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Span{Row: row, Start: start, End: len(cells)})
	}
	return runs
}
