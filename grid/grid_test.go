package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schematic/grid"
)

//----------------------------------------------------------------------------//
// Parse, Height/Width and InBounds Tests
//----------------------------------------------------------------------------//

// TestParse_Rows verifies line splitting and the bottom-up row numbering.
func TestParse_Rows(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		height int
		bottom string // row 0
		top    string // row height-1
	}{
		{"Empty", "", 0, "", ""},
		{"SingleLine", "12.*", 1, "12.*", "12.*"},
		{"TwoLines", "top\nbottom", 2, "bottom", "top"},
		{"TrailingNewline", "a\nb\n", 2, "b", "a"},
		{"CRLF", "a..\r\n.b.\r\n", 2, ".b.", "a.."},
		{"BlankMiddle", "a\n\nb", 3, "b", "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.Parse(tc.text)
			require.Equal(t, tc.height, g.Height())
			if tc.height == 0 {
				return
			}
			assert.Equal(t, tc.bottom, string(g.Row(0)))
			assert.Equal(t, tc.top, string(g.Row(tc.height-1)))
		})
	}
}

// TestInBounds_Ragged checks InBounds and At on rows of differing widths.
//
//	row 2: "abc"
//	row 1: "d"
//	row 0: "ef"
func TestInBounds_Ragged(t *testing.T) {
	g := grid.Parse("abc\nd\nef")

	assert.Equal(t, 2, g.Width(0))
	assert.Equal(t, 1, g.Width(1))
	assert.Equal(t, 3, g.Width(2))
	assert.Equal(t, 0, g.Width(3), "missing row has zero width")

	valid := []grid.Position{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 2, Row: 2}}
	for _, p := range valid {
		assert.Truef(t, g.InBounds(p), "InBounds(%v)", p)
	}
	invalid := []grid.Position{{Col: -1, Row: 0}, {Col: 2, Row: 0}, {Col: 1, Row: 1}, {Col: 0, Row: 3}, {Col: 0, Row: -1}}
	for _, p := range invalid {
		assert.Falsef(t, g.InBounds(p), "InBounds(%v)", p)
	}

	r, ok := g.At(grid.Position{Col: 2, Row: 2})
	assert.True(t, ok)
	assert.Equal(t, 'c', r)
	_, ok = g.At(grid.Position{Col: 5, Row: 2})
	assert.False(t, ok)
}

// TestNeighbors_Corner verifies that out-of-grid cells are skipped, not wrapped.
func TestNeighbors_Corner(t *testing.T) {
	g := grid.Parse("..\n..")
	corner := grid.Position{Col: 0, Row: 0}

	assert.Len(t, g.Neighbors(corner, grid.Conn4), 2)
	assert.ElementsMatch(t,
		[]grid.Position{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 0, Row: 1}},
		g.Neighbors(corner, grid.Conn8))
}

// TestCells_Order checks that Cells visits row 0 first, left to right.
func TestCells_Order(t *testing.T) {
	g := grid.Parse("ab\ncd")
	var got []rune
	var pos []grid.Position
	g.Cells(func(p grid.Position, r rune) {
		got = append(got, r)
		pos = append(pos, p)
	})
	assert.Equal(t, []rune("cdab"), got)
	assert.Equal(t, grid.Position{Col: 1, Row: 1}, pos[3])
}

//----------------------------------------------------------------------------//
// Classify and Runs Tests
//----------------------------------------------------------------------------//

func TestClassify(t *testing.T) {
	cases := map[rune]grid.Class{
		'.': grid.ClassFiller,
		'0': grid.ClassDigit,
		'9': grid.ClassDigit,
		'*': grid.ClassSymbol,
		'#': grid.ClassSymbol,
		' ': grid.ClassSymbol,
		'a': grid.ClassSymbol,
		'٣': grid.ClassSymbol, // non-ASCII digit is not a digit here
	}
	for r, want := range cases {
		assert.Equalf(t, want, grid.Classify(r), "Classify(%q)", r)
	}
	assert.Equal(t, "symbol", grid.ClassSymbol.String())
	assert.Equal(t, "class(7)", grid.Class(7).String())
}

// TestRuns_Digits covers runs touching both row edges and single-cell runs.
func TestRuns_Digits(t *testing.T) {
	g := grid.Parse("12.3*456")
	runs := g.Runs(0, grid.ClassDigit)
	want := []grid.Span{
		{Row: 0, Start: 0, End: 2},
		{Row: 0, Start: 3, End: 4},
		{Row: 0, Start: 5, End: 8},
	}
	assert.Equal(t, want, runs)
	for _, s := range runs {
		assert.Positive(t, s.Len())
	}

	assert.Empty(t, g.Runs(1, grid.ClassDigit), "missing row yields no runs")
	assert.Empty(t, grid.Parse("..*..").Runs(0, grid.ClassDigit))
}
