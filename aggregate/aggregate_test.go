package aggregate_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schematic/aggregate"
	"github.com/katalvlaran/schematic/grid"
	"github.com/katalvlaran/schematic/scan"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

var strategies = map[string]aggregate.Option{
	"Indexed": aggregate.WithStrategy(aggregate.Indexed),
	"Naive":   aggregate.WithNaive(),
}

func mustScan(t testing.TB, text string) *scan.Schematic {
	t.Helper()
	s, err := scan.Scan(text)
	require.NoError(t, err)
	return s
}

//----------------------------------------------------------------------------//
// Canonical regression values
//----------------------------------------------------------------------------//

func TestExample_Sums(t *testing.T) {
	s := mustScan(t, example)
	for name, opt := range strategies {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, uint64(4361), aggregate.ProximitySum(s, opt))
			assert.Equal(t, uint64(467835), aggregate.PairedProductSum(s, opt))
		})
	}
}

func TestExample_Summarize(t *testing.T) {
	got := aggregate.Summarize(mustScan(t, example))
	want := aggregate.Report{
		ProximitySum:     4361,
		PairedProductSum: 467835,
		Symbols:          6,
		Tokens:           10,
		Gears:            2,
	}
	assert.Equal(t, want, got)
}

func TestExample_Gears(t *testing.T) {
	gears := aggregate.Gears(mustScan(t, example))
	require.Len(t, gears, 2)

	// symbol order is bottom-up: the '*' on row 1 comes first
	assert.Equal(t, grid.Position{Col: 5, Row: 1}, gears[0].Symbol.Pos)
	assert.Equal(t, uint64(598), gears[0].Tokens[0].Value)
	assert.Equal(t, uint64(755), gears[0].Tokens[1].Value)
	assert.Equal(t, uint64(451490), gears[0].Ratio)

	assert.Equal(t, grid.Position{Col: 3, Row: 8}, gears[1].Symbol.Pos)
	assert.Equal(t, uint64(16345), gears[1].Ratio)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

func TestProximitySum_CountsTokenOnce(t *testing.T) {
	// 12 touches both '*' and '#'
	s := mustScan(t, "*12#")
	assert.Equal(t, uint64(12), aggregate.ProximitySum(s))
}

// TestProximitySum_FullySurrounded: every cell around every token is a
// symbol, so the proximity sum equals the sum of all tokens.
func TestProximitySum_FullySurrounded(t *testing.T) {
	s := mustScan(t, "*****\n*12*7*\n*****")
	var total uint64
	for _, tok := range s.Tokens {
		total += tok.Value
	}
	assert.Equal(t, uint64(19), total)
	assert.Equal(t, total, aggregate.ProximitySum(s))
}

func TestProximitySum_BoundedByTotal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := mustScan(t, randomSchematic(seed, 25))
		var total uint64
		for _, tok := range s.Tokens {
			total += tok.Value
		}
		assert.LessOrEqual(t, aggregate.ProximitySum(s), total, "seed %d", seed)
	}
}

// TestPairedProductSum_ThirdTokenRemovesGear injects a third adjacent token.
func TestPairedProductSum_ThirdTokenRemovesGear(t *testing.T) {
	paired := mustScan(t, "...\n4*5\n...")
	assert.Equal(t, uint64(20), aggregate.PairedProductSum(paired))

	crowded := mustScan(t, "...\n4*5\n.6.")
	assert.Equal(t, uint64(0), aggregate.PairedProductSum(crowded))
	assert.Empty(t, aggregate.Gears(crowded))
	assert.Equal(t, uint64(15), aggregate.ProximitySum(crowded))
}

func TestPairedProductSum_AnySymbol(t *testing.T) {
	cases := map[string]string{
		"Star":  "3*7",
		"Hash":  "3#7",
		"Dash":  "3-7",
		"Space": "3 7",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, uint64(21), aggregate.PairedProductSum(mustScan(t, text)))
		})
	}
}

func TestPairedProductSum_SingleOrNone(t *testing.T) {
	assert.Equal(t, uint64(0), aggregate.PairedProductSum(mustScan(t, "3*..7")))
	assert.Equal(t, uint64(0), aggregate.PairedProductSum(mustScan(t, "*....")))
}

// TestEdges verifies tokens on the outer rows/columns: neighbors beyond the
// grid are simply absent.
func TestEdges(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		proximity uint64
		paired    uint64
	}{
		{"BottomLeftSymbol", "12\n*.", 12, 0},
		{"TopRightToken", "..99\n.*..", 99, 0},
		{"DiagonalCorners", "1.2\n.*.\n3.4", 10, 0},
		{"GearAtRightEdge", "..5\n..*\n..8", 13, 40},
		{"FarApart", "1..\n...\n..*", 0, 0},
		{"RaggedRows", "5\n..*\n7", 0, 0},
		{"RaggedAdjacent", "..5\n.*\n7", 12, 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustScan(t, tc.text)
			for name, opt := range strategies {
				assert.Equal(t, tc.proximity, aggregate.ProximitySum(s, opt), name)
				assert.Equal(t, tc.paired, aggregate.PairedProductSum(s, opt), name)
			}
		})
	}
}

func TestEmptyAndNil(t *testing.T) {
	s := mustScan(t, "")
	assert.Equal(t, aggregate.Report{}, aggregate.Summarize(s))
	assert.Equal(t, aggregate.Report{}, aggregate.Summarize(nil))
	assert.Zero(t, aggregate.ProximitySum(nil))
	assert.Zero(t, aggregate.PairedProductSum(nil))
	assert.Nil(t, aggregate.Gears(nil))
}

// TestIndexedMatchesNaive cross-checks both strategies on random schematics.
func TestIndexedMatchesNaive(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		s := mustScan(t, randomSchematic(seed, 40))
		indexed := aggregate.Summarize(s)
		naive := aggregate.Summarize(s, aggregate.WithNaive())
		assert.Equal(t, naive, indexed, "seed %d", seed)
		if diff := cmp.Diff(aggregate.Gears(s, aggregate.WithNaive()), aggregate.Gears(s)); diff != "" {
			t.Errorf("seed %d gears differ (-naive +indexed):\n%s", seed, diff)
		}
	}
}

func TestIndex_Adjacent(t *testing.T) {
	s := mustScan(t, example)
	ix := aggregate.NewIndex(s.Tokens)

	got := ix.Adjacent(grid.Position{Col: 3, Row: 8})
	require.Len(t, got, 2)
	assert.Equal(t, uint64(35), got[0].Value, "row 7 token precedes row 9 token")
	assert.Equal(t, uint64(467), got[1].Value)

	assert.Empty(t, ix.Adjacent(grid.Position{Col: 100, Row: 100}))
	assert.Empty(t, aggregate.NewIndex(nil).Adjacent(grid.Position{}))
}

// randomSchematic builds an n×n schematic from seed: mostly filler, some
// digits, a few symbols.
func randomSchematic(seed int64, n int) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch v := rng.Intn(100); {
			case v < 65:
				sb.WriteByte('.')
			case v < 90:
				sb.WriteByte(byte('0' + rng.Intn(10)))
			default:
				sb.WriteByte("*#$+/="[rng.Intn(6)])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
