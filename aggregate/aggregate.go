package aggregate

import (
	"github.com/katalvlaran/schematic/grid"
	"github.com/katalvlaran/schematic/scan"
)

// Gear is a symbol adjacent to exactly two tokens.
type Gear struct {
	Symbol scan.Symbol         `json:"symbol"`
	Tokens [2]scan.NumberToken `json:"tokens"`
	Ratio  uint64              `json:"ratio"` // product of the two token values
}

// Report holds both aggregates of one schematic.
type Report struct {
	ProximitySum     uint64 `json:"proximity_sum"`
	PairedProductSum uint64 `json:"paired_product_sum"`
	Symbols          int    `json:"symbols"`
	Tokens           int    `json:"tokens"`
	Gears            int    `json:"gears"`
}

// lookup returns the adjacency function selected by o.
func lookup(s *scan.Schematic, o Options) func(p grid.Position, fn func(i int)) {
	if o.Strategy == Naive {
		return func(p grid.Position, fn func(i int)) {
			naiveAdjacent(s.Tokens, p, fn)
		}
	}
	return NewIndex(s.Tokens).eachAdjacent
}

// ProximitySum returns the sum of the values of all tokens adjacent to at
// least one symbol. Each qualifying token is counted once.
// A nil schematic sums to 0.
func ProximitySum(s *scan.Schematic, opts ...Option) uint64 {
	if s == nil {
		return 0
	}
	adjacent := lookup(s, gather(opts))

	marked := make([]bool, len(s.Tokens))
	for _, sym := range s.Symbols {
		adjacent(sym.Pos, func(i int) { marked[i] = true })
	}

	var sum uint64
	for i, ok := range marked {
		if ok {
			sum += s.Tokens[i].Value
		}
	}
	return sum
}

// Gears returns every symbol adjacent to exactly two tokens, in symbol order.
// The tokens of a gear keep their scan order.
func Gears(s *scan.Schematic, opts ...Option) []Gear {
	if s == nil {
		return nil
	}
	adjacent := lookup(s, gather(opts))

	var gears []Gear
	for _, sym := range s.Symbols {
		var hits []int
		adjacent(sym.Pos, func(i int) { hits = append(hits, i) })
		if len(hits) != 2 {
			continue
		}
		a, b := s.Tokens[hits[0]], s.Tokens[hits[1]]
		gears = append(gears, Gear{
			Symbol: sym,
			Tokens: [2]scan.NumberToken{a, b},
			Ratio:  a.Value * b.Value,
		})
	}
	return gears
}

// PairedProductSum returns the sum of gear ratios over all symbols.
func PairedProductSum(s *scan.Schematic, opts ...Option) uint64 {
	var sum uint64
	for _, g := range Gears(s, opts...) {
		sum += g.Ratio
	}
	return sum
}

// Summarize computes both aggregates of s.
func Summarize(s *scan.Schematic, opts ...Option) Report {
	if s == nil {
		return Report{}
	}
	gears := Gears(s, opts...)
	r := Report{
		ProximitySum: ProximitySum(s, opts...),
		Symbols:      len(s.Symbols),
		Tokens:       len(s.Tokens),
		Gears:        len(gears),
	}
	for _, g := range gears {
		r.PairedProductSum += g.Ratio
	}
	return r
}
