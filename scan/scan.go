package scan

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/schematic/grid"
)

// Symbols returns every symbol in text, row 0 (the last line) first.
// It never fails.
func Symbols(text string) []Symbol {
	return symbolsIn(grid.Parse(text))
}

// Tokens returns every numeric token in text, row 0 (the last line) first.
// Returns a *ParseError wrapping ErrMalformedNumber if a run overflows uint64.
func Tokens(text string) ([]NumberToken, error) {
	return tokensIn(grid.Parse(text))
}

// Scan extracts symbols and tokens from text in one pass over the grid.
func Scan(text string) (*Schematic, error) {
	return FromGrid(grid.Parse(text))
}

// FromGrid extracts symbols and tokens from an already parsed grid.
func FromGrid(g *grid.Grid) (*Schematic, error) {
	tokens, err := tokensIn(g)
	if err != nil {
		return nil, err
	}
	return &Schematic{
		Symbols: symbolsIn(g),
		Tokens:  tokens,
	}, nil
}

// Read reads all of r and scans it.
// Read failures are wrapped with ErrRead.
func Read(r io.Reader) (*Schematic, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Scan(string(b))
}

func symbolsIn(g *grid.Grid) []Symbol {
	symbols := make([]Symbol, 0)
	g.Cells(func(p grid.Position, r rune) {
		if grid.Classify(r) == grid.ClassSymbol {
			symbols = append(symbols, Symbol{Char: r, Pos: p})
		}
	})
	return symbols
}

func tokensIn(g *grid.Grid) ([]NumberToken, error) {
	tokens := make([]NumberToken, 0)
	for row := 0; row < g.Height(); row++ {
		cells := g.Row(row)
		for _, s := range g.Runs(row, grid.ClassDigit) {
			text := string(cells[s.Start:s.End])
			v, err := strconv.ParseUint(text, 10, 64)
			if err != nil {
				return nil, &ParseError{Row: row, Start: s.Start, End: s.End, Text: text, Err: err}
			}
			tokens = append(tokens, NumberToken{Value: v, Row: row, Start: s.Start, End: s.End})
		}
	}
	return tokens, nil
}
