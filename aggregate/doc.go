// Package aggregate combines the symbols and tokens of a scanned schematic
// into scalar results using Moore-neighborhood adjacency.
//
// What:
//
//   - ProximitySum: sum of every token adjacent to at least one symbol.
//     A token touching several symbols is counted once.
//   - PairedProductSum: for every symbol with exactly two adjacent tokens
//     (a "gear"), add the product of the two token values. Symbols touching
//     0, 1 or 3+ tokens contribute nothing. The symbol's character is ignored.
//   - Gears: the qualifying symbols themselves, with their two tokens.
//   - Summarize: both sums and the collection sizes as a Report.
//
// Index:
//
//	Tokens are bucketed by row so that a symbol is compared only with the
//	tokens of its own row and the rows directly above and below it.
//	WithNaive() switches to the plain symbols × tokens double loop; both
//	strategies return identical results.
//
// Complexity (S = symbols, T = tokens):
//
//   - NewIndex:        O(T).
//   - Indexed rules:   O(S × k), k = tokens on three rows.
//   - Naive rules:     O(S × T).
//
// Arithmetic is uint64 and wraps on overflow, like the token values.
package aggregate
