// Package scan extracts the two collections a schematic is made of: the
// symbols and the numeric tokens.
//
// What:
//
//   - Symbols: every character that is neither the filler '.' nor an ASCII
//     digit, with its (column, row) position.
//   - Tokens: every maximal horizontal run of digits, parsed as an unsigned
//     base-10 integer, with its row and half-open column span [Start, End).
//   - Scan / Read: both collections at once, as an immutable Schematic.
//
// Coordinates follow package grid: row 0 is the LAST line of the input,
// columns are rune indices within the line. Rows may have different widths.
//
// Complexity:
//
//   - Symbols, Tokens, Scan: O(N) time and memory, N = number of runes.
//
// Errors:
//
//   - ErrMalformedNumber: a digit run does not fit the token value type.
//     Returned as a *ParseError that records the run's row, span and text.
//   - ErrRead: the input reader failed.
//
// Empty input is not an error; it yields an empty Schematic.
//
// Scanning holds no state between calls: scanning the same text twice
// returns equal collections.
package scan
