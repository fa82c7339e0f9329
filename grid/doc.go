// Package grid treats a block of text as a two-dimensional grid of cells,
// providing the coordinate system and the adjacency geometry used by the
// schematic scanner.
//
// What:
//
//   - Grid wraps the lines of a text blob as rows of runes.
//   - Rows are numbered from the bottom: row 0 is the last physical line.
//   - Columns are rune indices within a row; rows may differ in length.
//   - Every cell is classified as Filler ('.'), Digit ('0'..'9') or Symbol.
//   - Runs finds maximal horizontal runs of one cell class within a row.
//   - Chebyshev / Adjacent implement Moore-neighborhood adjacency.
//
// Why:
//
//   - Engineering schematics, puzzle maps and ASCII diagrams all encode
//     meaning through which characters touch which.
//
// Complexity:
//
//   - Parse:    O(N) time and memory, N = number of runes.
//   - Runs:     O(W) per row.
//   - Adjacent: O(1).
//
// Connectivity:
//
//   - Conn4: orthogonal neighbors (N, E, S, W).
//   - Conn8: orthogonal and diagonal neighbors (Moore neighborhood).
//
// Positions outside a row's extent are simply "not present": InBounds and
// At report false for them and Neighbors skips them. There is no
// wraparound.
package grid
