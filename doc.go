// Package schematic scans two-dimensional text schematics: grids of
// characters in which digit runs are part numbers, '.' is empty space and
// every other character is a symbol.
//
// What:
//
//	A small, dependency-light toolkit that brings together:
//		• grid/           text grid, bottom-up coordinates, Moore adjacency, digit runs
//		• scan/           symbol and number-token extraction, structured parse errors
//		• aggregate/      proximity sum, paired-product (gear) sum, row-bucketed index
//		• cmd/schematic/  CLI over the three packages
//
// Quick ASCII example:
//
//	467..114..
//	...*......
//	..35..633.
//
//	'*' touches 467 and 35: both count toward the proximity sum, and since
//	it touches exactly two numbers it contributes 467×35 to the
//	paired-product sum. 114 and 633 touch nothing.
//
// Coordinates: row 0 is the LAST line of the input; columns are rune
// indices within a line. Rows may be ragged.
//
//	go install github.com/katalvlaran/schematic/cmd/schematic@latest
package schematic
