package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedNumber indicates a digit run that cannot be parsed as a token value.
	ErrMalformedNumber = errors.New("scan: malformed numeric run")
	// ErrRead indicates the schematic text could not be read.
	ErrRead = errors.New("scan: read failed")
)

// ParseError reports a digit run that could not be parsed.
// errors.Is(err, ErrMalformedNumber) holds for every ParseError.
type ParseError struct {
	Row        int    // row of the run, bottom-up
	Start, End int    // column span [Start, End)
	Text       string // the digits of the run
	Err        error  // underlying strconv error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at row %d cols [%d,%d) %q: %v", ErrMalformedNumber, e.Row, e.Start, e.End, e.Text, e.Err)
}

// Unwrap exposes both the sentinel and the strconv cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedNumber, e.Err}
}
