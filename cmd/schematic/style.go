package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for human output.
type styles struct {
	heading *color.Color
	label   *color.Color
	value   *color.Color
	symbol  *color.Color
}

// newStyles creates formatters; enabled=false prints plain text.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold, color.FgHiWhite),
		label:   color.New(color.FgHiBlue),
		value:   color.New(color.Bold, color.FgHiGreen),
		symbol:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.heading, s.label, s.value, s.symbol} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves the color mode for w.
// "auto" colors only terminals and honors NO_COLOR.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
