package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// source is one schematic input.
type source struct {
	name string
	text string
}

// stdinName labels input read from standard input.
const stdinName = "<stdin>"

// readSources reads every named file, or stdin when names is empty.
// The name "-" also selects stdin.
func readSources(cmd *cobra.Command, names []string) ([]source, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	out := make([]source, 0, len(names))
	for _, name := range names {
		var (
			b   []byte
			err error
		)
		if name == "-" {
			b, err = io.ReadAll(cmd.InOrStdin())
			name = stdinName
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		out = append(out, source{name: name, text: string(b)})
	}
	return out, nil
}
