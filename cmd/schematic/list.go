package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/schematic/internal/config"
	"github.com/katalvlaran/schematic/scan"
)

func newSymbolsCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "symbols [file]",
		Short: "List every symbol with its position",
		Long:  "List every symbol of the schematic. Row 0 is the last line of the input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, oc, err := a.scanOne(cmd, args, out)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if oc.Format == "json" {
				return writeJSON(w, s.Symbols)
			}
			st := newStyles(colorEnabled(oc.Color, w))
			for _, sym := range s.Symbols {
				st.symbol.Fprintf(w, "%c", sym.Char)
				fmt.Fprintf(w, "  col=%d row=%d\n", sym.Pos.Col, sym.Pos.Row)
			}
			return nil
		},
	}
	out.register(cmd)
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "List every number with its row and column span",
		Long:  "List every number of the schematic with its half-open column span [start,end). Row 0 is the last line of the input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, oc, err := a.scanOne(cmd, args, out)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if oc.Format == "json" {
				return writeJSON(w, s.Tokens)
			}
			st := newStyles(colorEnabled(oc.Color, w))
			for _, tok := range s.Tokens {
				st.value.Fprint(w, tok.Value)
				fmt.Fprintf(w, "  row=%d cols=[%d,%d)\n", tok.Row, tok.Start, tok.End)
			}
			return nil
		},
	}
	out.register(cmd)
	return cmd
}

// scanOne reads a single source and returns its scan through the cache.
func (a *app) scanOne(cmd *cobra.Command, args []string, flags outputFlags) (*scan.Schematic, config.OutputConfig, error) {
	oc, err := flags.resolve(a.cfg)
	if err != nil {
		return nil, oc, err
	}
	sources, err := readSources(cmd, args)
	if err != nil {
		return nil, oc, err
	}
	src := sources[0]
	entry, _, err := a.report.Get(src.text)
	if err != nil {
		a.log.Error("scan failed", zap.String("source", src.name), zap.Error(err))
		return nil, oc, fmt.Errorf("%s: %w", src.name, err)
	}
	return entry.Schematic, oc, nil
}
