package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/schematic/aggregate"
)

// sumResult is the JSON form of one file's report.
type sumResult struct {
	Source string `json:"source"`
	aggregate.Report
}

func newSumCmd(a *app) *cobra.Command {
	var (
		out   outputFlags
		naive bool
	)
	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Print the proximity sum and paired-product sum",
		Long: `Scan each file (stdin when none or "-") and print:
  proximity sum       sum of numbers adjacent to any symbol
  paired-product sum  sum over symbols adjacent to exactly two numbers of their product`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSum(cmd, args, out, naive)
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&naive, "naive", false, "Compare every symbol with every number instead of using the row index")
	return cmd
}

func (a *app) runSum(cmd *cobra.Command, args []string, flags outputFlags, naive bool) error {
	oc, err := flags.resolve(a.cfg)
	if err != nil {
		return err
	}
	sources, err := readSources(cmd, args)
	if err != nil {
		return err
	}

	var opts []aggregate.Option
	if naive {
		opts = append(opts, aggregate.WithNaive())
	}

	results := make([]sumResult, 0, len(sources))
	for _, src := range sources {
		a.log.Debug("scanning", zap.String("source", src.name), zap.Int("bytes", len(src.text)))
		entry, hit, err := a.report.Get(src.text, opts...)
		if err != nil {
			a.log.Error("scan failed", zap.String("source", src.name), zap.Error(err))
			return fmt.Errorf("%s: %w", src.name, err)
		}
		a.log.Info("scanned",
			zap.String("source", src.name),
			zap.Bool("cached", hit),
			zap.Int("symbols", entry.Report.Symbols),
			zap.Int("tokens", entry.Report.Tokens),
			zap.Int("gears", entry.Report.Gears))
		results = append(results, sumResult{Source: src.name, Report: entry.Report})
	}

	w := cmd.OutOrStdout()
	if oc.Format == "json" {
		return writeJSON(w, results)
	}
	st := newStyles(colorEnabled(oc.Color, w))
	for _, r := range results {
		st.heading.Fprintln(w, r.Source)
		st.label.Fprint(w, "  proximity sum:      ")
		st.value.Fprintln(w, r.ProximitySum)
		st.label.Fprint(w, "  paired-product sum: ")
		st.value.Fprintln(w, r.PairedProductSum)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
