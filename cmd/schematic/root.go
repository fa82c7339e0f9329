package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/schematic/internal/cache"
	"github.com/katalvlaran/schematic/internal/config"
	"github.com/katalvlaran/schematic/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg    *config.Config
	log    *zap.Logger
	report *cache.Reports
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "schematic",
		Short: "Scan text schematics for part numbers and gears",
		Long: `schematic reads a grid of characters where digits form numbers, '.' is
empty space and every other character is a symbol.

It reports the sum of all numbers touching a symbol (diagonals included) and
the sum of products of number pairs around symbols touching exactly two.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (debug logs)")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Quiet mode (errors only)")

	root.AddCommand(newSumCmd(a))
	root.AddCommand(newSymbolsCmd(a))
	root.AddCommand(newTokensCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads configuration and builds the logger and report cache.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, err := logging.New(logging.Override(cfg.Log, a.verbose, a.quiet), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	reports, err := cache.New(cfg.Cache.Size)
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}

	a.cfg, a.log, a.report = cfg, log, reports
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("output", cfg.Output.Format),
		zap.Int("cache_size", cfg.Cache.Size))
	return nil
}

// outputFlags are the rendering flags shared by the listing commands.
type outputFlags struct {
	format string
	color  string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: human, json (default from config)")
	cmd.Flags().StringVar(&f.color, "color", "", "Color output: auto, always, never (default from config)")
}

// resolve merges the flags over the configured output settings.
func (f *outputFlags) resolve(cfg *config.Config) (config.OutputConfig, error) {
	out := cfg.Output
	if f.format != "" {
		out.Format = f.format
	}
	if f.color != "" {
		out.Color = f.color
	}
	merged := *cfg
	merged.Output = out
	if err := merged.Validate(); err != nil {
		return out, err
	}
	return out, nil
}
