// Package logging builds the zap logger used by the schematic CLI.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/schematic/internal/config"
)

// New builds a logger writing to w according to cfg.
// Format "json" uses the production encoder, "console" the development one.
func New(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level=%q: %v", config.ErrInvalidConfig, cfg.Level, err)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("%w: log.format=%q", config.ErrInvalidConfig, cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("schematic"), nil
}

// Override adjusts cfg for the --verbose and --quiet flags.
// quiet wins over verbose.
func Override(cfg config.LogConfig, verbose, quiet bool) config.LogConfig {
	switch {
	case quiet:
		cfg.Level = "error"
	case verbose:
		cfg.Level = "debug"
	}
	return cfg
}
