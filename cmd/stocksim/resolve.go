package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/san-kum/stocksim/internal/config"
	"github.com/san-kum/stocksim/internal/logging"
	"github.com/spf13/cobra"
)

// resolveConfig layers preset, config file and explicitly set flags, in
// that order, and validates only the final result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	overrides := []struct {
		flag  string
		apply func()
	}{
		{"seed", func() { cfg.Seed = seed }},
		{"samples", func() { cfg.Samples = samples }},
		{"dt", func() { cfg.Dt = dt }},
		{"sigma0", func() { cfg.Sigma0 = sigma0 }},
		{"s0", func() { cfg.S0 = s0 }},
		{"xi0", func() { cfg.Xi0 = xi0 }},
		{"mu", func() { cfg.Mu = mu }},
		{"p", func() { cfg.P = p }},
		{"alpha", func() { cfg.Alpha = alpha }},
		{"time", func() { cfg.Time = horizon }},
		{"scheme", func() { cfg.Scheme = scheme }},
		{"mode", func() { cfg.Mode = mode }},
		{"workers", func() { cfg.Workers = workers }},
		{"log-level", func() { cfg.Log.Level = logLevel }},
		{"log-format", func() { cfg.Log.Format = logFormat }},
		{"log-output", func() { cfg.Log.Output = logOutput }},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			o.apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg logging.Config) (zerolog.Logger, func(), error) {
	logger, closer, err := logging.New(cfg)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	cleanup := func() {}
	if closer != nil {
		cleanup = func() { closer.Close() }
	}
	return logger, cleanup, nil
}

// writeAndClose runs write against wc and always closes it. It returns the
// write error if any, otherwise the close error.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}
