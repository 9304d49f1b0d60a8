package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/stocksim/internal/analysis"
	"github.com/san-kum/stocksim/internal/dynamo"
	"github.com/san-kum/stocksim/internal/experiment"
	"github.com/san-kum/stocksim/internal/export"
	"github.com/san-kum/stocksim/internal/metrics"
	"github.com/san-kum/stocksim/internal/report"
	"github.com/spf13/cobra"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case "summary", "csv", "json":
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	ecfg, err := cfg.Experiment()
	if err != nil {
		return err
	}

	rec := metrics.New()
	res, err := experiment.Simulate(cmd.Context(), ecfg,
		experiment.WithLogger(logger),
		experiment.WithRecorder(rec),
	)
	if metricsFile != "" {
		if werr := rec.WriteFile(metricsFile); werr != nil {
			logger.Warn().Err(werr).Str("path", metricsFile).Msg("could not write metrics")
		}
	}
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		switch outputFormat {
		case "csv":
			return export.WriteCSV(w, res.Paths, res.Params.Dt)
		case "json":
			return export.WriteJSON(w, res, withPaths)
		default:
			_, err := fmt.Fprintln(w, report.Run(res))
			return err
		}
	}

	if outputFile == "" {
		err = write(os.Stdout)
	} else {
		var f *os.File
		f, err = os.Create(outputFile)
		if err != nil {
			return err
		}
		err = writeAndClose(f, write)
	}
	if err != nil {
		return fmt.Errorf("write %s output: %w", outputFormat, err)
	}

	if outputFile != "" {
		logger.Info().Str("path", outputFile).Str("format", outputFormat).Msg("output written")
	}
	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	ecfg, err := cfg.Experiment()
	if err != nil {
		return err
	}

	rec := metrics.New()
	registry := experiment.NewRegistry()

	fmt.Printf("comparing schemes (seed=%d, samples=%d, dt=%g, time=%g)\n\n", ecfg.Seed, ecfg.Params.Samples, ecfg.Params.Dt, ecfg.Params.T)

	var rows []report.CompareRow
	for _, name := range registry.ListSchemes() {
		ecfg.Scheme = name
		res, err := experiment.Simulate(cmd.Context(), ecfg,
			experiment.WithLogger(logger),
			experiment.WithRecorder(rec),
			experiment.WithRegistry(registry),
		)
		if err != nil {
			if cmd.Context().Err() != nil {
				return err
			}
			rows = append(rows, report.CompareRow{Scheme: name, Err: err})
			continue
		}

		row := report.CompareRow{
			Scheme:  name,
			Stock:   analysis.Summarize("stock", dynamo.Terminal(res.Paths.Stock)),
			Vol:     analysis.Summarize("vol", dynamo.Terminal(res.Paths.Vol)),
			Elapsed: res.Elapsed,
		}
		if res.Params.P == 0 {
			row.HasRelax = true
			row.RelaxErr = maxRelaxationError(res)
		}
		rows = append(rows, row)
	}

	fmt.Println(report.Compare(rows))

	if metricsFile != "" {
		return rec.WriteFile(metricsFile)
	}
	return nil
}

func maxRelaxationError(res *experiment.Result) float64 {
	p := res.Params
	_, cols := res.Paths.Dims()
	worst := 0.0
	for s := 0; s < cols; s++ {
		_, _, xi := res.Paths.Sample(s)
		if e := analysis.MaxRelaxationError(xi, p.Sigma0, p.Xi0, p.Alpha, p.Dt); e > worst {
			worst = e
		}
	}
	return worst
}

func benchSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	ecfg, err := cfg.Experiment()
	if err != nil {
		return err
	}

	rec := metrics.New()
	registry := experiment.NewRegistry()

	fmt.Printf("benchmarking %d samples x %d steps\n\n", ecfg.Params.Samples, ecfg.Params.Steps())

	var rows []report.BenchRow
	for _, name := range registry.ListSchemes() {
		for _, m := range []dynamo.Mode{dynamo.Sequential, dynamo.Independent} {
			ecfg.Scheme = name
			ecfg.Mode = m

			start := time.Now()
			res, err := experiment.Simulate(cmd.Context(), ecfg,
				experiment.WithLogger(logger),
				experiment.WithRecorder(rec),
				experiment.WithRegistry(registry),
			)
			if err != nil {
				return err
			}

			steps, n := res.Paths.Dims()
			rows = append(rows, report.BenchRow{
				Scheme:  name,
				Mode:    m.String(),
				Samples: n,
				Steps:   steps,
				Elapsed: time.Since(start),
			})
		}
	}

	fmt.Println(report.Bench(rows))

	if metricsFile != "" {
		return rec.WriteFile(metricsFile)
	}
	return nil
}
