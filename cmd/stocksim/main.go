package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/stocksim/internal/config"
	"github.com/san-kum/stocksim/internal/experiment"
	"github.com/san-kum/stocksim/internal/report"
	"github.com/spf13/cobra"
)

var (
	seed    int64
	samples int
	dt      float64
	sigma0  float64
	s0      float64
	xi0     float64
	mu      float64
	p       float64
	alpha   float64
	horizon float64
	scheme  string
	mode    string
	workers int

	configFile string
	preset     string

	logLevel  string
	logFormat string
	logOutput string

	outputFormat string
	outputFile   string
	withPaths    bool
	metricsFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "stocksim",
		Short:         "stochastic volatility path simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console|json)")
	rootCmd.PersistentFlags().StringVar(&logOutput, "log-output", "stderr", "log output (stderr|stdout|path)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate stock, volatility and xi paths",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVarP(&outputFormat, "output", "o", "summary", "output format (summary|csv|json)")
	runCmd.Flags().StringVar(&outputFile, "out", "", "write output to file instead of stdout")
	runCmd.Flags().BoolVar(&withPaths, "paths", false, "include full paths in json output")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to file")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every scheme on the same seed",
		Args:  cobra.NoArgs,
		RunE:  compareSchemes,
	}
	addParamFlags(compareCmd)
	compareCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time every scheme in both stream modes",
		Args:  cobra.NoArgs,
		RunE:  benchSchemes,
	}
	addParamFlags(benchCmd)
	benchCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(report.List("presets", config.ListPresets()))
			return nil
		},
	}

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list integration schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(report.List("schemes", experiment.NewRegistry().ListSchemes()))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, benchCmd, presetsCmd, schemesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().Int64Var(&seed, "seed", d.Seed, "random seed")
	cmd.Flags().IntVar(&samples, "samples", d.Samples, "number of sample paths")
	cmd.Flags().Float64Var(&dt, "dt", d.Dt, "timestep")
	cmd.Flags().Float64Var(&sigma0, "sigma0", d.Sigma0, "initial volatility")
	cmd.Flags().Float64Var(&s0, "s0", d.S0, "initial stock price")
	cmd.Flags().Float64Var(&xi0, "xi0", d.Xi0, "initial xi")
	cmd.Flags().Float64Var(&mu, "mu", d.Mu, "stock drift")
	cmd.Flags().Float64Var(&p, "p", d.P, "volatility coupling")
	cmd.Flags().Float64Var(&alpha, "alpha", d.Alpha, "xi relaxation time")
	cmd.Flags().Float64Var(&horizon, "time", d.Time, "horizon")
	cmd.Flags().StringVar(&scheme, "scheme", d.Scheme, "scheme (euler|milstein|rk)")
	cmd.Flags().StringVar(&mode, "mode", d.Mode, "stream mode (sequential|independent)")
	cmd.Flags().IntVar(&workers, "workers", d.Workers, "workers for independent mode (0 = all cpus)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}
