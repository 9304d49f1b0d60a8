package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/stocksim/internal/dynamo"
)

type Config struct {
	Scheme  string
	Seed    int64
	Params  dynamo.Params
	Mode    dynamo.Mode
	Workers int
}

// Recorder receives one observation per finished run.
type Recorder interface {
	ObserveRun(scheme, mode string, samples, steps int, elapsed time.Duration, err error)
}

type Result struct {
	Scheme  string
	Seed    int64
	Mode    dynamo.Mode
	Params  dynamo.Params
	Paths   *dynamo.Paths
	Elapsed time.Duration
}

type Experiment struct {
	cfg       Config
	registry  *Registry
	simulator *dynamo.Simulator
	logger    zerolog.Logger
	recorder  Recorder
}

type Option func(*Experiment)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Experiment) { e.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(e *Experiment) { e.recorder = r }
}

func WithRegistry(r *Registry) Option {
	return func(e *Experiment) { e.registry = r }
}

func New(cfg Config, opts ...Option) *Experiment {
	e := &Experiment{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	return e
}

// Setup validates the parameters and resolves the scheme. Nothing is
// allocated or drawn until both succeed.
func (e *Experiment) Setup() error {
	if err := e.cfg.Params.Validate(); err != nil {
		return err
	}
	scheme, err := e.registry.Scheme(e.cfg.Scheme)
	if err != nil {
		return err
	}

	e.simulator = dynamo.New(scheme, e.registry.XiIntegrator(),
		dynamo.WithMode(e.cfg.Mode),
		dynamo.WithWorkers(e.cfg.Workers),
		dynamo.WithLogger(e.logger),
	)
	return nil
}

// Run allocates the output buffers and fills them.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.simulator == nil {
		return nil, errors.New("experiment not setup")
	}

	p := e.cfg.Params
	steps := p.Steps()
	paths := dynamo.NewPaths(steps, p.Samples)

	start := time.Now()
	err := e.simulator.Run(ctx, p, e.cfg.Seed, paths)
	elapsed := time.Since(start)

	if e.recorder != nil {
		e.recorder.ObserveRun(e.cfg.Scheme, e.cfg.Mode.String(), p.Samples, steps, elapsed, err)
	}
	if err != nil {
		e.logger.Error().Err(err).Str("scheme", e.cfg.Scheme).Msg("simulation failed")
		return nil, fmt.Errorf("run %s: %w", e.cfg.Scheme, err)
	}

	e.logger.Info().
		Str("scheme", e.cfg.Scheme).
		Str("mode", e.cfg.Mode.String()).
		Int("samples", p.Samples).
		Int("steps", steps).
		Int64("seed", e.cfg.Seed).
		Dur("elapsed", elapsed).
		Msg("simulation complete")

	return &Result{
		Scheme:  e.cfg.Scheme,
		Seed:    e.cfg.Seed,
		Mode:    e.cfg.Mode,
		Params:  p,
		Paths:   paths,
		Elapsed: elapsed,
	}, nil
}

// Simulate runs Setup and Run in one call.
func Simulate(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	e := New(cfg, opts...)
	if err := e.Setup(); err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
