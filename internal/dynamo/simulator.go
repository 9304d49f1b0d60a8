package dynamo

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/stocksim/internal/rng"
)

// SourceFunc builds the stock and vol streams for a seed.
type SourceFunc func(seed int64) (stock, vol rng.Normal)

func defaultSource(seed int64) (rng.Normal, rng.Normal) {
	src := rng.NewSource(seed)
	return src.Stock, src.Vol
}

type Simulator struct {
	scheme  Scheme
	xi      XiIntegrator
	mode    Mode
	workers int
	source  SourceFunc
	logger  zerolog.Logger
}

type Option func(*Simulator)

func WithMode(m Mode) Option {
	return func(s *Simulator) { s.mode = m }
}

// WithWorkers bounds the goroutines used in Independent mode. Values below
// one mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

func WithSource(fn SourceFunc) Option {
	return func(s *Simulator) { s.source = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

func New(scheme Scheme, xi XiIntegrator, opts ...Option) *Simulator {
	s := &Simulator{
		scheme:  scheme,
		xi:      xi,
		mode:    Sequential,
		workers: runtime.NumCPU(),
		source:  defaultSource,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	return s
}

func (s *Simulator) Scheme() Scheme { return s.scheme }
func (s *Simulator) Mode() Mode     { return s.mode }

// Run fills out with params.Samples paths of params.Steps() rows each.
// Parameters and buffer shape are checked before any draw or write, so a
// validation failure leaves out untouched.
func (s *Simulator) Run(ctx context.Context, params Params, seed int64, out *Paths) error {
	if s.scheme == nil || s.xi == nil {
		return fmt.Errorf("%w: simulator has no scheme", ErrUnsupportedScheme)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	steps := params.Steps()
	if err := out.checkShape(steps, params.Samples); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrContextCanceled, err)
	}

	s.logger.Debug().
		Str("scheme", s.scheme.Name()).
		Str("mode", s.mode.String()).
		Int("samples", params.Samples).
		Int("steps", steps).
		Int64("seed", seed).
		Msg("simulation started")

	start := time.Now()

	var err error
	switch s.mode {
	case Independent:
		err = s.runIndependent(ctx, params, seed, out)
	default:
		err = s.runSequential(ctx, params, seed, out)
	}
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("scheme", s.scheme.Name()).
		Dur("elapsed", time.Since(start)).
		Msg("simulation finished")

	return nil
}

func (s *Simulator) runSequential(ctx context.Context, params Params, seed int64, out *Paths) error {
	stock, vol := s.source(seed)
	for i := 0; i < params.Samples; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w at sample %d: %w", ErrContextCanceled, i, ctx.Err())
		default:
		}
		s.samplePath(params, i, stock, vol, out)
	}
	return nil
}

// samplePath writes column col. Every update reads only row t-1.
func (s *Simulator) samplePath(params Params, col int, stockRNG, volRNG rng.Normal, out *Paths) {
	n := params.Steps()
	sqrtDt := math.Sqrt(params.Dt)

	st, vol, xi := params.S0, params.Sigma0, params.Xi0
	out.Stock.Set(0, col, st)
	out.Vol.Set(0, col, vol)
	out.Xi.Set(0, col, xi)

	for t := 1; t < n; t++ {
		phiStock := stockRNG.Normal() * sqrtDt
		phiVol := volRNG.Normal() * sqrtDt

		nextSt := s.scheme.StepStock(st, vol, params.Mu, params.Dt, phiStock)
		nextVol := s.scheme.StepVol(vol, xi, params.P, params.Dt, phiVol)
		nextXi := s.xi.StepXi(vol, xi, params.Alpha, params.Dt)

		out.Stock.Set(t, col, nextSt)
		out.Vol.Set(t, col, nextVol)
		out.Xi.Set(t, col, nextXi)

		st, vol, xi = nextSt, nextVol, nextXi
	}
}
