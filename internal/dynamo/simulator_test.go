package dynamo

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/stocksim/internal/rng"
	"gonum.org/v1/gonum/mat"
)

// eulerLike is a minimal scheme used to exercise the simulator loops.
type eulerLike struct{}

func (eulerLike) Name() string { return "euler-like" }
func (eulerLike) StepStock(s, sigma, mu, dt, phi float64) float64 {
	return s + mu*s*dt + sigma*s*phi
}
func (eulerLike) StepVol(sigma, xi, p, dt, phi float64) float64 {
	return sigma + p*(xi-sigma)*dt + p*sigma*phi
}

type relaxXi struct{}

func (relaxXi) StepXi(sigma, xi, alpha, dt float64) float64 {
	return xi + dt*(sigma-xi)/alpha
}

// recordScheme writes the shocks it receives straight into the paths.
type recordScheme struct{}

func (recordScheme) Name() string                                    { return "record" }
func (recordScheme) StepStock(s, sigma, mu, dt, phi float64) float64 { return phi }
func (recordScheme) StepVol(sigma, xi, p, dt, phi float64) float64   { return phi }

type counter struct{ n float64 }

func (c *counter) Normal() float64 {
	c.n++
	return c.n
}

func exampleParams() Params {
	return Params{
		Dt: 0.01, Sigma0: 0.2, S0: 100, Xi0: 0.15,
		Mu: 0.05, P: 0.1, Alpha: 2, T: 0.05, Samples: 2,
	}
}

func TestParamsSteps(t *testing.T) {
	tests := []struct {
		dt, T float64
		want  int
	}{
		{0.01, 0.05, 5},
		{0.001, 1, 1000},
		{0.1, 1, 10},
		{0.3, 1, 3},
	}

	for _, tt := range tests {
		p := Params{Dt: tt.dt, T: tt.T}
		if got := p.Steps(); got != tt.want {
			t.Errorf("Steps(T=%g, dt=%g) = %d, want %d", tt.T, tt.dt, got, tt.want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Params)
		field string
	}{
		{"zero alpha", func(p *Params) { p.Alpha = 0 }, "alpha"},
		{"negative alpha", func(p *Params) { p.Alpha = -1 }, "alpha"},
		{"zero dt", func(p *Params) { p.Dt = 0 }, "dt"},
		{"negative dt", func(p *Params) { p.Dt = -0.01 }, "dt"},
		{"zero samples", func(p *Params) { p.Samples = 0 }, "samples"},
		{"zero time", func(p *Params) { p.T = 0 }, "time"},
		{"no steps", func(p *Params) { p.T = 0.001 }, "time"},
		{"too many steps", func(p *Params) { p.T, p.Dt = 1e30, 1e-300 }, "time"},
		{"infinite steps", func(p *Params) { p.T, p.Dt = 1e300, 1e-300 }, "time"},
		{"nan mu", func(p *Params) { p.Mu = math.NaN() }, "mu"},
		{"inf s0", func(p *Params) { p.S0 = math.Inf(1) }, "s0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := exampleParams()
			tt.mod(&p)

			err := p.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParamError, got %T", err)
			}
			if pe.Field != tt.field {
				t.Errorf("field = %q, want %q", pe.Field, tt.field)
			}
		})
	}

	if err := exampleParams().Validate(); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}

func TestParamsValidateStepCap(t *testing.T) {
	p := exampleParams()
	p.T, p.Dt = 1e30, 1e-300

	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "too many steps") {
		t.Fatalf("expected too-many-steps error, got %v", err)
	}

	p.T, p.Dt = float64(MaxSteps), 1
	if err := p.Validate(); err != nil {
		t.Errorf("rows at the cap rejected: %v", err)
	}
}

func TestSimulatorRun(t *testing.T) {
	p := exampleParams()
	sim := New(eulerLike{}, relaxXi{})
	out := NewPaths(p.Steps(), p.Samples)

	if err := sim.Run(context.Background(), p, 42, out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rows, cols := out.Dims()
	if rows != 5 || cols != 2 {
		t.Fatalf("expected 5x2 paths, got %dx%d", rows, cols)
	}

	for s := 0; s < cols; s++ {
		if out.Stock.At(0, s) != 100 || out.Vol.At(0, s) != 0.2 || out.Xi.At(0, s) != 0.15 {
			t.Errorf("sample %d: row 0 = (%v, %v, %v)", s, out.Stock.At(0, s), out.Vol.At(0, s), out.Xi.At(0, s))
		}
	}

	if out.Stock.At(1, 0) == out.Stock.At(1, 1) {
		t.Error("samples share their first shock")
	}
}

func TestSimulatorDeterministic(t *testing.T) {
	for _, mode := range []Mode{Sequential, Independent} {
		t.Run(mode.String(), func(t *testing.T) {
			p := exampleParams()
			p.Samples = 16
			p.T = 1

			a := NewPaths(p.Steps(), p.Samples)
			b := NewPaths(p.Steps(), p.Samples)

			sim := New(eulerLike{}, relaxXi{}, WithMode(mode))
			if err := sim.Run(context.Background(), p, 7, a); err != nil {
				t.Fatal(err)
			}
			if err := sim.Run(context.Background(), p, 7, b); err != nil {
				t.Fatal(err)
			}

			if !mat.Equal(a.Stock, b.Stock) || !mat.Equal(a.Vol, b.Vol) || !mat.Equal(a.Xi, b.Xi) {
				t.Error("identical seeds produced different paths")
			}
		})
	}
}

func TestSimulatorDrawOrder(t *testing.T) {
	p := Params{Dt: 0.25, T: 1, Alpha: 1, Samples: 2}
	sim := New(recordScheme{}, relaxXi{}, WithSource(func(int64) (rng.Normal, rng.Normal) {
		return &counter{}, &counter{n: 100}
	}))
	out := NewPaths(p.Steps(), p.Samples)

	if err := sim.Run(context.Background(), p, 0, out); err != nil {
		t.Fatal(err)
	}

	// sqrt(0.25) = 0.5; streams continue from sample 0 into sample 1.
	wantStock := [][]float64{{0, 0}, {0.5, 2.0}, {1.0, 2.5}, {1.5, 3.0}}
	for r, row := range wantStock {
		for c, want := range row {
			if got := out.Stock.At(r, c); got != want {
				t.Errorf("stock[%d][%d] = %v, want %v", r, c, got, want)
			}
		}
	}

	if got := out.Vol.At(1, 0); got != 50.5 {
		t.Errorf("vol[1][0] = %v, want 50.5", got)
	}
	if got := out.Vol.At(1, 1); got != 52 {
		t.Errorf("vol[1][1] = %v, want 52", got)
	}
}

func TestSimulatorIndependentWorkers(t *testing.T) {
	p := exampleParams()
	p.Samples = 32
	p.T = 0.5

	run := func(opts ...Option) *Paths {
		out := NewPaths(p.Steps(), p.Samples)
		if err := New(eulerLike{}, relaxXi{}, opts...).Run(context.Background(), p, 99, out); err != nil {
			t.Fatal(err)
		}
		return out
	}

	one := run(WithMode(Independent), WithWorkers(1))
	many := run(WithMode(Independent), WithWorkers(8))
	seq := run(WithMode(Sequential))

	if !mat.Equal(one.Stock, many.Stock) || !mat.Equal(one.Vol, many.Vol) {
		t.Error("independent mode output depends on worker count")
	}
	if mat.Equal(one.Stock, seq.Stock) {
		t.Error("independent and sequential modes should draw from different streams")
	}
}

func TestSimulatorValidationLeavesOutputUntouched(t *testing.T) {
	p := exampleParams()
	p.Alpha = 0

	out := NewPaths(p.Steps(), p.Samples)
	sentinel := mat.NewDense(p.Steps(), p.Samples, nil)
	for r := 0; r < p.Steps(); r++ {
		for c := 0; c < p.Samples; c++ {
			sentinel.Set(r, c, -1)
		}
	}
	out.Stock.Copy(sentinel)
	out.Vol.Copy(sentinel)
	out.Xi.Copy(sentinel)

	err := New(eulerLike{}, relaxXi{}).Run(context.Background(), p, 1, out)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}

	if !mat.Equal(out.Stock, sentinel) || !mat.Equal(out.Vol, sentinel) || !mat.Equal(out.Xi, sentinel) {
		t.Error("output touched despite validation failure")
	}
}

func TestSimulatorShapeMismatch(t *testing.T) {
	p := exampleParams()

	tests := []struct {
		name string
		out  *Paths
	}{
		{"nil paths", nil},
		{"wrong rows", NewPaths(p.Steps()+1, p.Samples)},
		{"wrong cols", NewPaths(p.Steps(), p.Samples+1)},
		{"missing xi", &Paths{Stock: mat.NewDense(5, 2, nil), Vol: mat.NewDense(5, 2, nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(eulerLike{}, relaxXi{}).Run(context.Background(), p, 1, tt.out)
			if !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("expected ErrShapeMismatch, got %v", err)
			}
		})
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := exampleParams()
	for _, mode := range []Mode{Sequential, Independent} {
		err := New(eulerLike{}, relaxXi{}, WithMode(mode)).Run(ctx, p, 1, NewPaths(p.Steps(), p.Samples))
		if !errors.Is(err, ErrContextCanceled) || !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected cancellation error, got %v", mode, err)
		}
	}
}

func TestSimulatorNoScheme(t *testing.T) {
	p := exampleParams()
	err := New(nil, relaxXi{}).Run(context.Background(), p, 1, NewPaths(p.Steps(), p.Samples))
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", Sequential, true},
		{"sequential", Sequential, true},
		{"independent", Independent, true},
		{"parallel", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseMode(%q) = %v, %v", tt.in, got, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseMode(%q): expected ErrInvalidParameter, got %v", tt.in, err)
		}
	}
}

func TestTerminal(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	got := Terminal(m)
	if len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Errorf("Terminal = %v, want [5 6]", got)
	}
}
