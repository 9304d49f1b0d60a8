package dynamo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Params holds one run's model parameters and initial conditions.
type Params struct {
	Dt      float64
	Sigma0  float64
	S0      float64
	Xi0     float64
	Mu      float64
	P       float64
	Alpha   float64
	T       float64
	Samples int
}

// MaxSteps caps the rows per path.
const MaxSteps = math.MaxInt32

// Steps returns N = round(T/Dt), the number of rows per path including t=0.
// It is only meaningful for params that pass Validate.
func (p Params) Steps() int {
	return int(math.Round(p.T / p.Dt))
}

// Validate checks the numeric constraints every run depends on.
func (p Params) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"dt", p.Dt}, {"sigma0", p.Sigma0}, {"s0", p.S0}, {"xi0", p.Xi0},
		{"mu", p.Mu}, {"p", p.P}, {"alpha", p.Alpha}, {"time", p.T},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParamError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
	}

	if p.Dt <= 0 {
		return &ParamError{Field: "dt", Value: p.Dt, Reason: "must be > 0"}
	}
	if p.Alpha <= 0 {
		return &ParamError{Field: "alpha", Value: p.Alpha, Reason: "must be > 0"}
	}
	if p.T <= 0 {
		return &ParamError{Field: "time", Value: p.T, Reason: "must be > 0"}
	}
	if p.Samples <= 0 {
		return &ParamError{Field: "samples", Value: float64(p.Samples), Reason: "must be > 0"}
	}
	if n := math.Round(p.T / p.Dt); n > MaxSteps {
		return &ParamError{Field: "time", Value: p.T, Reason: fmt.Sprintf("yields too many steps at dt=%g (max %d)", p.Dt, MaxSteps)}
	}
	if p.Steps() < 1 {
		return &ParamError{Field: "time", Value: p.T, Reason: fmt.Sprintf("yields no steps at dt=%g", p.Dt)}
	}
	return nil
}

// Scheme advances the stock price and the volatility by one step. phi is a
// standard normal draw already scaled by sqrt(dt). Implementations must be
// pure functions of their arguments.
type Scheme interface {
	Name() string
	StepStock(s, sigma, mu, dt, phi float64) float64
	StepVol(sigma, xi, p, dt, phi float64) float64
}

// XiIntegrator advances ξ by one step with σ held at its previous value.
type XiIntegrator interface {
	StepXi(sigma, xi, alpha, dt float64) float64
}

// Paths is the output of a run: three N x samples matrices whose column s
// holds sample s in time order.
type Paths struct {
	Stock *mat.Dense
	Vol   *mat.Dense
	Xi    *mat.Dense
}

// NewPaths allocates zeroed buffers. steps and samples must be positive.
func NewPaths(steps, samples int) *Paths {
	return &Paths{
		Stock: mat.NewDense(steps, samples, nil),
		Vol:   mat.NewDense(steps, samples, nil),
		Xi:    mat.NewDense(steps, samples, nil),
	}
}

// Dims returns (steps, samples).
func (p *Paths) Dims() (int, int) {
	return p.Stock.Dims()
}

func (p *Paths) checkShape(steps, samples int) error {
	if p == nil || p.Stock == nil || p.Vol == nil || p.Xi == nil {
		return fmt.Errorf("%w: missing buffer", ErrShapeMismatch)
	}
	names := [...]string{"stock", "vol", "xi"}
	for i, m := range [...]*mat.Dense{p.Stock, p.Vol, p.Xi} {
		r, c := m.Dims()
		if r != steps || c != samples {
			return fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrShapeMismatch, names[i], r, c, steps, samples)
		}
	}
	return nil
}

// Sample returns copies of one sample's stock, vol and xi paths.
func (p *Paths) Sample(s int) (stock, vol, xi []float64) {
	return mat.Col(nil, s, p.Stock), mat.Col(nil, s, p.Vol), mat.Col(nil, s, p.Xi)
}

// Terminal returns the last row of m, one value per sample.
func Terminal(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	return mat.Row(nil, r-1, m)
}

// Mode selects how random streams are assigned to samples.
type Mode int

const (
	// Sequential shares two streams across all samples in sample-major order.
	Sequential Mode = iota
	// Independent seeds a stream pair per sample from the run seed.
	Independent
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Independent:
		return "independent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "":
		return Sequential, nil
	case "independent":
		return Independent, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, s)
	}
}
