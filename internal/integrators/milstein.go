package integrators

import "github.com/san-kum/stocksim/internal/dynamo"

var _ dynamo.Scheme = (*Milstein)(nil)

// Milstein adds the ½·b·b'·(φ² − dt) correction to Euler-Maruyama.
type Milstein struct {
	euler Euler
}

func NewMilstein() *Milstein {
	return &Milstein{}
}

func (m *Milstein) Name() string { return "milstein" }

func (m *Milstein) StepStock(s, sigma, mu, dt, phi float64) float64 {
	// b = σS, b' = σ
	return m.euler.StepStock(s, sigma, mu, dt, phi) + 0.5*sigma*sigma*s*(phi*phi-dt)
}

func (m *Milstein) StepVol(sigma, xi, p, dt, phi float64) float64 {
	// b = pσ, b' = p
	return m.euler.StepVol(sigma, xi, p, dt, phi) + 0.5*p*p*sigma*(phi*phi-dt)
}
