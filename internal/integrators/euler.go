package integrators

import "github.com/san-kum/stocksim/internal/dynamo"

var _ dynamo.Scheme = (*Euler)(nil)

// Euler is the Euler-Maruyama scheme.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) StepStock(s, sigma, mu, dt, phi float64) float64 {
	return s + stockDrift(s, mu)*dt + stockDiffusion(s, sigma)*phi
}

func (e *Euler) StepVol(sigma, xi, p, dt, phi float64) float64 {
	return sigma + volDrift(sigma, xi, p)*dt + volDiffusion(sigma, p)*phi
}
