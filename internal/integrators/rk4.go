package integrators

import "github.com/san-kum/stocksim/internal/dynamo"

var _ dynamo.XiIntegrator = (*XiRK4)(nil)

// XiRK4 integrates dξ/dt = (σ − ξ)/alpha over one step with σ frozen at its
// value from the start of the step. The stage increments are applied to σ,
// not ξ; the path output depends on this exact form.
type XiRK4 struct{}

func NewXiRK4() *XiRK4 {
	return &XiRK4{}
}

func (r *XiRK4) StepXi(sigma, xi, alpha, dt float64) float64 {
	k1 := (sigma - xi) / alpha
	k2 := (sigma + 0.5*dt*k1 - xi) / alpha
	k3 := (sigma + 0.5*dt*k2 - xi) / alpha
	k4 := (sigma + dt*k3 - xi) / alpha

	return xi + dt/6.0*(k1+2*k2+2*k3+k4)
}
