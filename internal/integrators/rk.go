package integrators

import (
	"math"

	"github.com/san-kum/stocksim/internal/dynamo"
)

var _ dynamo.Scheme = (*RK)(nil)

// RK is Platen's derivative-free strong order 1.0 scheme. The diffusion
// derivative of Milstein is replaced by a finite difference through the
// support value x̂ = x + a·dt + b·sqrt(dt).
type RK struct{}

func NewRK() *RK {
	return &RK{}
}

func (r *RK) Name() string { return "rk" }

func (r *RK) StepStock(s, sigma, mu, dt, phi float64) float64 {
	sqrtDt := math.Sqrt(dt)
	a := stockDrift(s, mu)
	b := stockDiffusion(s, sigma)

	support := s + a*dt + b*sqrtDt
	bSupport := stockDiffusion(support, sigma)

	return s + a*dt + b*phi + (bSupport-b)*(phi*phi-dt)/(2*sqrtDt)
}

func (r *RK) StepVol(sigma, xi, p, dt, phi float64) float64 {
	sqrtDt := math.Sqrt(dt)
	a := volDrift(sigma, xi, p)
	b := volDiffusion(sigma, p)

	support := sigma + a*dt + b*sqrtDt
	bSupport := volDiffusion(support, p)

	return sigma + a*dt + b*phi + (bSupport-b)*(phi*phi-dt)/(2*sqrtDt)
}
