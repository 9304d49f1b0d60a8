package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// RelaxationXi is ξ(t) = σ + (ξ₀ - σ)·exp(-t/α) for constant σ.
func RelaxationXi(sigma, xi0, alpha, t float64) float64 {
	return sigma + (xi0-sigma)*math.Exp(-t/alpha)
}

// MaxRelaxationError is the largest |xi[t] - RelaxationXi(t·dt)| over the path.
func MaxRelaxationError(xi []float64, sigma, xi0, alpha, dt float64) float64 {
	worst := 0.0
	for t, v := range xi {
		if d := math.Abs(v - RelaxationXi(sigma, xi0, alpha, float64(t)*dt)); d > worst {
			worst = d
		}
	}
	return worst
}

// FrozenVolTerminal is the law of S_t for geometric Brownian motion with
// drift mu and constant volatility sigma, i.e. the p = 0 stock process.
func FrozenVolTerminal(s0, mu, sigma, t float64) distuv.LogNormal {
	return distuv.LogNormal{
		Mu:    math.Log(s0) + (mu-0.5*sigma*sigma)*t,
		Sigma: sigma * math.Sqrt(t),
	}
}
