package integrators

// Stock: dS = μ·S dt + σ·S dW.
func stockDrift(s, mu float64) float64        { return mu * s }
func stockDiffusion(s, sigma float64) float64 { return sigma * s }

// Volatility: dσ = p·(ξ − σ) dt + p·σ dW, so p = 0 freezes σ.
func volDrift(sigma, xi, p float64) float64 { return p * (xi - sigma) }
func volDiffusion(sigma, p float64) float64 { return p * sigma }
