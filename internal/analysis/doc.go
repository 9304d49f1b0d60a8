// Package analysis summarizes simulated paths.
//
//   - [Summarize] and [SummarizePaths]: moments and quantiles of terminal values
//   - [RealizedVol]: annualized volatility of one stock path
//   - [RelaxationXi] and [MaxRelaxationError]: closed-form ξ under frozen σ
//   - [FrozenVolTerminal]: the log-normal law of S_T when p = 0
//
// # Checking a run
//
// With p = 0 the volatility never moves, so ξ should follow its exponential
// relaxation toward σ₀:
//
//	err := analysis.MaxRelaxationError(xi, sigma0, xi0, alpha, dt)
package analysis
