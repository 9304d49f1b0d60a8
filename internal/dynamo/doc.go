// Package dynamo provides the path-generation core of the stochastic
// volatility simulator.
//
// A run advances three coupled state variables per sample path:
//
//   - S: the stock price, driven by its own normal shock stream
//   - σ: the volatility, driven by a second, independent stream
//   - ξ: the mean-reverting driver of σ, integrated deterministically
//
// The package defines:
//
//   - [Params]: validated, immutable simulation parameters
//   - [Scheme]: stock/volatility stepper pair (Euler, Milstein, RK)
//   - [XiIntegrator]: deterministic ξ update
//   - [Paths]: the caller-owned N x samples output matrices
//   - [Simulator]: orchestrates the sample and time-step loops
//
// # Example
//
//	scheme, _ := experiment.NewRegistry().Scheme("milstein")
//	sim := dynamo.New(scheme, integrators.NewXiRK4())
//	paths := dynamo.NewPaths(params.Steps(), params.Samples)
//	err := sim.Run(ctx, params, seed, paths)
//
// # Stream modes
//
// [Sequential] draws from two streams shared by all samples, consumed
// sample by sample. [Independent] gives every sample its own seed-derived
// streams so samples can run concurrently. Its output is reproducible but
// differs numerically from Sequential.
//
// # Thread Safety
//
// A Simulator holds no per-run state and may be reused, but a [Paths]
// buffer must not be shared between concurrent runs.
package dynamo
