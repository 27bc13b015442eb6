// Package siman implements a generic simulated-annealing optimizer for
// discrete combinatorial problems.
//
// The optimizer is a Monte Carlo Markov chain over a caller-supplied state:
// it repeatedly asks a MoveManager to propose candidate transitions, accepts
// or rejects them using the Metropolis criterion, and drives a temperature
// schedule around that acceptance behavior. The starting temperature is
// calibrated empirically (measureTemp), and convergence is detected by
// linear-regression extrapolation of recent (temperature, cost) samples
// rather than a fixed iteration budget.
//
// Problem state lives entirely inside the MoveManager; Annealer itself is
// stateless with respect to the problem being solved. A simpler sibling,
// LocalOpt, performs greedy local search against the same contract and is
// useful as a cheap post-pass after annealing (see cmd/siman's "sort" demo).
//
// Package siman is deliberately single-threaded and synchronous. See
// Annealer.Optimize and LocalOpt.Optimize for cancellation via context.
package siman
