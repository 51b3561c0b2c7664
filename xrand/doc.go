// Package xrand centralizes deterministic random generation for every
// stochastic component of the easylocal framework (random_move sampling,
// multi-modal bias selection, kick sampling, hill-climbing/SA/great-deluge
// neighbor draws).
//
// Goals (carried over from lvlath/tsp's rng.go, generalized from one TSP
// heuristic package to every package in this module):
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single factory and a single stream-derivation scheme;
//     no time-based sources hidden anywhere.
//   - Safety: no panics; callers get a usable *Source even for seed == 0.
//
// Concurrency: *rand.Rand is NOT goroutine-safe. Each goroutine that samples
// concurrently must hold its own Source, obtained via Derive. (Package
// neighborhood's ParallelSelectFirst/ParallelSelectBest draw no random
// numbers, so they hold none.)
package xrand
