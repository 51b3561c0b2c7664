// Package toyproblem implements the end-to-end fixture used throughout this
// module's test suites (§8's scenarios S1-S6): minimize f(x) = Σ(xᵢ-i)² over
// x ∈ {0,...,9}⁴, with the one-position-change neighborhood (change a single
// coordinate to a different value in its domain).
//
// This plays the role lvlath/tsp plays in the source library: a small,
// concrete client of the core interfaces (model.StateManager,
// neighborhood.Explorer) that the framework's own tests exercise against,
// rather than a mock.
package toyproblem
