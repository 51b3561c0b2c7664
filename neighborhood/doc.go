// Package neighborhood implements the neighborhood-exploration engine: the
// Explorer client contract, incremental delta-cost composition, and the four
// selection algorithms (SelectFirst, SelectBest, RandomFirst, RandomBest)
// plus their data-parallel variants.
//
// Design lineage: the scanning shape (first/next iteration with a running
// best, first-improvement restart, deadline/iteration guards) is lifted from
// lvlath/tsp/two_opt.go's first-improvement 2-opt loop and generalized from a
// single hard-coded move type to the client-supplied Explorer contract.
package neighborhood
