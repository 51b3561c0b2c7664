// Package solver composes runners and kickers into complete solving
// procedures (§4.6): Simple (one runner, one trial or many), iterated local
// search (runner alternated with a kicker-driven perturbation), token-ring
// (several runners cycled on a shared state), and variable neighborhood
// descent (kicker alone, growing neighborhood index on failure).
//
// Grounded on original_source/src/solvers/{AbstractSolver,
// GeneralizedLocalSearchSolver,TokenRingSolver}.hh and
// original_source/include/solvers/VariableNeighborhoodDescent.hh.
package solver
