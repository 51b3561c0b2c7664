// Package easylocal is a Go framework for building local-search
// meta-heuristic solvers for combinatorial optimization problems.
//
// A client defines a problem by implementing a handful of small
// interfaces (model.State, model.Move, model.StateManager,
// neighborhood.Explorer) over their own Input/State/Move types. The
// framework supplies the rest: move selection (package neighborhood),
// multi-modal neighborhood composition (package multimodal), large
// perturbation moves built from chained small ones (package kicker),
// the iterative search loop with seven acceptance/exploration
// strategies (package runner), and complete solving procedures that
// compose runners and kickers (package solver).
//
// Package toyproblem is a small worked example (f(x) = Σ(xᵢ-i)²) used
// throughout the test suites; it is the client code the rest of the
// framework is agnostic to, made concrete.
//
// Grounded on github.com/katalvlaran/lvlath's package layout and on
// the original EasyLocal++ C++ framework's
// include/easylocal/helpers and include/easylocal/runners headers.
package easylocal
