// Package model defines the shared vocabulary of the easylocal local-search
// framework: the State/Move client constraints, the hierarchical CostStructure,
// the CostComponent/DeltaCostComponent registration contract, and the
// StateManager extension point.
//
// model plays the same role for the rest of this module that lvlath/core
// plays for lvlath/matrix, lvlath/tsp, and friends: every other package
// (neighborhood, multimodal, kicker, runner, solver) imports model and builds
// on its generic types rather than redefining them.
//
// Nothing in model depends on a concrete problem. Client code supplies an
// Input type, a State implementation, a Move implementation, and registers
// CostComponent/DeltaCostComponent values; model only ever manipulates those
// through the interfaces declared here.
package model
