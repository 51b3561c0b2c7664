// state_manager.go defines the StateManager client extension point (§6) and
// BaseStateManager, an embeddable helper that implements CostFunction and the
// default LowerBoundReached from a model.Registry, the way lvlath/tsp.Options
// centralizes policy knobs a dispatcher reads back.
package model

import "golang.org/x/exp/constraints"

// StateManager is the client extension point responsible for producing
// States and evaluating their full cost (§6). RandomState is the only
// required construction path; GreedyState and StateDistance are optional
// capabilities probed via the small interfaces below, following the same
// "ask, don't assume" idiom as io.ReaderAt alongside io.Reader.
type StateManager[I any, S State[S], CF constraints.Integer] interface {
	// RandomState returns a uniformly-representative random initial State.
	RandomState(in I) (S, error)
	// CostComponents returns the registered components in registration
	// order; CostFunction(in, st) must equal the sum of their weighted
	// contributions (see Registry.CostFunction).
	CostComponents() []CostComponent[I, S, CF]
	// CostFunction performs the full (non-incremental) cost evaluation.
	CostFunction(in I, st S) CostStructure[CF]
	// LowerBoundReached reports whether cost already certifies a global
	// optimum (default: Total == 0); Runners consult this each iteration.
	LowerBoundReached(cost CostStructure[CF]) bool
	// HardWeight returns the weight applied to Hard when recomputing Total.
	HardWeight() CF
}

// GreedyStateManager is an optional StateManager capability: a
// greedy-randomized construction heuristic parameterised by an RCL threshold
// alpha and a lookahead k.
type GreedyStateManager[I any, S State[S]] interface {
	GreedyState(in I, alpha float64, k int) (S, error)
}

// SampleStateManager is an optional StateManager capability producing n
// independent random states, used by multi-start solvers.
type SampleStateManager[I any, S State[S]] interface {
	SampleStates(in I, n int) ([]S, error)
}

// StateDistancer is an optional StateManager capability used by observers and
// diversity-aware solvers to measure how far apart two states are.
type StateDistancer[S any] interface {
	StateDistance(a, b S) (uint32, error)
}

// BaseStateManager is an embeddable helper implementing CostComponents,
// CostFunction, LowerBoundReached, and HardWeight from a model.Registry.
// Client StateManagers embed *BaseStateManager and only need to implement
// RandomState (and, optionally, GreedyState/StateDistance) themselves.
type BaseStateManager[I any, S State[S], CF constraints.Integer] struct {
	Registry *Registry[I, S, CF]
}

// NewBaseStateManager returns a BaseStateManager backed by a fresh Registry
// with the given HardWeight (<=0 falls back to DefaultHardWeight).
func NewBaseStateManager[I any, S State[S], CF constraints.Integer](hardWeight CF) *BaseStateManager[I, S, CF] {
	return &BaseStateManager[I, S, CF]{Registry: NewRegistry[I, S, CF](hardWeight)}
}

// Register adds cc to the underlying registry and returns its index.
func (b *BaseStateManager[I, S, CF]) Register(cc CostComponent[I, S, CF]) int {
	return b.Registry.Register(cc)
}

// CostComponents implements StateManager.
func (b *BaseStateManager[I, S, CF]) CostComponents() []CostComponent[I, S, CF] {
	return b.Registry.Components()
}

// CostFunction implements StateManager.
func (b *BaseStateManager[I, S, CF]) CostFunction(in I, st S) CostStructure[CF] {
	return b.Registry.CostFunction(in, st)
}

// LowerBoundReached implements StateManager's default: total == 0.
func (b *BaseStateManager[I, S, CF]) LowerBoundReached(cost CostStructure[CF]) bool {
	return cost.Total == 0
}

// HardWeight implements StateManager.
func (b *BaseStateManager[I, S, CF]) HardWeight() CF {
	return b.Registry.HardWeight()
}
