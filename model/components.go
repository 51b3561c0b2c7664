// components.go defines the client extension points for per-dimension cost
// functions (CostComponent) and their incremental deltas (DeltaCostComponent),
// plus the registry that assigns each CostComponent a stable index.
package model

import "golang.org/x/exp/constraints"

// CostComponent is a single registered dimension of the cost function: full
// evaluation, a weight, and a hard/soft classification. Registered once in a
// StateManager (§4.1); its index is assigned at registration time.
type CostComponent[I any, S State[S], CF constraints.Integer] interface {
	// ComputeCost performs the full (non-incremental) evaluation of this
	// dimension against state st.
	ComputeCost(in I, st S) CF
	// Weight returns this component's weight w.
	Weight() CF
	// IsHard reports whether this component contributes to Hard (true) or
	// Soft (false).
	IsHard() bool
}

// ViolationPrinter is an optional CostComponent capability (§3: "optional
// helper print_violations").
type ViolationPrinter[I any, S any] interface {
	PrintViolations(in I, st S) string
}

// DeltaCostComponent is the companion of a CostComponent, registered in each
// NeighborhoodExplorer. It always knows which CostComponent it accompanies;
// an implementation additionally satisfying ImplementedDeltaCostComponent
// supplies an incremental delta directly, otherwise package neighborhood
// falls back to the implicit adapter (AdapterDeltaCostComponent) which
// recomputes the full cost before and after a single MakeMove.
//
// This is the two-variant "Implemented vs Implicit" enum from the original
// design (§9), resolved here via a type assertion at delta-computation time
// rather than RTTI.
type DeltaCostComponent[I any, S State[S], M Move[M], CF constraints.Integer] interface {
	// Component returns the CostComponent this delta accompanies.
	Component() CostComponent[I, S, CF]
}

// ImplementedDeltaCostComponent is a DeltaCostComponent that computes its
// delta incrementally, without constructing the successor state.
type ImplementedDeltaCostComponent[I any, S State[S], M Move[M], CF constraints.Integer] interface {
	DeltaCostComponent[I, S, M, CF]
	// DeltaCost returns CostFunction(MakeMove(st, mv)) - CostFunction(st) for
	// this dimension only, without actually constructing the successor state.
	DeltaCost(in I, st S, mv M) CF
}

// AdapterDeltaCostComponent wraps a CostComponent that has no incremental
// delta implementation. Package neighborhood detects values of this type (or
// any DeltaCostComponent failing the ImplementedDeltaCostComponent assertion)
// and batches at most one MakeMove per move evaluation to serve every such
// adapter, regardless of how many participate (§4.1).
type AdapterDeltaCostComponent[I any, S State[S], M Move[M], CF constraints.Integer] struct {
	Comp CostComponent[I, S, CF]
}

// Component implements DeltaCostComponent.
func (a AdapterDeltaCostComponent[I, S, M, CF]) Component() CostComponent[I, S, CF] {
	return a.Comp
}

// Registry assigns registration-order indices to CostComponents and tracks
// the companion HardWeight used to recompute Total. It is the concrete
// "registered once in the StateManager" bookkeeping referenced throughout
// §4; a StateManager embeds one via model.BaseStateManager.
type Registry[I any, S State[S], CF constraints.Integer] struct {
	components []CostComponent[I, S, CF]
	hardWeight CF
}

// DefaultHardWeight is used when a Registry is constructed without an
// explicit weight (the original source's process-wide HARD_WEIGHT constant,
// commonly 1000; here it is per-Registry configuration, see §9).
const DefaultHardWeight = 1000

// NewRegistry returns an empty Registry with the given HardWeight. Passing
// hardWeight <= 0 falls back to DefaultHardWeight.
func NewRegistry[I any, S State[S], CF constraints.Integer](hardWeight CF) *Registry[I, S, CF] {
	if hardWeight <= 0 {
		w := DefaultHardWeight
		hardWeight = CF(w)
	}
	return &Registry[I, S, CF]{hardWeight: hardWeight}
}

// HardWeight returns the registry's configured HARD_WEIGHT.
func (r *Registry[I, S, CF]) HardWeight() CF { return r.hardWeight }

// Register appends cc and returns its assigned index.
func (r *Registry[I, S, CF]) Register(cc CostComponent[I, S, CF]) int {
	r.components = append(r.components, cc)
	return len(r.components) - 1
}

// Components returns the registered components in registration order.
func (r *Registry[I, S, CF]) Components() []CostComponent[I, S, CF] {
	return r.components
}

// Len returns the number of registered components.
func (r *Registry[I, S, CF]) Len() int { return len(r.components) }

// CostFunction performs the full evaluation CostFunction(in, st): it calls
// ComputeCost on every registered component, partitions by IsHard, and
// restores the Total invariant.
//
// Complexity: O(k) component evaluations, each of whatever complexity the
// client's ComputeCost has.
func (r *Registry[I, S, CF]) CostFunction(in I, st S) CostStructure[CF] {
	cs := NewCostStructure[CF](len(r.components))
	var i int
	var cc CostComponent[I, S, CF]
	for i, cc = range r.components {
		v := cc.Weight() * cc.ComputeCost(in, st)
		cs.Components[i] = v
		if cc.IsHard() {
			cs.Hard += v
		} else {
			cs.Soft += v
		}
	}
	cs.Recompute(r.hardWeight)
	return cs
}
