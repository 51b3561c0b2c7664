package model

import "golang.org/x/exp/constraints"

// EvaluatedMove carries a Move and, once computed, its delta-cost.
// IsValid == false means "cost not yet computed for this move", and is also
// used by selection algorithms and the Runner as the "no move found"
// sentinel result, instead of a separate Option type.
//
// Invariant: if IsValid, Cost equals the delta-cost of Move applied to the
// state in which it was generated.
type EvaluatedMove[M any, CF constraints.Integer] struct {
	Move    M
	Cost    CostStructure[CF]
	IsValid bool
}

// EmptyEvaluatedMove returns the "no move found" sentinel result used by
// SelectFirst/SelectBest/RandomFirst/RandomBest when no acceptable move
// exists.
func EmptyEvaluatedMove[M any, CF constraints.Integer]() EvaluatedMove[M, CF] {
	return EvaluatedMove[M, CF]{}
}

// ActiveMove pairs an M with an "is this component exercising a move now"
// flag. Used only inside multi-modal neighborhoods (§3).
type ActiveMove[M any] struct {
	Move   M
	Active bool
}

// KickStep is one position of a Kick: the move chosen there and the
// intermediate State produced by applying it.
type KickStep[S any, M any, CF constraints.Integer] struct {
	Move  EvaluatedMove[M, CF]
	State S
}

// Kick is a length-k sequence of KickSteps (§3).
type Kick[S any, M any, CF constraints.Integer] []KickStep[S, M, CF]

// TotalCost sums the per-step deltas of a Kick.
func (k Kick[S, M, CF]) TotalCost() CostStructure[CF] {
	if len(k) == 0 {
		return CostStructure[CF]{}
	}
	total := k[0].Move.Cost
	var i int
	for i = 1; i < len(k); i++ {
		total = total.Add(k[i].Move.Cost)
	}
	return total
}

// FinalState returns the last intermediate state of the kick, i.e. the
// post-kick state (§4.4: MakeKick sets st = kick[k-1].state).
func (k Kick[S, M, CF]) FinalState() (S, bool) {
	var zero S
	if len(k) == 0 {
		return zero, false
	}
	return k[len(k)-1].State, true
}

// TabuEntry is a tabu-list entry: a Move and the iteration at which it
// expires (tenure < current_iteration).
type TabuEntry[M any] struct {
	Move   M
	Tenure uint64
}
