package runner

import (
	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
)

// FirstDescent accepts the first strictly improving move it finds in the
// neighborhood, each iteration (§4.6's "first descent" concrete runner).
// Termination is entirely driven by the shared loop's !mv.IsValid break: once
// no improving move exists, SelectMove returns an empty move and Go stops.
type FirstDescent[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
}

func (f *FirstDescent[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error { return nil }

func (f *FirstDescent[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	return neighborhood.SelectFirst[I, S, M, CF](r.Ex, r.Input, r.CurrentState, f.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool { return cost.Total < zero })
}

func (f *FirstDescent[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool { return false }

func (f *FirstDescent[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {}
