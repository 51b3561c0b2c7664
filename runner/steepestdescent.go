package runner

import (
	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// SteepestDescent scans the whole neighborhood every iteration and takes the
// most improving move (§4.6's "steepest descent"). Like FirstDescent, it
// terminates via the shared loop's !mv.IsValid break at a local optimum.
type SteepestDescent[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
	RNG        *xrand.Source // tie-break source; nil selects a fixed default stream.
}

func (d *SteepestDescent[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error { return nil }

func (d *SteepestDescent[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	return neighborhood.SelectBest[I, S, M, CF](r.Ex, r.Input, r.CurrentState, d.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool { return cost.Total < zero }, d.RNG)
}

func (d *SteepestDescent[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool { return false }

func (d *SteepestDescent[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {}
