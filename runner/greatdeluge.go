package runner

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// GreatDeluge samples random moves and accepts any whose resulting total cost
// does not rise above a water Level, which itself decays by LevelRate every
// NeighborsSampled iterations. The run stops once Level drops below
// MinLevel*BestCost (§4.6). Grounded on
// original_source/include/easylocal/runners/greatdeluge.hh.
type GreatDeluge[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
	Samples    int

	InitialLevel     float64
	MinLevel         float64
	LevelRate        float64
	NeighborsSampled uint64

	level float64
}

func (g *GreatDeluge[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error {
	if g.Samples <= 0 {
		return fmt.Errorf("%w: great deluge samples must be positive, got %d", model.ErrIncorrectParameterValue, g.Samples)
	}
	if g.NeighborsSampled == 0 {
		return fmt.Errorf("%w: neighbors_sampled must be set", model.ErrParameterNotSet)
	}
	if g.LevelRate <= 0.0 || g.LevelRate >= 1.0 {
		return fmt.Errorf("%w: level_rate must be in (0, 1), got %v", model.ErrIncorrectParameterValue, g.LevelRate)
	}
	g.level = g.InitialLevel * float64(r.CurrentCost.Total)
	return nil
}

func (g *GreatDeluge[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	curCost := float64(r.CurrentCost.Total)
	l := g.level
	mv, sampled, err := randomFirstCounted[I, S, M, CF](r.Ex, r.Input, r.CurrentState, g.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool {
			return cost.Total < zero || float64(cost.Total) <= l-curCost
		}, g.Samples)
	r.Evaluations += uint64(sampled)
	return mv, err
}

func (g *GreatDeluge[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool {
	return g.level < g.MinLevel*float64(r.BestCost.Total)
}

func (g *GreatDeluge[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {
	if r.Iteration%g.NeighborsSampled == 0 {
		g.level *= g.LevelRate
	}
}
