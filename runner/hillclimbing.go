package runner

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// HillClimbing samples the neighborhood at random (via the Explorer's own
// RandomMove) and accepts the first move that is not worsening (cost <= 0).
// Stops once idle for MaxIdleIterations iterations, or after MaxEvaluations
// delta-cost evaluations, whichever comes first (§4.6). As with every
// runner, the run also ends when the lower bound is reached or when an
// iteration's Samples draws contain no acceptable move.
type HillClimbing[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF

	// Samples is the number of random moves drawn per iteration. The original
	// hardcodes this to 10 with a standing TODO to make it configurable; here
	// it is a first-class parameter, validated to be positive in Init.
	Samples int
	// MaxIdleIterations stops the run once Iteration-IterationOfBest reaches
	// this many iterations without improvement. 0 disables the check.
	MaxIdleIterations uint64
	// MaxEvaluations stops the run once r.Evaluations reaches this value.
	// 0 disables the check.
	MaxEvaluations uint64
}

func (h *HillClimbing[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error {
	if h.Samples <= 0 {
		return fmt.Errorf("%w: hill climbing samples must be positive, got %d", model.ErrIncorrectParameterValue, h.Samples)
	}
	if h.MaxIdleIterations == 0 && h.MaxEvaluations == 0 {
		return fmt.Errorf("%w: hill climbing requires max_idle_iterations or max_evaluations", model.ErrParameterNotSet)
	}
	return nil
}

func (h *HillClimbing[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	mv, sampled, err := randomFirstCounted[I, S, M, CF](r.Ex, r.Input, r.CurrentState, h.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool { return cost.Total <= zero }, h.Samples)
	r.Evaluations += uint64(sampled)
	return mv, err
}

func (h *HillClimbing[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool {
	if r.MaxIdleIterationsExpired(h.MaxIdleIterations) {
		return true
	}
	return h.MaxEvaluations > 0 && r.Evaluations >= h.MaxEvaluations
}

func (h *HillClimbing[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {}
