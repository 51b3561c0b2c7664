package runner

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// LateAcceptanceHillClimbing generalizes HillClimbing by comparing a
// candidate move's cost against the best cost seen `Steps` iterations ago
// instead of against the current cost alone, smoothing the acceptance
// threshold over a short history window (§4.6). Grounded directly on
// original_source/include/easylocal/runners/lateacceptancehillclimbing.hh.
type LateAcceptanceHillClimbing[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
	Samples    int
	// Steps is the history length L. Default to 10 if left at 0, matching the
	// original's documented default.
	Steps             uint32
	MaxIdleIterations uint64
	MaxEvaluations    uint64

	history []CF
}

func (l *LateAcceptanceHillClimbing[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error {
	if l.Samples <= 0 {
		return fmt.Errorf("%w: late acceptance hill climbing samples must be positive, got %d", model.ErrIncorrectParameterValue, l.Samples)
	}
	if l.Steps == 0 {
		l.Steps = 10
	}
	if l.MaxIdleIterations == 0 && l.MaxEvaluations == 0 {
		return fmt.Errorf("%w: late acceptance hill climbing requires max_idle_iterations or max_evaluations", model.ErrParameterNotSet)
	}
	// The history is seeded uniformly with the initial cost (the original's
	// InitializeRun: std::fill(previous_steps.begin(), previous_steps.end(),
	// this->current_state_cost)).
	l.history = make([]CF, l.Steps)
	var i uint32
	for i = 0; i < l.Steps; i++ {
		l.history[i] = r.CurrentCost.Total
	}
	return nil
}

func (l *LateAcceptanceHillClimbing[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	slot := l.history[r.Iteration%uint64(l.Steps)]
	prevStepDelta := slot - r.CurrentCost.Total
	mv, sampled, err := randomFirstCounted[I, S, M, CF](r.Ex, r.Input, r.CurrentState, l.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool {
			return cost.Total <= zero || cost.Total <= prevStepDelta
		}, l.Samples)
	r.Evaluations += uint64(sampled)
	return mv, err
}

func (l *LateAcceptanceHillClimbing[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool {
	if r.MaxIdleIterationsExpired(l.MaxIdleIterations) {
		return true
	}
	return l.MaxEvaluations > 0 && r.Evaluations >= l.MaxEvaluations
}

// CompleteIteration writes the current BEST cost (not the current cost) back
// into the history slot for this iteration. Confirmed literal from
// lateacceptancehillclimbing.hh: "previous_steps[iteration % steps] =
// this->best_state_cost;" — resolving an otherwise ambiguous reading of the
// "write best back" rule.
func (l *LateAcceptanceHillClimbing[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {
	l.history[r.Iteration%uint64(l.Steps)] = r.BestCost.Total
}
