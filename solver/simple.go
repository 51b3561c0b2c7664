package solver

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/runner"
)

// Simple runs a single Runner to completion and reports its best state.
// Grounded on GeneralizedLocalSearchSolver::SimpleSolve, the "one runner, no
// kicker" case.
type Simple[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	Runner *runner.Runner[I, S, M, CF]
}

// Solve finds a fresh random initial state and runs the Runner once.
func (s *Simple[I, S, M, CF]) Solve(ctx context.Context) (S, model.CostStructure[CF], error) {
	s.Runner.InitialState = nil
	if err := s.Runner.Go(ctx); err != nil {
		var zero S
		return zero, model.CostStructure[CF]{}, err
	}
	return s.Runner.BestState, s.Runner.BestCost, nil
}

// MultiTrialSolve runs n independent trials, each from a fresh random initial
// state, and keeps the best result across all of them. Grounded on
// AbstractSolver::MultiTrialSolve.
func (s *Simple[I, S, M, CF]) MultiTrialSolve(ctx context.Context, n int) (S, model.CostStructure[CF], error) {
	var best S
	var bestCost model.CostStructure[CF]
	haveBest := false
	var i int
	for i = 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return best, bestCost, nil
		default:
		}
		s.Runner.InitialState = nil
		if err := s.Runner.Go(ctx); err != nil {
			var zero S
			return zero, model.CostStructure[CF]{}, err
		}
		if !haveBest || s.Runner.BestCost.IsBetterThan(bestCost) {
			best = s.Runner.BestState.Clone()
			bestCost = s.Runner.BestCost
			haveBest = true
		}
	}
	return best, bestCost, nil
}
