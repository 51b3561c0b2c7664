package solver

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/runner"
)

// TokenRing cycles a fixed sequence of Runners over a single shared state,
// passing the winner of each step to the next, until a full round produces no
// improvement for MaxIdleRounds consecutive rounds. Grounded on
// TokenRingSolver::Run.
type TokenRing[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	Runners []*runner.Runner[I, S, M, CF]

	// StartRunner is the index Solve begins (and each round restarts) from.
	StartRunner int
	// MaxIdleRounds stops the ring after this many consecutive full rounds
	// without improvement. Defaults to 10 (the original's default) when left
	// zero.
	MaxIdleRounds uint32
}

func (tr *TokenRing[I, S, M, CF]) validate() error {
	if len(tr.Runners) == 0 {
		return fmt.Errorf("%w: token ring requires at least one runner", model.ErrParameterNotSet)
	}
	if tr.StartRunner < 0 || tr.StartRunner >= len(tr.Runners) {
		return fmt.Errorf("%w: start_runner %d out of range [0,%d)", model.ErrIncorrectParameterValue, tr.StartRunner, len(tr.Runners))
	}
	if tr.MaxIdleRounds == 0 {
		tr.MaxIdleRounds = 10
	}
	return nil
}

// Solve runs the token-ring procedure and returns the best state found.
func (tr *TokenRing[I, S, M, CF]) Solve(ctx context.Context) (S, model.CostStructure[CF], error) {
	var zero S
	if err := tr.validate(); err != nil {
		return zero, model.CostStructure[CF]{}, err
	}

	n := len(tr.Runners)
	i := tr.StartRunner

	// Seeded directly from the starting runner's StateManager, the way
	// TokenRingSolver::Run seeds internal_state/cost before its do-while loop
	// — the starting runner's Go is only invoked once the loop begins.
	state, err := tr.Runners[i].SM.RandomState(tr.Runners[i].Input)
	if err != nil {
		return zero, model.CostStructure[CF]{}, err
	}
	cost := tr.Runners[i].SM.CostFunction(tr.Runners[i].Input, state)

	var idleRounds uint32
	for idleRounds < tr.MaxIdleRounds {
		improved := false
		start := i
		for {
			select {
			case <-ctx.Done():
				return state, cost, nil
			default:
			}
			tr.Runners[i].InitialState = &state
			if err := tr.Runners[i].Go(ctx); err != nil {
				return zero, model.CostStructure[CF]{}, err
			}
			if tr.Runners[i].BestCost.IsBetterThan(cost) {
				state = tr.Runners[i].BestState.Clone()
				cost = tr.Runners[i].BestCost
				improved = true
			}
			if n == 1 || tr.Runners[i].SM.LowerBoundReached(cost) {
				return state, cost, nil
			}
			i = (i + 1) % n
			if i == start {
				break
			}
		}
		if improved {
			idleRounds = 0
		} else {
			idleRounds++
		}
	}
	return state, cost, nil
}
