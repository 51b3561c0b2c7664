package solver

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/kicker"
	"github.com/elgo/easylocal/model"
)

// VariableNeighborhoodDescent grows the kick length k on a non-improving
// step and resets to 1 on an improving one, stopping once k exceeds MaxK or
// the StateManager's lower bound is certified. Grounded on
// VariableNeighborhoodDescent::Go.
type VariableNeighborhoodDescent[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	Input      I
	SM         model.StateManager[I, S, CF]
	Kicker     *kicker.Kicker[I, S, M, CF]
	HardWeight CF
	MaxK       int
}

// Solve finds a random initial state and runs the VND descent from it.
func (vnd *VariableNeighborhoodDescent[I, S, M, CF]) Solve(ctx context.Context) (S, model.CostStructure[CF], error) {
	var zero S
	if vnd.Kicker == nil {
		return zero, model.CostStructure[CF]{}, fmt.Errorf("%w: variable neighborhood descent requires a kicker", model.ErrParameterNotSet)
	}
	if vnd.MaxK <= 0 {
		return zero, model.CostStructure[CF]{}, fmt.Errorf("%w: max_k must be positive, got %d", model.ErrIncorrectParameterValue, vnd.MaxK)
	}

	st, err := vnd.SM.RandomState(vnd.Input)
	if err != nil {
		return zero, model.CostStructure[CF]{}, err
	}
	cost := vnd.SM.CostFunction(vnd.Input, st)

	k := 1
	for k <= vnd.MaxK && !vnd.SM.LowerBoundReached(cost) {
		select {
		case <-ctx.Done():
			return st, cost, nil
		default:
		}
		kk, kickCost, err := vnd.Kicker.SelectFirstImprovingKick(vnd.Input, st, k, vnd.HardWeight)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				k++
				continue
			}
			return zero, model.CostStructure[CF]{}, err
		}
		next, err := vnd.Kicker.MakeKick(st, kk)
		if err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		st = next
		cost = cost.Add(kickCost)
		k = 1
	}
	return st, cost, nil
}
