package runner

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
)

// randomFirstCounted draws up to maxSamples random moves, returning the first
// acceptable one and the number of moves actually drawn (which may be less
// than maxSamples). Grounded on AbstractSimulatedAnnealing::SelectMove and
// HillClimbing::SelectMove, both of which thread a by-reference "sampled"
// counter through RandomFirst rather than always charging the full budget.
func randomFirstCounted[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex neighborhood.Explorer[I, S, M, CF], in I, st S, hardWeight CF,
	accept neighborhood.Acceptor[M, CF], maxSamples int,
) (model.EvaluatedMove[M, CF], int, error) {
	var i int
	for i = 0; i < maxSamples; i++ {
		mv, err := ex.RandomMove(in, st)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				return model.EmptyEvaluatedMove[M, CF](), i, nil
			}
			return model.EmptyEvaluatedMove[M, CF](), i, err
		}
		cost := neighborhood.DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
		if accept(mv, cost) {
			return model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}, i + 1, nil
		}
	}
	return model.EmptyEvaluatedMove[M, CF](), maxSamples, nil
}
