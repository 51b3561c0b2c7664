package runner

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// Inverse decides whether tabuMove forbids candidate under the tabu-list
// prohibition rule. nil defaults to SameMoveAsInverse (§6's default
// ProhibitionManager).
type Inverse[M any] func(tabuMove, candidate M) bool

// SameMoveAsInverse is the default Inverse: a move is its own inverse.
func SameMoveAsInverse[M comparable](tabuMove, candidate M) bool { return tabuMove == candidate }

// TabuSearch always takes the best non-prohibited move in the neighborhood,
// where "prohibited" means some live tabu entry's move is the candidate's
// inverse and the candidate's cost does not satisfy the aspiration criterion
// (cost < best-current). Grounded on
// original_source/include/easylocal/runners/tabusearch.hh.
type TabuSearch[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
	RNG        *xrand.Source
	Inverse    Inverse[M] // nil defaults to SameMoveAsInverse.

	MaxIdleIterations uint64
	MinTenure         uint64
	MaxTenure         uint64

	list tabuList[M]
}

func (t *TabuSearch[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error {
	if t.MinTenure == 0 || t.MaxTenure == 0 {
		return fmt.Errorf("%w: min_tenure and max_tenure must be set", model.ErrParameterNotSet)
	}
	if t.MinTenure > t.MaxTenure {
		return fmt.Errorf("%w: min_tenure (%d) must not exceed max_tenure (%d)", model.ErrIncorrectParameterValue, t.MinTenure, t.MaxTenure)
	}
	if t.MaxIdleIterations == 0 {
		return fmt.Errorf("%w: max_idle_iterations must be set", model.ErrParameterNotSet)
	}
	if t.Inverse == nil {
		t.Inverse = func(a, b M) bool { return a == b }
	}
	if t.RNG == nil {
		t.RNG = xrand.New(0)
	}
	t.list.clear()
	return nil
}

func (t *TabuSearch[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	aspiration := r.BestCost.Total - r.CurrentCost.Total
	entries := t.list.entries()
	return neighborhood.SelectBest[I, S, M, CF](r.Ex, r.Input, r.CurrentState, t.HardWeight,
		func(mv M, cost model.CostStructure[CF]) bool {
			var e model.TabuEntry[M]
			for _, e = range entries {
				if t.Inverse(e.Move, mv) && cost.Total >= aspiration {
					return false
				}
			}
			return true
		}, t.RNG)
}

func (t *TabuSearch[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool {
	return r.MaxIdleIterationsExpired(t.MaxIdleIterations)
}

// CompleteIteration evicts expired tabu entries and records the move just
// made, with a tenure drawn uniformly from [MinTenure, MaxTenure].
func (t *TabuSearch[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {
	t.list.expire(r.Iteration)
	span := int(t.MaxTenure - t.MinTenure + 1)
	tenure := t.MinTenure + uint64(t.RNG.UniformInt(0, span))
	t.list.insert(r.CurrentMove.Move, r.Iteration+tenure)
}
