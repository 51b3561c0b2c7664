package kicker

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// Related decides whether mv may follow prev in a kick chain. nil is treated
// as "always related" (§4.4 default, the source's AllMovesRelated).
type Related[M any] func(prev, mv M) bool

// Kicker generates length-k sequences of related moves over a single base
// neighborhood, for diversification/intensification (§4.4).
type Kicker[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	ex      neighborhood.Explorer[I, S, M, CF]
	related Related[M]
	rng     *xrand.Source
}

// New returns a Kicker over ex. related == nil means "always related". rng
// may be nil, in which case a fixed default stream is used.
func New[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex neighborhood.Explorer[I, S, M, CF], related Related[M], rng *xrand.Source,
) *Kicker[I, S, M, CF] {
	if related == nil {
		related = func(M, M) bool { return true }
	}
	if rng == nil {
		rng = xrand.New(0)
	}
	return &Kicker[I, S, M, CF]{ex: ex, related: related, rng: rng}
}

// Modality returns the modality of the wrapped neighborhood (not the kick
// length).
func (k *Kicker[I, S, M, CF]) Modality() int { return k.ex.Modality() }

func (k *Kicker[I, S, M, CF]) levelStart(st S, kick model.Kick[S, M, CF], level int) S {
	if level == 0 {
		return st
	}
	return kick[level-1].State
}

// FirstKick builds the leftmost length-`length` chain of related moves,
// backtracking across levels when a level's neighborhood is exhausted
// without finding a move related to the previous level's choice.
func (k *Kicker[I, S, M, CF]) FirstKick(in I, st S, length int) (model.Kick[S, M, CF], error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: kick length must be positive, got %d", model.ErrIncorrectParameterValue, length)
	}
	kick := make(model.Kick[S, M, CF], length)
	cur := 0
	backtracking := false
	for cur < length {
		if cur < 0 {
			return nil, model.ErrEmptyNeighborhood
		}
		levelState := k.levelStart(st, kick, cur)
		if !backtracking {
			mv, err := k.ex.FirstMove(in, levelState)
			if err != nil {
				if !errors.Is(err, model.ErrEmptyNeighborhood) {
					return nil, err
				}
				backtracking = true
				cur--
				continue
			}
			ok := true
			for cur > 0 && !k.related(kick[cur-1].Move.Move, mv) {
				if !k.ex.NextMove(in, levelState, &mv) {
					ok = false
					break
				}
			}
			if !ok {
				backtracking = true
				cur--
				continue
			}
			kick[cur] = model.KickStep[S, M, CF]{
				Move:  model.EvaluatedMove[M, CF]{Move: mv},
				State: k.ex.MakeMove(in, levelState, mv),
			}
			cur++
			continue
		}
		mv := kick[cur].Move.Move
		ok := true
		for {
			if !k.ex.NextMove(in, levelState, &mv) {
				ok = false
				break
			}
			if cur == 0 || k.related(kick[cur-1].Move.Move, mv) {
				break
			}
		}
		if !ok {
			cur--
			continue
		}
		backtracking = false
		kick[cur] = model.KickStep[S, M, CF]{
			Move:  model.EvaluatedMove[M, CF]{Move: mv},
			State: k.ex.MakeMove(in, levelState, mv),
		}
		cur++
	}
	return kick, nil
}

// NextKick advances kick in place (starting from its last level) to the next
// chain in the same depth-first order as FirstKick. Returns false when the
// enumeration is exhausted.
func (k *Kicker[I, S, M, CF]) NextKick(in I, st S, kick model.Kick[S, M, CF]) bool {
	length := len(kick)
	cur := length - 1
	backtracking := true
	for cur < length {
		if cur < 0 {
			return false
		}
		levelState := k.levelStart(st, kick, cur)
		if !backtracking {
			mv, err := k.ex.FirstMove(in, levelState)
			if err != nil {
				if !errors.Is(err, model.ErrEmptyNeighborhood) {
					return false
				}
				backtracking = true
				cur--
				continue
			}
			ok := true
			for cur > 0 && !k.related(kick[cur-1].Move.Move, mv) {
				if !k.ex.NextMove(in, levelState, &mv) {
					ok = false
					break
				}
			}
			if !ok {
				backtracking = true
				cur--
				continue
			}
			kick[cur] = model.KickStep[S, M, CF]{
				Move:  model.EvaluatedMove[M, CF]{Move: mv},
				State: k.ex.MakeMove(in, levelState, mv),
			}
			cur++
			continue
		}
		mv := kick[cur].Move.Move
		ok := true
		for {
			if !k.ex.NextMove(in, levelState, &mv) {
				ok = false
				break
			}
			if cur == 0 || k.related(kick[cur-1].Move.Move, mv) {
				break
			}
		}
		if !ok {
			cur--
			continue
		}
		backtracking = false
		kick[cur] = model.KickStep[S, M, CF]{
			Move:  model.EvaluatedMove[M, CF]{Move: mv},
			State: k.ex.MakeMove(in, levelState, mv),
		}
		cur++
	}
	return true
}

// SampleKick performs random-move sampling at every level, with cyclic
// exhaustion detection: a level cycles back through NextMove/FirstMove until
// it returns to its first sampled move, at which point that level is
// declared exhausted and the chain backtracks (§4.3's guard, reused here).
func (k *Kicker[I, S, M, CF]) SampleKick(in I, st S, length int) (model.Kick[S, M, CF], error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: kick length must be positive, got %d", model.ErrIncorrectParameterValue, length)
	}
	kick := make(model.Kick[S, M, CF], length)
	initial := make([]M, length)
	cur := 0
	backtracking := false
	for cur < length {
		if cur < 0 {
			return nil, model.ErrEmptyNeighborhood
		}
		levelState := k.levelStart(st, kick, cur)
		var mv M
		var err error
		if !backtracking {
			mv, err = k.ex.RandomMove(in, levelState)
			if err != nil {
				if !errors.Is(err, model.ErrEmptyNeighborhood) {
					return nil, err
				}
				backtracking = true
				cur--
				continue
			}
			initial[cur] = mv
		} else {
			mv = kick[cur].Move.Move
			if !k.ex.NextMove(in, levelState, &mv) {
				mv, err = k.ex.FirstMove(in, levelState)
			}
			if err != nil || mv == initial[cur] {
				cur--
				continue
			}
		}
		exhausted := false
		for cur > 0 && !k.related(kick[cur-1].Move.Move, mv) {
			if !k.ex.NextMove(in, levelState, &mv) {
				var err2 error
				mv, err2 = k.ex.FirstMove(in, levelState)
				if err2 != nil {
					exhausted = true
					break
				}
			}
			if mv == initial[cur] {
				exhausted = true
				break
			}
		}
		if exhausted {
			backtracking = true
			cur--
			continue
		}
		backtracking = false
		kick[cur] = model.KickStep[S, M, CF]{
			Move:  model.EvaluatedMove[M, CF]{Move: mv},
			State: k.ex.MakeMove(in, levelState, mv),
		}
		cur++
	}
	return kick, nil
}

// MakeKick returns the post-kick state: the last intermediate State of kick.
func (k *Kicker[I, S, M, CF]) MakeKick(st S, kick model.Kick[S, M, CF]) (S, error) {
	final, ok := kick.FinalState()
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: MakeKick on an empty kick", model.ErrLogicViolation)
	}
	return final, nil
}

// evaluate lazily fills every step's delta-cost against the state the move
// was generated from, and returns the chain's total cost.
func (k *Kicker[I, S, M, CF]) evaluate(in I, st S, kick model.Kick[S, M, CF], hardWeight CF) model.CostStructure[CF] {
	total := model.NewCostStructure[CF](len(k.ex.DeltaCostComponents()))
	var i int
	for i = 0; i < len(kick); i++ {
		if !kick[i].Move.IsValid {
			pre := k.levelStart(st, kick, i)
			kick[i].Move.Cost = neighborhood.DeltaCostFunctionComponents[I, S, M, CF](k.ex, in, pre, kick[i].Move.Move, hardWeight)
			kick[i].Move.IsValid = true
		}
		total = total.Add(kick[i].Move.Cost)
	}
	return total
}

// EvaluateKick computes the total delta-cost of a kick built by
// FirstKick/NextKick/SampleKick, filling in any steps not yet costed. Exposed
// for solvers (e.g. iterated local search's diversifier strategy) that build
// a kick themselves and need its cost before deciding whether to apply it.
func (k *Kicker[I, S, M, CF]) EvaluateKick(in I, st S, kick model.Kick[S, M, CF], hardWeight CF) model.CostStructure[CF] {
	return k.evaluate(in, st, kick, hardWeight)
}

// SelectBestKick exhaustively enumerates every length-`length` kick from st
// and returns the one with minimal total cost, breaking ties uniformly at
// random (the same 1/(1+ties) rule as neighborhood.SelectBest).
func (k *Kicker[I, S, M, CF]) SelectBestKick(in I, st S, length int, hardWeight CF) (model.Kick[S, M, CF], model.CostStructure[CF], error) {
	kick, err := k.FirstKick(in, st, length)
	if err != nil {
		return nil, model.CostStructure[CF]{}, err
	}
	var best model.Kick[S, M, CF]
	var bestCost model.CostStructure[CF]
	ties := 0
	for {
		cost := k.evaluate(in, st, kick, hardWeight)
		switch {
		case best == nil || cost.Total < bestCost.Total:
			best = append(model.Kick[S, M, CF]{}, kick...)
			bestCost = cost
			ties = 0
		case cost.Total == bestCost.Total:
			ties++
			if k.rng.UniformFloat(0, 1) < 1.0/float64(1+ties) {
				best = append(model.Kick[S, M, CF]{}, kick...)
			}
		}
		if !k.NextKick(in, st, kick) {
			break
		}
	}
	return best, bestCost, nil
}

// SelectFirstImprovingKick enumerates kicks in the same order as
// SelectBestKick but returns the first with a strictly negative total cost.
// If none improves, it returns the error model.ErrEmptyNeighborhood.
func (k *Kicker[I, S, M, CF]) SelectFirstImprovingKick(in I, st S, length int, hardWeight CF) (model.Kick[S, M, CF], model.CostStructure[CF], error) {
	var zero CF
	kick, err := k.FirstKick(in, st, length)
	if err != nil {
		return nil, model.CostStructure[CF]{}, err
	}
	for {
		cost := k.evaluate(in, st, kick, hardWeight)
		if cost.Total < zero {
			return kick, cost, nil
		}
		if !k.NextKick(in, st, kick) {
			break
		}
	}
	return nil, model.CostStructure[CF]{}, model.ErrEmptyNeighborhood
}
