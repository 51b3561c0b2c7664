// select.go implements the four selection algorithms of §4.2: SelectFirst,
// SelectBest, RandomFirst, RandomBest. All four treat an EmptyNeighborhood
// from FirstMove/RandomMove as an immediate "empty" return (a zero
// model.EvaluatedMove with IsValid == false, nil error).
package neighborhood

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/xrand"
)

// SelectFirst iterates FirstMove -> NextMove*, computing the delta-cost once
// per move, and returns the first move for which accept holds.
func SelectFirst[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF],
) (model.EvaluatedMove[M, CF], error) {
	mv, err := ex.FirstMove(in, st)
	if err != nil {
		if errors.Is(err, model.ErrEmptyNeighborhood) {
			return model.EmptyEvaluatedMove[M, CF](), nil
		}
		return model.EmptyEvaluatedMove[M, CF](), err
	}
	for {
		if feasible[I, S, M, CF](ex, in, st, mv) {
			cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
			if accept(mv, cost) {
				return model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}, nil
			}
		}
		if !ex.NextMove(in, st, &mv) {
			break
		}
	}
	return model.EmptyEvaluatedMove[M, CF](), nil
}

// SelectBest iterates the full neighborhood, tracking a running best under
// cost.Total < best.Total. On ties (cost.Total == best.Total), the current
// move replaces the running best with probability 1/(1+t), where t is the
// number of ties seen so far at this cost — a uniformly random pick among
// equi-best moves without materializing the tie set. rng may be nil, in
// which case each call starts a fresh default-seeded stream, so repeated
// calls on the same neighborhood break ties the same way.
func SelectBest[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF], rng *xrand.Source,
) (model.EvaluatedMove[M, CF], error) {
	mv, err := ex.FirstMove(in, st)
	if err != nil {
		if errors.Is(err, model.ErrEmptyNeighborhood) {
			return model.EmptyEvaluatedMove[M, CF](), nil
		}
		return model.EmptyEvaluatedMove[M, CF](), err
	}
	if rng == nil {
		rng = xrand.New(0)
	}

	var best model.EvaluatedMove[M, CF]
	haveBest := false
	ties := 0
	for {
		if feasible[I, S, M, CF](ex, in, st, mv) {
			cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
			if accept(mv, cost) {
				switch {
				case !haveBest || cost.Total < best.Cost.Total:
					best = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
					haveBest = true
					ties = 0
				case cost.Total == best.Cost.Total:
					ties++
					if rng.UniformFloat(0, 1) < 1.0/float64(1+ties) {
						best = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
					}
				}
			}
		}
		if !ex.NextMove(in, st, &mv) {
			break
		}
	}
	if !haveBest {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}
	return best, nil
}

// RandomFirst draws up to samples random moves via RandomMove, returning the
// first acceptable one it finds.
func RandomFirst[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF], samples int,
) (model.EvaluatedMove[M, CF], error) {
	var i int
	for i = 0; i < samples; i++ {
		mv, err := ex.RandomMove(in, st)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				return model.EmptyEvaluatedMove[M, CF](), nil
			}
			return model.EmptyEvaluatedMove[M, CF](), err
		}
		if !feasible[I, S, M, CF](ex, in, st, mv) {
			continue
		}
		cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
		if accept(mv, cost) {
			return model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}, nil
		}
	}
	return model.EmptyEvaluatedMove[M, CF](), nil
}

// RandomBest draws exactly samples random moves and applies SelectBest's
// running-best + uniform-tie rule over the acceptable ones.
func RandomBest[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF], samples int, rng *xrand.Source,
) (model.EvaluatedMove[M, CF], error) {
	if rng == nil {
		rng = xrand.New(0)
	}
	var best model.EvaluatedMove[M, CF]
	haveBest := false
	ties := 0
	var i int
	for i = 0; i < samples; i++ {
		mv, err := ex.RandomMove(in, st)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				return model.EmptyEvaluatedMove[M, CF](), nil
			}
			return model.EmptyEvaluatedMove[M, CF](), err
		}
		if !feasible[I, S, M, CF](ex, in, st, mv) {
			continue
		}
		cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
		if !accept(mv, cost) {
			continue
		}
		switch {
		case !haveBest || cost.Total < best.Cost.Total:
			best = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
			haveBest = true
			ties = 0
		case cost.Total == best.Cost.Total:
			ties++
			if rng.UniformFloat(0, 1) < 1.0/float64(1+ties) {
				best = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
			}
		}
	}
	if !haveBest {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}
	return best, nil
}

// EnumerateAll materializes every move in the neighborhood at st, in
// FirstMove/NextMove order. Used by the parallel selectors (which need
// random access into move batches) and by tests asserting enumeration
// completeness (§8 invariant 3).
func EnumerateAll[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S,
) ([]M, error) {
	mv, err := ex.FirstMove(in, st)
	if err != nil {
		if errors.Is(err, model.ErrEmptyNeighborhood) {
			return nil, nil
		}
		return nil, err
	}
	moves := []M{mv}
	for ex.NextMove(in, st, &mv) {
		moves = append(moves, mv)
	}
	return moves, nil
}
