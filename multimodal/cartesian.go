// cartesian.go implements the Cartesian-product composition of §4.3: a
// compound move has all components active, and a chain of moves must each
// be related to the previous one via a client-supplied predicate. Uses
// depth-first enumeration with backtracking over a chain of intermediate
// States.
package multimodal

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// Related decides whether mv (at level i) may follow prev (at level i-1).
// The zero value (nil) is treated as "always related" by CartesianExplorer.
type Related[M any] func(prev, mv M) bool

// CartesianExplorer composes n base Explorers, all active in every compound
// move, chained by a Related predicate per adjacent pair of levels.
type CartesianExplorer[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	bases   []neighborhood.Explorer[I, S, M, CF]
	related Related[M]
	rng     *xrand.Source
	comps   []model.DeltaCostComponent[I, S, CompoundMove[M], CF]
}

// NewCartesianProduct builds a CartesianExplorer over bases. related == nil
// means "always related" (§4.3 default).
func NewCartesianProduct[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	bases []neighborhood.Explorer[I, S, M, CF], related Related[M], rng *xrand.Source,
) (*CartesianExplorer[I, S, M, CF], error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: CartesianProduct requires at least one base explorer", model.ErrIncorrectParameterValue)
	}
	if len(bases) > MaxArity {
		return nil, fmt.Errorf("%w: CartesianProduct got %d base explorers, MaxArity is %d", model.ErrIncorrectParameterValue, len(bases), MaxArity)
	}
	if related == nil {
		related = func(M, M) bool { return true }
	}
	if rng == nil {
		rng = xrand.New(0)
	}
	e := &CartesianExplorer[I, S, M, CF]{bases: bases, related: related, rng: rng}
	var level int
	var base neighborhood.Explorer[I, S, M, CF]
	for level, base = range bases {
		var dc model.DeltaCostComponent[I, S, M, CF]
		for _, dc = range base.DeltaCostComponents() {
			e.comps = append(e.comps, cartesianDeltaComponent[I, S, M, CF]{level: level, bases: bases, comp: dc})
		}
	}
	return e, nil
}

// chain replays levels [0, upTo) of mv against st, returning the
// intermediate state reached just before level upTo.
func (e *CartesianExplorer[I, S, M, CF]) chain(in I, st S, mv CompoundMove[M], upTo int) S {
	cur := st
	var i int
	for i = 0; i < upTo; i++ {
		cur = e.bases[i].MakeMove(in, cur, mv.Get(i))
	}
	return cur
}

// advance finds, starting at level from, a move related to prevMv (ignored
// at level 0) that lets every subsequent level also find a related move; on
// success it writes the whole suffix into mv and returns true. On failure it
// leaves mv's suffix from `from` onward undefined and returns false, letting
// the caller backtrack to from-1.
func (e *CartesianExplorer[I, S, M, CF]) advance(in I, st S, mv *CompoundMove[M], from int, hasPrev bool, prev M) bool {
	if from == len(e.bases) {
		return true
	}
	cur := e.chain(in, st, *mv, from)
	candidate, err := e.bases[from].FirstMove(in, cur)
	for {
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				return false
			}
			return false
		}
		if !hasPrev || e.related(prev, candidate) {
			mv.Set(from, candidate)
			if e.advance(in, st, mv, from+1, true, candidate) {
				return true
			}
		}
		if !e.bases[from].NextMove(in, cur, &candidate) {
			return false
		}
	}
}

// FirstMove builds the leftmost fully-related chain via depth-first search.
func (e *CartesianExplorer[I, S, M, CF]) FirstMove(in I, st S) (CompoundMove[M], error) {
	out := NewCompoundMove[M](len(e.bases))
	var zero M
	if !e.advance(in, st, &out, 0, false, zero) {
		return CompoundMove[M]{}, model.ErrEmptyNeighborhood
	}
	return out, nil
}

// RandomMove samples each level via RandomMove, with the same cyclic
// exhaustion guard SampleKick uses (kicker/kicker.go): remember the first
// move sampled at a level, and on an unrelated draw cycle NextMove/
// FirstMove until that first move recurs before declaring the level
// genuinely exhausted and backtracking to advance the previous level
// (§4.3's forced-backtrack guard). A fixed retry cap would instead risk
// declaring a non-empty but sparsely-related neighborhood exhausted.
func (e *CartesianExplorer[I, S, M, CF]) RandomMove(in I, st S) (CompoundMove[M], error) {
	out := NewCompoundMove[M](len(e.bases))
	initial := make([]M, len(e.bases))
	level := 0
	backtracking := false
	for level < len(e.bases) {
		if level < 0 {
			return CompoundMove[M]{}, model.ErrEmptyNeighborhood
		}
		cur := e.chain(in, st, out, level)
		var mv M
		var err error
		if !backtracking {
			mv, err = e.bases[level].RandomMove(in, cur)
			if err != nil {
				if !errors.Is(err, model.ErrEmptyNeighborhood) {
					return CompoundMove[M]{}, err
				}
				backtracking = true
				level--
				continue
			}
			initial[level] = mv
		} else {
			mv = out.Get(level)
			if !e.bases[level].NextMove(in, cur, &mv) {
				mv, err = e.bases[level].FirstMove(in, cur)
			}
			if err != nil || mv == initial[level] {
				level--
				continue
			}
		}
		exhausted := false
		for level > 0 && !e.related(out.Get(level-1), mv) {
			if !e.bases[level].NextMove(in, cur, &mv) {
				var err2 error
				mv, err2 = e.bases[level].FirstMove(in, cur)
				if err2 != nil {
					exhausted = true
					break
				}
			}
			if mv == initial[level] {
				exhausted = true
				break
			}
		}
		if exhausted {
			backtracking = true
			level--
			continue
		}
		backtracking = false
		out.Set(level, mv)
		level++
	}
	return out, nil
}

// NextMove advances the last level first; on exhaustion it backtracks level
// by level, re-running advance on the freed suffix, exactly as FirstMove's
// depth-first search does.
func (e *CartesianExplorer[I, S, M, CF]) NextMove(in I, st S, mv *CompoundMove[M]) bool {
	var level int
	for level = len(e.bases) - 1; level >= 0; level-- {
		cur := e.chain(in, st, *mv, level)
		candidate := mv.Get(level)
		for e.bases[level].NextMove(in, cur, &candidate) {
			if level == 0 || e.related(mv.Get(level-1), candidate) {
				mv.Set(level, candidate)
				if e.advance(in, st, mv, level+1, true, candidate) {
					return true
				}
			}
		}
	}
	return false
}

// MakeMove applies every level's move in sequence.
func (e *CartesianExplorer[I, S, M, CF]) MakeMove(in I, st S, mv CompoundMove[M]) S {
	return e.chain(in, st, mv, len(e.bases))
}

// Modality returns the number of base neighborhoods composed.
func (e *CartesianExplorer[I, S, M, CF]) Modality() int { return len(e.bases) }

// DeltaCostComponents returns one wrapper per base component; each replays
// the prefix chain up to its own level before delegating (§4.3 point 5).
func (e *CartesianExplorer[I, S, M, CF]) DeltaCostComponents() []model.DeltaCostComponent[I, S, CompoundMove[M], CF] {
	return e.comps
}

type cartesianDeltaComponent[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	level int
	bases []neighborhood.Explorer[I, S, M, CF]
	comp  model.DeltaCostComponent[I, S, M, CF]
}

func (c cartesianDeltaComponent[I, S, M, CF]) Component() model.CostComponent[I, S, CF] {
	return c.comp.Component()
}

// DeltaCost implements model.ImplementedDeltaCostComponent.
func (c cartesianDeltaComponent[I, S, M, CF]) DeltaCost(in I, st S, mv CompoundMove[M]) CF {
	cur := st
	var i int
	for i = 0; i < c.level; i++ {
		cur = c.bases[i].MakeMove(in, cur, mv.Get(i))
	}
	inner := mv.Get(c.level)
	if impl, ok := c.comp.(model.ImplementedDeltaCostComponent[I, S, M, CF]); ok {
		return impl.DeltaCost(in, cur, inner)
	}
	cc := c.comp.Component()
	successor := c.bases[c.level].MakeMove(in, cur.Clone(), inner)
	return cc.ComputeCost(in, successor) - cc.ComputeCost(in, cur)
}
