// setunion.go implements the biased set-union composition of §4.3: a
// compound move has exactly one active component. random_move picks a
// component with probability proportional to a bias vector; first_move
// scans components in index order, skipping EmptyNeighborhood; next_move
// advances the active component, falling through to the next component's
// first_move on exhaustion.
package multimodal

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// SetUnionExplorer composes n base Explorers into one biased union
// neighborhood. It implements neighborhood.Explorer[I, S,
// CompoundMove[M], CF], so every SelectXxx function in package neighborhood
// works on it unchanged.
type SetUnionExplorer[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	bases []neighborhood.Explorer[I, S, M, CF]
	bias  []float64
	rng   *xrand.Source
	comps []model.DeltaCostComponent[I, S, CompoundMove[M], CF]
}

// NewSetUnion builds a SetUnionExplorer over bases. bias may be nil (uniform
// selection); if non-nil it must have the same length as bases. rng may be
// nil, in which case a fixed default stream is used.
func NewSetUnion[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	bases []neighborhood.Explorer[I, S, M, CF], bias []float64, rng *xrand.Source,
) (*SetUnionExplorer[I, S, M, CF], error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: SetUnion requires at least one base explorer", model.ErrIncorrectParameterValue)
	}
	if len(bases) > MaxArity {
		return nil, fmt.Errorf("%w: SetUnion got %d base explorers, MaxArity is %d", model.ErrIncorrectParameterValue, len(bases), MaxArity)
	}
	if bias != nil && len(bias) != len(bases) {
		return nil, fmt.Errorf("%w: bias length %d does not match %d base explorers", model.ErrIncorrectParameterValue, len(bias), len(bases))
	}
	if rng == nil {
		rng = xrand.New(0)
	}
	e := &SetUnionExplorer[I, S, M, CF]{bases: bases, bias: bias, rng: rng}
	var idx int
	var base neighborhood.Explorer[I, S, M, CF]
	for idx, base = range bases {
		var dc model.DeltaCostComponent[I, S, M, CF]
		for _, dc = range base.DeltaCostComponents() {
			e.comps = append(e.comps, unionDeltaComponent[I, S, M, CF]{idx: idx, base: base, comp: dc})
		}
	}
	return e, nil
}

func (e *SetUnionExplorer[I, S, M, CF]) weights() []float64 {
	if e.bias != nil {
		return e.bias
	}
	w := make([]float64, len(e.bases))
	var i int
	for i = range w {
		w[i] = 1
	}
	return w
}

// RandomMove picks a component per the bias vector, then delegates.
func (e *SetUnionExplorer[I, S, M, CF]) RandomMove(in I, st S) (CompoundMove[M], error) {
	idx := e.rng.WeightedIndex(e.weights())
	mv, err := e.bases[idx].RandomMove(in, st)
	if err != nil {
		return CompoundMove[M]{}, err
	}
	out := NewCompoundMove[M](len(e.bases))
	out.Set(idx, mv)
	return out, nil
}

// FirstMove tries components in index order, skipping any that report
// EmptyNeighborhood.
func (e *SetUnionExplorer[I, S, M, CF]) FirstMove(in I, st S) (CompoundMove[M], error) {
	var idx int
	var base neighborhood.Explorer[I, S, M, CF]
	for idx, base = range e.bases {
		mv, err := base.FirstMove(in, st)
		if err == nil {
			out := NewCompoundMove[M](len(e.bases))
			out.Set(idx, mv)
			return out, nil
		}
		if !errors.Is(err, model.ErrEmptyNeighborhood) {
			return CompoundMove[M]{}, err
		}
	}
	return CompoundMove[M]{}, model.ErrEmptyNeighborhood
}

// NextMove advances the active component; on its exhaustion, falls through
// to the next component's FirstMove, recursively skipping empty ones.
func (e *SetUnionExplorer[I, S, M, CF]) NextMove(in I, st S, mv *CompoundMove[M]) bool {
	active := e.activeIndex(*mv)
	if active < 0 {
		return false
	}
	inner := mv.Get(active)
	if e.bases[active].NextMove(in, st, &inner) {
		mv.Set(active, inner)
		return true
	}
	mv.Deactivate(active)

	var idx int
	for idx = active + 1; idx < len(e.bases); idx++ {
		first, err := e.bases[idx].FirstMove(in, st)
		if err == nil {
			mv.Set(idx, first)
			return true
		}
		if !errors.Is(err, model.ErrEmptyNeighborhood) {
			return false
		}
	}
	return false
}

// MakeMove delegates to the one active component.
func (e *SetUnionExplorer[I, S, M, CF]) MakeMove(in I, st S, mv CompoundMove[M]) S {
	idx := e.activeIndex(mv)
	return e.bases[idx].MakeMove(in, st, mv.Get(idx))
}

// Modality returns the number of base neighborhoods composed.
func (e *SetUnionExplorer[I, S, M, CF]) Modality() int { return len(e.bases) }

// DeltaCostComponents returns one active-gated wrapper per base component
// (§8 invariant 4: every compound move has exactly one active=true, so every
// wrapper but one contributes a zero delta).
func (e *SetUnionExplorer[I, S, M, CF]) DeltaCostComponents() []model.DeltaCostComponent[I, S, CompoundMove[M], CF] {
	return e.comps
}

func (e *SetUnionExplorer[I, S, M, CF]) activeIndex(mv CompoundMove[M]) int {
	var i int
	for i = 0; i < len(e.bases); i++ {
		if mv.IsActive(i) {
			return i
		}
	}
	return -1
}

// unionDeltaComponent gates a base component's delta to "zero unless its
// slot is the active one".
type unionDeltaComponent[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	idx  int
	base neighborhood.Explorer[I, S, M, CF]
	comp model.DeltaCostComponent[I, S, M, CF]
}

func (u unionDeltaComponent[I, S, M, CF]) Component() model.CostComponent[I, S, CF] {
	return u.comp.Component()
}

// DeltaCost implements model.ImplementedDeltaCostComponent.
func (u unionDeltaComponent[I, S, M, CF]) DeltaCost(in I, st S, mv CompoundMove[M]) CF {
	if !mv.IsActive(u.idx) {
		var zero CF
		return zero
	}
	inner := mv.Get(u.idx)
	if impl, ok := u.comp.(model.ImplementedDeltaCostComponent[I, S, M, CF]); ok {
		return impl.DeltaCost(in, st, inner)
	}
	cc := u.comp.Component()
	successor := u.base.MakeMove(in, st.Clone(), inner)
	return cc.ComputeCost(in, successor) - cc.ComputeCost(in, st)
}
