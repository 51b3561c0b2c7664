package toyproblem

import (
	"fmt"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/xrand"
)

// N is the tuple length and Domain the number of values (0..Domain-1) each
// coordinate may take, per §8's "x ∈ {0,...,9}⁴".
const (
	N      = 4
	Domain = 10
)

// Input carries nothing: N, Domain, and the i-th target value (== i) are
// compile-time constants of this fixture.
type Input struct{}

// State is a length-N tuple of coordinate values. Value semantics (an array,
// not a slice) make Clone a plain copy.
type State [N]int

func (s State) Clone() State { return s }

// Move changes coordinate Pos to Value (Value must differ from the
// coordinate's current value for the move to be generated by Explorer).
type Move struct {
	Pos   int
	Value int
}

func (m Move) Clone() Move { return m }

func (m Move) Less(o Move) bool {
	if m.Pos != o.Pos {
		return m.Pos < o.Pos
	}
	return m.Value < o.Value
}

func (m Move) String() string { return fmt.Sprintf("set(x%d=%d)", m.Pos, m.Value) }

// squareDistance is the single registered CostComponent: Σ(xᵢ-i)².
type squareDistance struct{}

func (squareDistance) ComputeCost(in Input, st State) int {
	total := 0
	var i int
	for i = 0; i < N; i++ {
		d := st[i] - i
		total += d * d
	}
	return total
}

func (squareDistance) Weight() int  { return 1 }
func (squareDistance) IsHard() bool { return false }

// deltaSquareDistance is the implemented (incremental) DeltaCostComponent
// companion of squareDistance: only the changed coordinate's contribution
// needs recomputing.
type deltaSquareDistance struct {
	comp model.CostComponent[Input, State, int]
}

func (d deltaSquareDistance) Component() model.CostComponent[Input, State, int] { return d.comp }

func (d deltaSquareDistance) DeltaCost(in Input, st State, mv Move) int {
	before := st[mv.Pos] - mv.Pos
	after := mv.Value - mv.Pos
	return after*after - before*before
}

// StateManager implements model.StateManager by embedding
// model.BaseStateManager and supplying RandomState.
type StateManager struct {
	*model.BaseStateManager[Input, State, int]
	rng *xrand.Source
}

// NewStateManager returns a StateManager with squareDistance registered.
// rng may be nil, in which case a fixed default stream is used.
func NewStateManager(rng *xrand.Source) *StateManager {
	base := model.NewBaseStateManager[Input, State, int](model.DefaultHardWeight)
	base.Register(squareDistance{})
	if rng == nil {
		rng = xrand.New(0)
	}
	return &StateManager{BaseStateManager: base, rng: rng}
}

func (sm *StateManager) RandomState(in Input) (State, error) {
	var st State
	var i int
	for i = 0; i < N; i++ {
		st[i] = sm.rng.UniformInt(0, Domain)
	}
	return st, nil
}

// Explorer implements neighborhood.Explorer over the one-position-change
// neighborhood: (N)*(Domain-1) moves per state, generated in (Pos, Value)
// lexicographic order with Value != current skipped.
type Explorer struct {
	comps []model.DeltaCostComponent[Input, State, Move, int]
	rng   *xrand.Source
}

// NewExplorer returns an Explorer sharing sm's registered CostComponent
// (so the incremental delta and the full CostFunction agree on weight/index).
func NewExplorer(sm *StateManager, rng *xrand.Source) *Explorer {
	if rng == nil {
		rng = xrand.New(0)
	}
	return &Explorer{
		comps: []model.DeltaCostComponent[Input, State, Move, int]{
			deltaSquareDistance{comp: sm.CostComponents()[0]},
		},
		rng: rng,
	}
}

func firstAlternative(st State, pos int) (int, bool) {
	var v int
	for v = 0; v < Domain; v++ {
		if v != st[pos] {
			return v, true
		}
	}
	return 0, false
}

func nextAlternative(st State, pos, value int) (int, bool) {
	var v int
	for v = value + 1; v < Domain; v++ {
		if v != st[pos] {
			return v, true
		}
	}
	return 0, false
}

func (e *Explorer) FirstMove(in Input, st State) (Move, error) {
	var pos int
	for pos = 0; pos < N; pos++ {
		if v, ok := firstAlternative(st, pos); ok {
			return Move{Pos: pos, Value: v}, nil
		}
	}
	return Move{}, model.ErrEmptyNeighborhood
}

func (e *Explorer) NextMove(in Input, st State, mv *Move) bool {
	if v, ok := nextAlternative(st, mv.Pos, mv.Value); ok {
		mv.Value = v
		return true
	}
	var pos int
	for pos = mv.Pos + 1; pos < N; pos++ {
		if v, ok := firstAlternative(st, pos); ok {
			mv.Pos, mv.Value = pos, v
			return true
		}
	}
	return false
}

func (e *Explorer) RandomMove(in Input, st State) (Move, error) {
	pos := e.rng.UniformInt(0, N)
	value := e.rng.UniformInt(0, Domain-1)
	if value >= st[pos] {
		value++
	}
	return Move{Pos: pos, Value: value}, nil
}

func (e *Explorer) MakeMove(in Input, st State, mv Move) State {
	next := st
	next[mv.Pos] = mv.Value
	return next
}

func (e *Explorer) Modality() int { return 1 }

func (e *Explorer) DeltaCostComponents() []model.DeltaCostComponent[Input, State, Move, int] {
	return e.comps
}
