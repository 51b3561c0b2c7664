package neighborhood_test

// lineInput/lineState/lineMove is a minimal one-dimensional test fixture: a
// state is an int position on [0, width), a move is a signed step, and the
// single registered cost component penalizes distance from a fixed target.
// Kept deliberately tiny so neighborhood tests exercise the package's
// mechanics (delta composition, selection, parallel fan-out) rather than a
// realistic solver.

import (
	"fmt"

	"github.com/elgo/easylocal/model"
)

type lineInput struct {
	width  int
	target int
}

type lineState int

func (s lineState) Clone() lineState { return s }

type lineMove int

func (m lineMove) Clone() lineMove { return m }

func (m lineMove) Less(o lineMove) bool { return m < o }

func (m lineMove) String() string { return fmt.Sprintf("step(%d)", int(m)) }

// distanceComponent is a soft CostComponent computing |state - target|.
type distanceComponent struct{}

func (distanceComponent) ComputeCost(in lineInput, st lineState) int {
	d := int(st) - in.target
	if d < 0 {
		d = -d
	}
	return d
}

func (distanceComponent) Weight() int { return 1 }

func (distanceComponent) IsHard() bool { return false }

// lineExplorer offers moves {-1, +1} at every state, clamped to stay within
// [0, width).
type lineExplorer struct {
	comps []model.DeltaCostComponent[lineInput, lineState, lineMove, int]
}

func newLineExplorer() *lineExplorer {
	return &lineExplorer{
		comps: []model.DeltaCostComponent[lineInput, lineState, lineMove, int]{
			model.AdapterDeltaCostComponent[lineInput, lineState, lineMove, int]{Comp: distanceComponent{}},
		},
	}
}

func (e *lineExplorer) RandomMove(in lineInput, st lineState) (lineMove, error) {
	moves := e.feasibleMoves(in, st)
	if len(moves) == 0 {
		return 0, model.ErrEmptyNeighborhood
	}
	return moves[0], nil
}

func (e *lineExplorer) FirstMove(in lineInput, st lineState) (lineMove, error) {
	moves := e.feasibleMoves(in, st)
	if len(moves) == 0 {
		return 0, model.ErrEmptyNeighborhood
	}
	return moves[0], nil
}

func (e *lineExplorer) NextMove(in lineInput, st lineState, mv *lineMove) bool {
	moves := e.feasibleMoves(in, st)
	var i int
	for i = 0; i < len(moves); i++ {
		if moves[i] == *mv && i+1 < len(moves) {
			*mv = moves[i+1]
			return true
		}
	}
	return false
}

func (e *lineExplorer) MakeMove(in lineInput, st lineState, mv lineMove) lineState {
	return lineState(int(st) + int(mv))
}

func (e *lineExplorer) Modality() int { return 1 }

func (e *lineExplorer) DeltaCostComponents() []model.DeltaCostComponent[lineInput, lineState, lineMove, int] {
	return e.comps
}

func (e *lineExplorer) feasibleMoves(in lineInput, st lineState) []lineMove {
	var moves []lineMove
	if int(st) > 0 {
		moves = append(moves, -1)
	}
	if int(st) < in.width-1 {
		moves = append(moves, 1)
	}
	return moves
}
