package neighborhood

import (
	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// Explorer is the client extension point for a single neighborhood (§4.2 and
// §6). A compound (multi-modal) neighborhood wraps a slice of Explorers and
// implements this interface itself; see package multimodal.
type Explorer[I any, S model.State[S], M model.Move[M], CF constraints.Integer] interface {
	// RandomMove returns a uniformly-representative random move. Returns an
	// error wrapping model.ErrEmptyNeighborhood if the neighborhood is empty.
	RandomMove(in I, st S) (M, error)
	// FirstMove returns the first move under a fixed total ordering of the
	// neighborhood. Returns an error wrapping model.ErrEmptyNeighborhood if
	// the neighborhood is empty.
	FirstMove(in I, st S) (M, error)
	// NextMove advances mv in place to the next move in that ordering.
	// Returns false when mv was already the last move.
	NextMove(in I, st S, mv *M) bool
	// MakeMove applies mv to st and returns the resulting state. Idempotence
	// is not required; implementations are free to mutate st in place and
	// return it, or to return a freshly cloned successor.
	MakeMove(in I, st S, mv M) S
	// Modality returns 1 for a base Explorer; multimodal composers override
	// this to report the number of base neighborhoods they wrap.
	Modality() int
	// DeltaCostComponents returns the DeltaCostComponents registered for this
	// Explorer (§4.1); registration happens once, at Explorer construction.
	DeltaCostComponents() []model.DeltaCostComponent[I, S, M, CF]
}

// FeasibilityChecker is an optional Explorer capability letting the client
// reject some moves that FirstMove/NextMove/RandomMove would otherwise
// produce (§4.2: "feasible_move, default true"). Explorers that don't
// implement it are treated as accepting every generated move.
type FeasibilityChecker[I any, S any, M any] interface {
	FeasibleMove(in I, st S, mv M) bool
}

// feasible probes ex for FeasibilityChecker, defaulting to true.
func feasible[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, mv M,
) bool {
	if fc, ok := ex.(FeasibilityChecker[I, S, M]); ok {
		return fc.FeasibleMove(in, st, mv)
	}
	return true
}

// Acceptor decides whether a candidate move, given its delta-cost, should be
// taken by a selection algorithm. Every SelectXxx/RandomXxx function in this
// package is parameterised by one.
type Acceptor[M any, CF constraints.Integer] func(mv M, cost model.CostStructure[CF]) bool

// AlwaysAccept is the trivial Acceptor used by callers that only care about
// enumerating the neighborhood (e.g. SelectFirst or SelectBest with every
// generated move acceptable).
func AlwaysAccept[M any, CF constraints.Integer](M, model.CostStructure[CF]) bool { return true }
