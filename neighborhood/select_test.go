package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

type SelectSuite struct {
	suite.Suite
	in lineInput
	ex *lineExplorer
}

func TestSelectSuite(t *testing.T) {
	suite.Run(t, new(SelectSuite))
}

func (s *SelectSuite) SetupTest() {
	s.in = lineInput{width: 10, target: 7}
	s.ex = newLineExplorer()
}

// TestEnumerationCompleteness covers invariant 3: enumeration visits every
// move the neighborhood can generate, exactly once, regardless of entry
// point.
func (s *SelectSuite) TestEnumerationCompleteness() {
	moves, err := neighborhood.EnumerateAll[lineInput, lineState, lineMove, int](s.ex, s.in, lineState(5))
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []lineMove{-1, 1}, moves)

	moves, err = neighborhood.EnumerateAll[lineInput, lineState, lineMove, int](s.ex, s.in, lineState(0))
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []lineMove{1}, moves)
}

// TestDeltaConsistency covers invariant 1: the composite delta-cost of a
// move equals CostFunction(successor) - CostFunction(st).
func (s *SelectSuite) TestDeltaConsistency() {
	st := lineState(5)
	reg := model.NewRegistry[lineInput, lineState, int](1000)
	reg.Register(distanceComponent{})

	before := reg.CostFunction(s.in, st)
	mv := lineMove(1)
	after := reg.CostFunction(s.in, s.ex.MakeMove(s.in, st, mv))
	want := after.Sub(before)

	got := neighborhood.DeltaCostFunctionComponents[lineInput, lineState, lineMove, int](s.ex, s.in, st, mv, 1000)
	require.Equal(s.T(), want.Total, got.Total)
}

// TestSelectFirstTakesFirstAcceptable asserts SelectFirst stops scanning as
// soon as accept holds, rather than continuing to find the best.
func (s *SelectSuite) TestSelectFirstTakesFirstAcceptable() {
	st := lineState(5)
	got, err := neighborhood.SelectFirst[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int])
	require.NoError(s.T(), err)
	require.True(s.T(), got.IsValid)
	require.Equal(s.T(), lineMove(-1), got.Move)
}

// TestSelectBestPicksMinimalCost asserts SelectBest always returns the move
// with minimal Total among acceptable moves.
func (s *SelectSuite) TestSelectBestPicksMinimalCost() {
	st := lineState(5)
	got, err := neighborhood.SelectBest[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], xrand.New(1))
	require.NoError(s.T(), err)
	require.True(s.T(), got.IsValid)
	require.Equal(s.T(), lineMove(1), got.Move)
}

// TestSelectBestDeterministicForFixedSeed covers invariant 7: the same seed
// reproduces the same tie-break decision across repeated calls.
func (s *SelectSuite) TestSelectBestDeterministicForFixedSeed() {
	st := lineState(7)
	a, err := neighborhood.SelectBest[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], xrand.New(42))
	require.NoError(s.T(), err)
	b, err := neighborhood.SelectBest[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], xrand.New(42))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Move, b.Move)
}

// TestNoAcceptableMoveYieldsInvalidResult covers the "no acceptable move"
// edge case at a boundary state with a single feasible move, filtered out by
// a never-accepting acceptor.
func (s *SelectSuite) TestNoAcceptableMoveYieldsInvalidResult() {
	st := lineState(0)
	never := func(lineMove, model.CostStructure[int]) bool { return false }
	got, err := neighborhood.SelectFirst[lineInput, lineState, lineMove, int](s.ex, s.in, st, 1000, never)
	require.NoError(s.T(), err)
	require.False(s.T(), got.IsValid)
}

// TestRandomFirstRespectsSampleBudget asserts RandomFirst gives up with an
// invalid result when none of its samples draws is acceptable.
func (s *SelectSuite) TestRandomFirstRespectsSampleBudget() {
	st := lineState(5)
	never := func(lineMove, model.CostStructure[int]) bool { return false }
	got, err := neighborhood.RandomFirst[lineInput, lineState, lineMove, int](s.ex, s.in, st, 1000, never, 3)
	require.NoError(s.T(), err)
	require.False(s.T(), got.IsValid)
}

func (s *SelectSuite) TestParallelSelectBestMatchesSequential() {
	st := lineState(5)
	seq, err := neighborhood.SelectBest[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], xrand.New(1))
	require.NoError(s.T(), err)

	par, err := neighborhood.ParallelSelectBest[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], 2)
	require.NoError(s.T(), err)
	require.True(s.T(), par.IsValid)
	require.Equal(s.T(), seq.Cost.Total, par.Cost.Total)
}

func (s *SelectSuite) TestParallelSelectFirstFindsAnAcceptableMove() {
	st := lineState(5)
	got, err := neighborhood.ParallelSelectFirst[lineInput, lineState, lineMove, int](
		s.ex, s.in, st, 1000, neighborhood.AlwaysAccept[lineMove, int], 2)
	require.NoError(s.T(), err)
	require.True(s.T(), got.IsValid)
}

func (s *SelectSuite) TestParallelSelectWithNoAcceptableMoveIsInvalid() {
	st := lineState(0)
	never := func(lineMove, model.CostStructure[int]) bool { return false }
	got, err := neighborhood.ParallelSelectBest[lineInput, lineState, lineMove, int](s.ex, s.in, st, 1000, never, 2)
	require.NoError(s.T(), err)
	require.False(s.T(), got.IsValid)
}
