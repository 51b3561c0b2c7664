package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/elgo/easylocal/model"
)

type CostStructureSuite struct {
	suite.Suite
}

func TestCostStructureSuite(t *testing.T) {
	suite.Run(t, new(CostStructureSuite))
}

// TestAggregateCoherence covers invariant 2: total == HardWeight*hard + soft.
func (s *CostStructureSuite) TestAggregateCoherence() {
	cs := model.NewCostStructure[int](3)
	cs.Components[0] = 5
	cs.Components[1] = 2
	cs.Components[2] = 100
	cs.Hard = cs.Components[0] + cs.Components[1]
	cs.Soft = cs.Components[2]
	cs.Recompute(1000)

	require.Equal(s.T(), 1000*7+100, cs.Total)
}

func (s *CostStructureSuite) TestAddPreservesInvariant() {
	a := model.NewCostStructure[int](1)
	a.Hard, a.Soft = 1, 2
	a.Recompute(1000)
	b := model.NewCostStructure[int](1)
	b.Hard, b.Soft = 3, 4
	b.Recompute(1000)

	sum := a.Add(b)
	require.Equal(s.T(), sum.Total, 1000*sum.Hard+sum.Soft)
	require.Equal(s.T(), 4, sum.Hard)
	require.Equal(s.T(), 6, sum.Soft)
}

func (s *CostStructureSuite) TestIsBetterThanLexicographic() {
	better := model.CostStructure[int]{Hard: 0, Total: 10}
	worse := model.CostStructure[int]{Hard: 1, Total: 0}
	require.True(s.T(), better.IsBetterThan(worse))
	require.False(s.T(), worse.IsBetterThan(better))

	sameHard1 := model.CostStructure[int]{Hard: 0, Total: 5}
	sameHard2 := model.CostStructure[int]{Hard: 0, Total: 10}
	require.True(s.T(), sameHard1.IsBetterThan(sameHard2))
}

func (s *CostStructureSuite) TestHardInfMarksNoValidResult() {
	inf := model.InfiniteCostStructure[int](2)
	require.True(s.T(), model.IsHardInf(inf.Total))
	require.True(s.T(), model.IsHardInf(inf.Hard))
}
