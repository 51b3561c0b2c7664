package solver

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/kicker"
	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/runner"
)

// KickStrategy selects how IteratedLocalSearch perturbs a stuck run.
// Grounded on GeneralizedLocalSearchSolver's KickStrategy enum.
type KickStrategy int

const (
	// NoKicker disables perturbation: the solver stops as soon as the
	// attached Runner stops improving.
	NoKicker KickStrategy = iota
	// Diversifier applies one random kick regardless of whether it improves
	// the current state (GeneralSolve's DIVERSIFIER case, p_kicker->RandomKick).
	Diversifier
	// Intensifier applies the single best kick found by exhaustive
	// enumeration (GeneralSolve's INTENSIFIER case, p_kicker->SelectKick).
	Intensifier
	// IntensifierRun repeatedly applies the first improving kick until none
	// is found (GeneralSolve's INTENSIFIER_RUN case, PerformKickRun).
	IntensifierRun
)

// IteratedLocalSearch alternates a Runner (local search to a local optimum)
// with a Kicker (perturbation), continuing until max idle rounds or max
// rounds is reached, the StateManager's lower bound is certified, or ctx is
// cancelled. Grounded on
// GeneralizedLocalSearchSolver::GeneralSolve/PerformKickRun.
type IteratedLocalSearch[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	Runner     *runner.Runner[I, S, M, CF]
	Kicker     *kicker.Kicker[I, S, M, CF]
	HardWeight CF

	Strategy   KickStrategy
	KickLength int

	// KickRate is how many idle rounds must elapse between kick attempts;
	// the original hardcodes this to 4, here it is configurable and defaults
	// to 4 when left zero.
	KickRate uint32
	// MaxIdleRounds and MaxRounds bound the run the way max_idle_rounds and
	// max_rounds do in the original (defaults 1 and 100 respectively).
	MaxIdleRounds uint32
	MaxRounds     uint32
}

func (ils *IteratedLocalSearch[I, S, M, CF]) validate() error {
	if ils.Strategy != NoKicker && ils.Kicker == nil {
		return fmt.Errorf("%w: iterated local search requires a kicker for strategy %d", model.ErrParameterNotSet, ils.Strategy)
	}
	if ils.Strategy != NoKicker && ils.KickLength <= 0 {
		return fmt.Errorf("%w: kick_length must be positive, got %d", model.ErrIncorrectParameterValue, ils.KickLength)
	}
	if ils.KickRate == 0 {
		ils.KickRate = 4
	}
	if ils.MaxIdleRounds == 0 {
		ils.MaxIdleRounds = 1
	}
	if ils.MaxRounds == 0 {
		ils.MaxRounds = 100
	}
	return nil
}

// Solve runs the iterated local search procedure and returns the best state
// found.
func (ils *IteratedLocalSearch[I, S, M, CF]) Solve(ctx context.Context) (S, model.CostStructure[CF], error) {
	var zero S
	if err := ils.validate(); err != nil {
		return zero, model.CostStructure[CF]{}, err
	}

	ils.Runner.InitialState = nil
	if err := ils.Runner.Go(ctx); err != nil {
		return zero, model.CostStructure[CF]{}, err
	}
	bestState := ils.Runner.BestState.Clone()
	bestCost := ils.Runner.BestCost
	curState := ils.Runner.BestState.Clone()
	curCost := ils.Runner.BestCost
	if ils.Runner.SM.LowerBoundReached(bestCost) {
		return bestState, bestCost, nil
	}

	var idleRounds, rounds uint32
	for idleRounds < ils.MaxIdleRounds && rounds < ils.MaxRounds {
		select {
		case <-ctx.Done():
			return bestState, bestCost, nil
		default:
		}

		improved := false
		ils.Runner.InitialState = &curState
		if err := ils.Runner.Go(ctx); err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		curState = ils.Runner.BestState.Clone()
		curCost = ils.Runner.BestCost
		if curCost.IsBetterThan(bestCost) {
			improved = true
			bestState = curState.Clone()
			bestCost = curCost
			if ils.Runner.SM.LowerBoundReached(bestCost) {
				return bestState, bestCost, nil
			}
		}

		rounds++
		if improved {
			idleRounds = 0
			continue
		}
		idleRounds++
		if ils.Strategy == NoKicker || idleRounds%ils.KickRate != 0 {
			continue
		}

		kicked, kickedCost, err := ils.kick(ils.Runner.Input, curState)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				continue
			}
			return zero, model.CostStructure[CF]{}, err
		}
		curState = kicked
		curCost = curCost.Add(kickedCost)
		if curCost.IsBetterThan(bestCost) {
			bestState = curState.Clone()
			bestCost = curCost
			idleRounds = 0
			if ils.Runner.SM.LowerBoundReached(bestCost) {
				return bestState, bestCost, nil
			}
		}
	}
	return bestState, bestCost, nil
}

// kick applies one perturbation according to ils.Strategy and returns the
// post-kick state plus the delta-cost it introduced.
func (ils *IteratedLocalSearch[I, S, M, CF]) kick(in I, st S) (S, model.CostStructure[CF], error) {
	var zero S
	switch ils.Strategy {
	case Diversifier:
		k, err := ils.Kicker.SampleKick(in, st, ils.KickLength)
		if err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		cost := ils.Kicker.EvaluateKick(in, st, k, ils.HardWeight)
		next, err := ils.Kicker.MakeKick(st, k)
		if err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		return next, cost, nil
	case Intensifier:
		k, cost, err := ils.Kicker.SelectBestKick(in, st, ils.KickLength, ils.HardWeight)
		if err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		next, err := ils.Kicker.MakeKick(st, k)
		if err != nil {
			return zero, model.CostStructure[CF]{}, err
		}
		return next, cost, nil
	case IntensifierRun:
		return ils.kickRun(in, st)
	default:
		return st, model.CostStructure[CF]{}, nil
	}
}

// kickRun repeatedly applies the first improving kick until none remains,
// mirroring PerformKickRun.
func (ils *IteratedLocalSearch[I, S, M, CF]) kickRun(in I, st S) (S, model.CostStructure[CF], error) {
	total := model.NewCostStructure[CF](len(ils.Runner.Ex.DeltaCostComponents()))
	for {
		k, cost, err := ils.Kicker.SelectFirstImprovingKick(in, st, ils.KickLength, ils.HardWeight)
		if err != nil {
			if errors.Is(err, model.ErrEmptyNeighborhood) {
				return st, total, nil
			}
			return st, model.CostStructure[CF]{}, err
		}
		next, err := ils.Kicker.MakeKick(st, k)
		if err != nil {
			return st, model.CostStructure[CF]{}, err
		}
		st = next
		total = total.Add(cost)
	}
}
