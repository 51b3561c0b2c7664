package runner

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
)

// Phase is the Runner's lifecycle state (§4.5): Idle -> Initializing ->
// Looping -> Terminating -> Idle. Only Idle->Initializing is externally
// triggered (by Go); the rest are internal and deterministic.
type Phase int

const (
	Idle Phase = iota
	Initializing
	Looping
	Terminating
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Initializing:
		return "initializing"
	case Looping:
		return "looping"
	case Terminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Strategy is a concrete runner's selection policy: how to pick the next
// move, when to stop, and what per-iteration bookkeeping to perform beyond
// the shared loop (LAHC history, SA temperature decay, tabu-list expiry...).
type Strategy[I any, S model.State[S], M model.Move[M], CF constraints.Integer] interface {
	// Init validates parameters and prepares strategy-local state. Should
	// return an error wrapping model.ErrParameterNotSet /
	// model.ErrIncorrectParameterValue on invalid configuration.
	Init(r *Runner[I, S, M, CF]) error
	// SelectMove implements the strategy-specific selection rule.
	SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error)
	// StopCriterion reports whether the run should stop, independent of
	// max-iterations and the StateManager's lower-bound check.
	StopCriterion(r *Runner[I, S, M, CF]) bool
	// CompleteIteration runs after UpdateBestState on every accepted move.
	CompleteIteration(r *Runner[I, S, M, CF])
}

// Runner drives the shared select/accept/make/bookkeeping loop (§4.5) over a
// StateManager and a NeighborhoodExplorer, under a pluggable Strategy.
type Runner[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	Name     string
	Input    I
	SM       model.StateManager[I, S, CF]
	Ex       neighborhood.Explorer[I, S, M, CF]
	Strategy Strategy[I, S, M, CF]
	Logger   *log.Logger

	// MaxIterations bounds the run; 0 means unbounded (the StopCriterion /
	// lower-bound / context cancellation must end it instead).
	MaxIterations uint64

	// InitialState, when non-nil, seeds the run's starting state instead of
	// calling SM.RandomState — used by the solver package to hand a state off
	// between successive runner invocations (token-ring, iterated local
	// search) without discarding progress on each restart.
	InitialState *S

	CurrentState    S
	BestState       S
	CurrentCost     model.CostStructure[CF]
	BestCost        model.CostStructure[CF]
	Iteration       uint64
	IterationOfBest uint64
	CurrentMove     model.EvaluatedMove[M, CF]
	Evaluations     uint64

	phase   Phase
	running bool
	mu      sync.Mutex
}

// Phase returns the Runner's current lifecycle phase.
func (r *Runner[I, S, M, CF]) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Runner[I, S, M, CF]) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// Go runs initialize_run -> loop -> terminate_run to completion or until ctx
// is cancelled. The Runner enforces at-most-one-concurrent execution over
// its own state (§4.5): a second concurrent Go call returns
// model.ErrLogicViolation immediately.
func (r *Runner[I, S, M, CF]) Go(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("%w: runner %q is already executing", model.ErrLogicViolation, r.Name)
	}
	r.running = true
	r.phase = Initializing
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.phase = Idle
		r.mu.Unlock()
	}()

	if err := r.initializeRun(); err != nil {
		return err
	}

	r.mu.Lock()
	r.phase = Looping
	r.mu.Unlock()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}
		if r.maxIterationsExpired() || r.Strategy.StopCriterion(r) || r.SM.LowerBoundReached(r.CurrentCost) {
			break loop
		}
		r.Iteration++
		mv, err := r.Strategy.SelectMove(r)
		if err != nil {
			return err
		}
		r.CurrentMove = mv
		if !mv.IsValid {
			break loop
		}
		r.makeMove()
		r.updateBestState()
		r.Strategy.CompleteIteration(r)
	}

	r.mu.Lock()
	r.phase = Terminating
	r.mu.Unlock()
	r.logf("runner %s: terminated at iteration %d, best cost %s", r.Name, r.Iteration, r.BestCost.String())
	return nil
}

func (r *Runner[I, S, M, CF]) initializeRun() error {
	var st S
	if r.InitialState != nil {
		st = (*r.InitialState).Clone()
	} else {
		var err error
		st, err = r.SM.RandomState(r.Input)
		if err != nil {
			return err
		}
	}
	r.CurrentState = st
	r.CurrentCost = r.SM.CostFunction(r.Input, r.CurrentState)
	r.BestState = r.CurrentState.Clone()
	r.BestCost = r.CurrentCost
	r.Iteration = 0
	r.IterationOfBest = 0
	r.Evaluations = 0
	r.logf("runner %s: run initialized, initial cost %s", r.Name, r.CurrentCost.String())
	return r.Strategy.Init(r)
}

func (r *Runner[I, S, M, CF]) maxIterationsExpired() bool {
	return r.MaxIterations > 0 && r.Iteration >= r.MaxIterations
}

// makeMove applies CurrentMove and folds its delta into CurrentCost.
func (r *Runner[I, S, M, CF]) makeMove() {
	r.CurrentState = r.Ex.MakeMove(r.Input, r.CurrentState, r.CurrentMove.Move)
	r.CurrentCost = r.CurrentCost.Add(r.CurrentMove.Cost)
	r.logf("runner %s: iteration %d, move %s, move cost %s, current cost %s",
		r.Name, r.Iteration, r.CurrentMove.Move.String(), r.CurrentMove.Cost.String(), r.CurrentCost.String())
}

// updateBestState promotes current into best iff (hard, total) lexicographic
// decreased (§3, §8 invariant 5). Runs immediately after MakeMove, before
// CompleteIteration — the first of the two documented open-question
// decisions (see DESIGN.md).
func (r *Runner[I, S, M, CF]) updateBestState() {
	if r.CurrentCost.IsBetterThan(r.BestCost) {
		r.BestState = r.CurrentState.Clone()
		r.BestCost = r.CurrentCost
		r.IterationOfBest = r.Iteration
		r.logf("runner %s: new best cost %s at iteration %d", r.Name, r.BestCost.String(), r.Iteration)
	}
}

// MaxIdleIterationsExpired implements the shared "iteration - iteration_of_best
// >= maxIdle" check used by hill-climbing, LAHC, and tabu search.
func (r *Runner[I, S, M, CF]) MaxIdleIterationsExpired(maxIdle uint64) bool {
	return maxIdle > 0 && r.Iteration-r.IterationOfBest >= maxIdle
}
