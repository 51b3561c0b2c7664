// parallel.go implements the optional data-parallel selectors described in
// §5/§6: ParallelSelectBest fans work out across goroutines behind a
// mutex-protected best-move cell; ParallelSelectFirst additionally supports
// cooperative cancellation via an atomic "found" flag observed by all
// workers. Both require Explorer and its DeltaCostComponents to be pure
// functions of (Input, State, Move) — the caller's responsibility, not
// something this package can check.
//
// Grounded on lvlath/core's sync.RWMutex-guarded Graph: the same plain-stdlib
// concurrency idiom (no worker-pool library), applied here to neighborhood
// scanning instead of graph mutation.
package neighborhood

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// partition splits moves into at most workers roughly-equal, order-preserving
// chunks (round-robin assignment keeps chunks balanced when moves are cheap
// to evaluate but of uneven cost).
func partition[M any](moves []M, workers int) [][]M {
	if len(moves) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(moves) {
		workers = len(moves)
	}
	chunks := make([][]M, workers)
	var i int
	var mv M
	for i, mv = range moves {
		chunks[i%workers] = append(chunks[i%workers], mv)
	}
	return chunks
}

// ParallelSelectBest evaluates every move in the neighborhood concurrently
// across workers goroutines (workers <= 0 picks runtime.GOMAXPROCS(0)) and
// returns the best acceptable move found. Ordering among equally-acceptable
// moves is not guaranteed (§5): the uniform tie-breaking rule of SelectBest
// is approximated, not reproduced exactly.
func ParallelSelectBest[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF], workers int,
) (model.EvaluatedMove[M, CF], error) {
	moves, err := EnumerateAll[I, S, M, CF](ex, in, st)
	if err != nil {
		return model.EmptyEvaluatedMove[M, CF](), err
	}
	if len(moves) == 0 {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}

	var (
		mu       sync.Mutex
		best     model.EvaluatedMove[M, CF]
		haveBest bool
		wg       sync.WaitGroup
	)
	for _, chunk := range partition(moves, workers) {
		wg.Add(1)
		go func(chunk []M) {
			defer wg.Done()
			var mv M
			for _, mv = range chunk {
				if !feasible[I, S, M, CF](ex, in, st, mv) {
					continue
				}
				cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
				if !accept(mv, cost) {
					continue
				}
				mu.Lock()
				if !haveBest || cost.Total < best.Cost.Total {
					best = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
					haveBest = true
				}
				mu.Unlock()
			}
		}(chunk)
	}
	wg.Wait()

	if !haveBest {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}
	return best, nil
}

// ParallelSelectFirst evaluates moves concurrently across workers goroutines,
// stopping as soon as any worker finds an acceptable move. Workers check a
// shared atomic.Bool before evaluating each candidate so stragglers abandon
// work promptly once a result is found.
func ParallelSelectFirst[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, hardWeight CF, accept Acceptor[M, CF], workers int,
) (model.EvaluatedMove[M, CF], error) {
	moves, err := EnumerateAll[I, S, M, CF](ex, in, st)
	if err != nil {
		return model.EmptyEvaluatedMove[M, CF](), err
	}
	if len(moves) == 0 {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}

	var (
		found  atomic.Bool
		mu     sync.Mutex
		result model.EvaluatedMove[M, CF]
		wg     sync.WaitGroup
	)
	for _, chunk := range partition(moves, workers) {
		wg.Add(1)
		go func(chunk []M) {
			defer wg.Done()
			var mv M
			for _, mv = range chunk {
				if found.Load() {
					return
				}
				if !feasible[I, S, M, CF](ex, in, st, mv) {
					continue
				}
				cost := DeltaCostFunctionComponents[I, S, M, CF](ex, in, st, mv, hardWeight)
				if !accept(mv, cost) {
					continue
				}
				if found.CompareAndSwap(false, true) {
					mu.Lock()
					result = model.EvaluatedMove[M, CF]{Move: mv, Cost: cost, IsValid: true}
					mu.Unlock()
				}
				return
			}
		}(chunk)
	}
	wg.Wait()

	if !found.Load() {
		return model.EmptyEvaluatedMove[M, CF](), nil
	}
	return result, nil
}
