package runner

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"github.com/elgo/easylocal/model"
	"github.com/elgo/easylocal/neighborhood"
	"github.com/elgo/easylocal/xrand"
)

// startTemperatureSamples is the number of random-move delta-costs sampled to
// estimate a starting temperature, per [van Laarhoven and Aarts, 1987].
const startTemperatureSamples = 100

// SimulatedAnnealing accepts a randomly drawn move unconditionally when it
// improves, and a worsening move with probability exp(-cost/temperature).
// Temperature is cooled by CoolingRate every time MaxNeighborsSampled draws or
// MaxNeighborsAccepted acceptances have occurred since the last cooling step,
// whichever happens first (§4.6). Grounded on
// original_source/include/easylocal/runners/abstractsimulatedannealing.hh.
type SimulatedAnnealing[I any, S model.State[S], M model.Move[M], CF constraints.Integer] struct {
	HardWeight CF
	RNG        *xrand.Source // drives the acceptance draw; nil selects a fixed default stream.

	// ComputeStartTemperature, when true, estimates the starting temperature
	// from the variance of startTemperatureSamples random-move delta-costs
	// instead of using StartTemperature directly.
	ComputeStartTemperature bool
	StartTemperature        float64
	CoolingRate             float64 // must be in (0, 1).
	MaxNeighborsSampled     uint32
	// MaxNeighborsAccepted defaults to MaxNeighborsSampled when left at 0.
	MaxNeighborsAccepted uint32

	temperature       float64
	neighborsSampled  uint32
	neighborsAccepted uint32
}

func (a *SimulatedAnnealing[I, S, M, CF]) Init(r *Runner[I, S, M, CF]) error {
	if a.CoolingRate <= 0.0 || a.CoolingRate >= 1.0 {
		return fmt.Errorf("%w: cooling_rate must be in (0, 1), got %v", model.ErrIncorrectParameterValue, a.CoolingRate)
	}
	if a.MaxNeighborsSampled == 0 {
		return fmt.Errorf("%w: neighbors_sampled must be set", model.ErrParameterNotSet)
	}
	if a.RNG == nil {
		a.RNG = xrand.New(0)
	}
	if !a.ComputeStartTemperature {
		if a.StartTemperature <= 0.0 {
			return fmt.Errorf("%w: start_temperature must be greater than zero, got %v", model.ErrIncorrectParameterValue, a.StartTemperature)
		}
		a.temperature = a.StartTemperature
	} else {
		values := make([]float64, startTemperatureSamples)
		var i int
		for i = 0; i < startTemperatureSamples; i++ {
			mv, err := r.Ex.RandomMove(r.Input, r.CurrentState)
			if err != nil {
				return err
			}
			cost := neighborhood.DeltaCostFunctionComponents[I, S, M, CF](r.Ex, r.Input, r.CurrentState, mv, a.HardWeight)
			values[i] = float64(cost.Total)
		}
		_, variance := stat.MeanVariance(values, nil)
		a.temperature = variance
	}
	if a.MaxNeighborsAccepted == 0 {
		a.MaxNeighborsAccepted = a.MaxNeighborsSampled
	}
	a.neighborsSampled = 0
	a.neighborsAccepted = 0
	return nil
}

func (a *SimulatedAnnealing[I, S, M, CF]) SelectMove(r *Runner[I, S, M, CF]) (model.EvaluatedMove[M, CF], error) {
	var zero CF
	t := a.temperature
	budget := int(a.MaxNeighborsSampled) - int(a.neighborsSampled)
	if budget <= 0 {
		budget = 1
	}
	mv, sampled, err := randomFirstCounted[I, S, M, CF](r.Ex, r.Input, r.CurrentState, a.HardWeight,
		func(_ M, cost model.CostStructure[CF]) bool {
			u := a.RNG.Float01()
			return cost.Total <= zero || float64(cost.Total) < -t*math.Log(u)
		}, budget)
	a.neighborsSampled += uint32(sampled)
	r.Evaluations += uint64(sampled)
	if err == nil && mv.IsValid {
		a.neighborsAccepted++
	}
	return mv, err
}

func (a *SimulatedAnnealing[I, S, M, CF]) StopCriterion(r *Runner[I, S, M, CF]) bool { return false }

func (a *SimulatedAnnealing[I, S, M, CF]) CompleteIteration(r *Runner[I, S, M, CF]) {
	if a.neighborsSampled >= a.MaxNeighborsSampled || a.neighborsAccepted >= a.MaxNeighborsAccepted {
		a.temperature *= a.CoolingRate
		a.neighborsSampled = 0
		a.neighborsAccepted = 0
	}
}
