// delta.go implements DeltaCostFunctionComponents (§4.1): iterate implemented
// delta-components first; if at least one registered component is implicit
// (an model.AdapterDeltaCostComponent, or anything else failing the
// ImplementedDeltaCostComponent assertion), MakeMove into a scratch clone of
// st exactly once and ask each implicit component for
// w*(cost(successor) - cost(st)). This batches at most one MakeMove per move
// evaluation regardless of how many implicit components participate.
package neighborhood

import (
	"golang.org/x/exp/constraints"

	"github.com/elgo/easylocal/model"
)

// DeltaCostFunctionComponents computes the composite delta-cost of applying
// mv to st, using ex's registered DeltaCostComponents and hardWeight to
// restore the Total invariant.
//
// Complexity: O(k) delta evaluations plus at most one MakeMove + 2*O(implicit)
// full cost evaluations, where k is the number of registered components.
func DeltaCostFunctionComponents[I any, S model.State[S], M model.Move[M], CF constraints.Integer](
	ex Explorer[I, S, M, CF], in I, st S, mv M, hardWeight CF,
) model.CostStructure[CF] {
	comps := ex.DeltaCostComponents()
	cs := model.NewCostStructure[CF](len(comps))

	var implicit []int
	var i int
	var dc model.DeltaCostComponent[I, S, M, CF]
	for i, dc = range comps {
		if impl, ok := dc.(model.ImplementedDeltaCostComponent[I, S, M, CF]); ok {
			cc := impl.Component()
			v := cc.Weight() * impl.DeltaCost(in, st, mv)
			cs.Components[i] = v
			if cc.IsHard() {
				cs.Hard += v
			} else {
				cs.Soft += v
			}
			continue
		}
		implicit = append(implicit, i)
	}

	if len(implicit) > 0 {
		successor := ex.MakeMove(in, st.Clone(), mv)
		var idx int
		for _, idx = range implicit {
			cc := comps[idx].Component()
			v := cc.Weight() * (cc.ComputeCost(in, successor) - cc.ComputeCost(in, st))
			cs.Components[idx] = v
			if cc.IsHard() {
				cs.Hard += v
			} else {
				cs.Soft += v
			}
		}
	}

	cs.Recompute(hardWeight)
	return cs
}
