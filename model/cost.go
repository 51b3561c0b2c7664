// cost.go defines CostStructure, the hierarchical cost vector shared by
// every component of the framework.
//
// Design:
//   - total = HardWeight*hard + soft is an invariant maintained by whoever
//     constructs a CostStructure (CostComponent registration in a
//     StateManager, or the delta-cost composition in package neighborhood).
//     Add/Sub are pure component-wise operations: because the formula is
//     linear, summing two internally-consistent CostStructures yields an
//     internally-consistent sum without needing to know HardWeight again.
//   - HardInf/IsHardInf model "no valid result" (spec: infinities are
//     representable). Go's integer types have no native infinity, so a large
//     sentinel value stands in; CF is expected to have at least int32 range.
package model

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// CostStructure is the hierarchical cost vector described by the framework:
// a total/weighted pair used for comparison and adaptive weighting, hard/soft
// aggregates, and one entry per registered CostComponent (stable registration
// order).
type CostStructure[CF constraints.Integer] struct {
	// Total is HardWeight*Hard + Soft, the default comparison key.
	Total CF
	// Weighted is the client-weighted variant used by adaptive weighting
	// schemes; it is not constrained by the Total invariant.
	Weighted float64
	// Hard aggregates the deltas of every hard CostComponent.
	Hard CF
	// Soft aggregates the deltas of every soft CostComponent.
	Soft CF
	// Components holds one entry per registered CostComponent, indexed by
	// registration order.
	Components []CF
}

// HardInf is the sentinel "infinite" / no-valid-result marker for a cost
// field of type CF. It is intentionally far below the true numeric maximum
// so that a few additions of finite deltas cannot wrap around it.
func HardInf[CF constraints.Integer]() CF {
	v := math.MaxInt32 / 4
	return CF(v)
}

// IsHardInf reports whether v should be treated as the "infinite" marker.
func IsHardInf[CF constraints.Integer](v CF) bool {
	return v >= HardInf[CF]()
}

// NewCostStructure returns a zero-valued CostStructure sized for n registered
// components (§3: components.len() == number of registered CostComponents).
func NewCostStructure[CF constraints.Integer](n int) CostStructure[CF] {
	return CostStructure[CF]{Components: make([]CF, n)}
}

// InfiniteCostStructure returns the "no valid result" marker, used where a
// move or state could not be evaluated at all.
func InfiniteCostStructure[CF constraints.Integer](n int) CostStructure[CF] {
	cs := NewCostStructure[CF](n)
	inf := HardInf[CF]()
	cs.Total, cs.Hard, cs.Soft = inf, inf, inf
	cs.Weighted = math.Inf(1)
	for i := range cs.Components {
		cs.Components[i] = inf
	}
	return cs
}

// Recompute restores the total = hardWeight*hard + soft invariant from the
// current Hard/Soft fields. Call after mutating Hard/Soft directly (e.g. a
// CostComponent's ComputeCost loop) rather than via Add/Sub.
func (c *CostStructure[CF]) Recompute(hardWeight CF) {
	c.Total = hardWeight*c.Hard + c.Soft
}

// Add returns the component-wise sum of c and o. Component slices must be the
// same length (both sized by the same registry); shorter slices are treated
// as zero-padded.
func (c CostStructure[CF]) Add(o CostStructure[CF]) CostStructure[CF] {
	return c.combine(o, func(a, b CF) CF { return a + b })
}

// Sub returns the component-wise difference c - o.
func (c CostStructure[CF]) Sub(o CostStructure[CF]) CostStructure[CF] {
	return c.combine(o, func(a, b CF) CF { return a - b })
}

func (c CostStructure[CF]) combine(o CostStructure[CF], op func(a, b CF) CF) CostStructure[CF] {
	n := len(c.Components)
	if len(o.Components) > n {
		n = len(o.Components)
	}
	out := CostStructure[CF]{
		Total:    op(c.Total, o.Total),
		Weighted: c.Weighted + o.Weighted,
		Hard:     op(c.Hard, o.Hard),
		Soft:     op(c.Soft, o.Soft),
		Components: make([]CF, n),
	}
	var i int
	for i = 0; i < n; i++ {
		var a, b CF
		if i < len(c.Components) {
			a = c.Components[i]
		}
		if i < len(o.Components) {
			b = o.Components[i]
		}
		out.Components[i] = op(a, b)
	}
	return out
}

// Less compares by Total alone, the ordering key used everywhere outside the
// Runner's best-state promotion.
func (c CostStructure[CF]) Less(o CostStructure[CF]) bool {
	return c.Total < o.Total
}

// Equal reports whether c and o carry the same Total.
func (c CostStructure[CF]) Equal(o CostStructure[CF]) bool {
	return c.Total == o.Total
}

// IsBetterThan implements the lexicographic precedence used by the Runner's
// best-update check: violations (Hard) first, Total as the tie-breaker.
func (c CostStructure[CF]) IsBetterThan(o CostStructure[CF]) bool {
	if c.Hard != o.Hard {
		return c.Hard < o.Hard
	}
	return c.Total < o.Total
}

// String renders a compact diagnostic representation, e.g. "total=1003 hard=1 soft=3".
func (c CostStructure[CF]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total=%v hard=%v soft=%v", c.Total, c.Hard, c.Soft)
	if len(c.Components) > 0 {
		fmt.Fprintf(&b, " components=%v", c.Components)
	}
	return b.String()
}
