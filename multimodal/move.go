package multimodal

import (
	"strings"

	"github.com/elgo/easylocal/model"
)

// MaxArity bounds the number of base neighborhoods a compound explorer may
// wrap. Chosen generously above any realistic multi-modal composition; raise
// it if a client genuinely needs more base neighborhoods in one compound.
const MaxArity = 8

// CompoundMove is a fixed-arity tuple of ActiveMove wrappers, one slot per
// base neighborhood (§3: "a compound Move as a tuple of ActiveMove
// wrappers"). Only the first Arity() slots are meaningful; the rest are
// always inactive zero values. CompoundMove satisfies model.Move given M
// does, since an array of comparable ActiveMove values is itself comparable.
type CompoundMove[M model.Move[M]] struct {
	slots [MaxArity]model.ActiveMove[M]
	n     int
}

// NewCompoundMove returns a zero CompoundMove with arity n (n <= MaxArity is
// the caller's responsibility; compound explorers validate this once at
// construction).
func NewCompoundMove[M model.Move[M]](n int) CompoundMove[M] {
	return CompoundMove[M]{n: n}
}

// Arity returns the number of meaningful slots.
func (c CompoundMove[M]) Arity() int { return c.n }

// Get returns the move stored at slot i, regardless of its Active flag.
func (c CompoundMove[M]) Get(i int) M { return c.slots[i].Move }

// IsActive reports whether slot i currently participates in this compound.
func (c CompoundMove[M]) IsActive(i int) bool { return c.slots[i].Active }

// Set stores mv at slot i and marks it active.
func (c *CompoundMove[M]) Set(i int, mv M) {
	c.slots[i].Move = mv
	c.slots[i].Active = true
}

// Deactivate clears slot i's Active flag, leaving its last Move value intact.
func (c *CompoundMove[M]) Deactivate(i int) { c.slots[i].Active = false }

// Clone deep-clones every slot's Move, active or not.
func (c CompoundMove[M]) Clone() CompoundMove[M] {
	out := c
	var i int
	for i = 0; i < c.n; i++ {
		out.slots[i].Move = c.slots[i].Move.Clone()
	}
	return out
}

// Less imposes a total order: the first slot where activity or move value
// differs decides the comparison, inactive sorting before active.
func (c CompoundMove[M]) Less(o CompoundMove[M]) bool {
	var i int
	for i = 0; i < c.n; i++ {
		if c.slots[i].Active != o.slots[i].Active {
			return !c.slots[i].Active && o.slots[i].Active
		}
		if c.slots[i].Move != o.slots[i].Move {
			return c.slots[i].Move.Less(o.slots[i].Move)
		}
	}
	return false
}

// String renders each slot in order, "_" for inactive ones.
func (c CompoundMove[M]) String() string {
	var b strings.Builder
	b.WriteString("[")
	var i int
	for i = 0; i < c.n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		if c.slots[i].Active {
			b.WriteString(c.slots[i].Move.String())
		} else {
			b.WriteString("_")
		}
	}
	b.WriteString("]")
	return b.String()
}
