package multimodal_test

// vec4/tagMove/distanceComponent/incExplorer/decExplorer are the toy fixture
// used by both the set-union and Cartesian-product tests: a 4-slot integer
// vector with per-position increment and decrement neighborhoods, scored by
// sum (v[i]-i)^2 (the same toy objective named in the end-to-end scenarios).
//
// Every base neighborhood here shares one Move type (tagMove, a {kind, pos}
// pair) rather than each having its own distinct Go type: package multimodal
// requires all bases in one compound to share a Move type parameter M, since
// Go has no heterogeneous generic tuple to hold one distinct type per slot.
// incExplorer and decExplorer stay behaviorally independent neighborhoods —
// each only ever emits and accepts moves tagged with its own kind — so the
// set-union/Cartesian semantics are exercised faithfully; only the Go type
// itself is shared.

import (
	"fmt"

	"github.com/elgo/easylocal/model"
)

type vecInput struct{}

type vec4 [4]int

func (v vec4) Clone() vec4 { return v }

type tagMove struct {
	kind int
	pos  int
}

func (m tagMove) Clone() tagMove { return m }

func (m tagMove) Less(o tagMove) bool {
	if m.kind != o.kind {
		return m.kind < o.kind
	}
	return m.pos < o.pos
}

func (m tagMove) String() string { return fmt.Sprintf("k%d@%d", m.kind, m.pos) }

type distanceComponent struct{}

func (distanceComponent) ComputeCost(in vecInput, st vec4) int {
	total := 0
	var i int
	for i = 0; i < len(st); i++ {
		d := st[i] - i
		total += d * d
	}
	return total
}

func (distanceComponent) Weight() int { return 1 }

func (distanceComponent) IsHard() bool { return false }

const (
	kindInc = 0
	kindDec = 1
)

type incExplorer struct {
	comps []model.DeltaCostComponent[vecInput, vec4, tagMove, int]
}

func newIncExplorer() *incExplorer {
	return &incExplorer{comps: []model.DeltaCostComponent[vecInput, vec4, tagMove, int]{
		model.AdapterDeltaCostComponent[vecInput, vec4, tagMove, int]{Comp: distanceComponent{}},
	}}
}

func (e *incExplorer) positions(st vec4) []int {
	var out []int
	var i int
	for i = 0; i < len(st); i++ {
		if st[i] < 9 {
			out = append(out, i)
		}
	}
	return out
}

func (e *incExplorer) RandomMove(in vecInput, st vec4) (tagMove, error) {
	return e.FirstMove(in, st)
}

func (e *incExplorer) FirstMove(in vecInput, st vec4) (tagMove, error) {
	pos := e.positions(st)
	if len(pos) == 0 {
		return tagMove{}, model.ErrEmptyNeighborhood
	}
	return tagMove{kind: kindInc, pos: pos[0]}, nil
}

func (e *incExplorer) NextMove(in vecInput, st vec4, mv *tagMove) bool {
	pos := e.positions(st)
	var i int
	for i = 0; i < len(pos); i++ {
		if pos[i] == mv.pos && i+1 < len(pos) {
			mv.pos = pos[i+1]
			return true
		}
	}
	return false
}

func (e *incExplorer) MakeMove(in vecInput, st vec4, mv tagMove) vec4 {
	st[mv.pos]++
	return st
}

func (e *incExplorer) Modality() int { return 1 }

func (e *incExplorer) DeltaCostComponents() []model.DeltaCostComponent[vecInput, vec4, tagMove, int] {
	return e.comps
}

type decExplorer struct {
	comps []model.DeltaCostComponent[vecInput, vec4, tagMove, int]
}

func newDecExplorer() *decExplorer {
	return &decExplorer{comps: []model.DeltaCostComponent[vecInput, vec4, tagMove, int]{
		model.AdapterDeltaCostComponent[vecInput, vec4, tagMove, int]{Comp: distanceComponent{}},
	}}
}

func (e *decExplorer) positions(st vec4) []int {
	var out []int
	var i int
	for i = 0; i < len(st); i++ {
		if st[i] > 0 {
			out = append(out, i)
		}
	}
	return out
}

func (e *decExplorer) RandomMove(in vecInput, st vec4) (tagMove, error) {
	return e.FirstMove(in, st)
}

func (e *decExplorer) FirstMove(in vecInput, st vec4) (tagMove, error) {
	pos := e.positions(st)
	if len(pos) == 0 {
		return tagMove{}, model.ErrEmptyNeighborhood
	}
	return tagMove{kind: kindDec, pos: pos[0]}, nil
}

func (e *decExplorer) NextMove(in vecInput, st vec4, mv *tagMove) bool {
	pos := e.positions(st)
	var i int
	for i = 0; i < len(pos); i++ {
		if pos[i] == mv.pos && i+1 < len(pos) {
			mv.pos = pos[i+1]
			return true
		}
	}
	return false
}

func (e *decExplorer) MakeMove(in vecInput, st vec4, mv tagMove) vec4 {
	st[mv.pos]--
	return st
}

func (e *decExplorer) Modality() int { return 1 }

func (e *decExplorer) DeltaCostComponents() []model.DeltaCostComponent[vecInput, vec4, tagMove, int] {
	return e.comps
}
