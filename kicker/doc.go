// Package kicker implements length-k related-move sequence enumeration
// (§4.4): a Kicker wraps a single neighborhood.Explorer and produces Kicks —
// chains of k moves, each related to the previous one by a client predicate
// — via the same depth-first backtracking shape as package multimodal's
// Cartesian product, specialized to one base neighborhood repeated k times
// instead of k distinct base neighborhoods.
//
// Grounded on original_source/include/easylocal/helpers/kicker.hh
// (FullKickerIterator::FirstKick/NextKick, SampleKickerIterator::RandomKick).
package kicker
