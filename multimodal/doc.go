// Package multimodal composes a heterogeneous list of base
// neighborhood.Explorer values, over the same State, into a single compound
// Explorer: SetUnion (exactly one active component per move, biased
// selection) and CartesianProduct (all components active, chained by a
// relatedness predicate).
//
// Go has no generic array length parameter, so a compound move cannot be a
// slice of ActiveMove and remain comparable (a requirement of model.Move).
// CompoundMove instead uses a fixed-capacity array (MaxArity slots), the
// same "fixed-length array of tagged ActiveMove values" resolution sketched
// for ports of the original tuple-dispatch design; explorers with more base
// neighborhoods than MaxArity are rejected at construction time.
package multimodal
