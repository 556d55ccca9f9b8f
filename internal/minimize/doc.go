// Package minimize reduces a synthesized machine to its equivalence-class
// form: unreachable states are removed, equivalent states are found by Moore
// partition refinement, and one representative per class is kept.
//
// The package never allocates new states or transitions. Every result is a
// list of indexes borrowed from the machine's arena, so results are only
// valid until the machine is freed.
package minimize
