// Package geomkernel implements the continuous-time segment intersection predicate: given
// two rigid segments moving at constant velocity over a timestep, classify how (or
// whether) they collide during that step.
//
// The classification is a tagged variant rather than an interface: a small enum returned
// by value, no dynamic dispatch, matching the style of enums elsewhere in this codebase
// (e.g. [point.OrientationType]).
package geomkernel

import "fmt"

// Classification is the result of testing two segments for a collision within a timestep.
type Classification uint8

const (
	// None indicates the segments do not collide within the step.
	None Classification = iota

	// L2WithL1 indicates l2 runs into l1: holding l1 fixed, the parallelogram l2 sweeps at
	// the relative velocity crosses l1 through its future edge or one of its side edges.
	L2WithL1

	// L1WithL2 indicates l1 runs into l2: l2's sweep misses l1, but holding l2 fixed, the
	// parallelogram l1 sweeps crosses l2 through its future edge or one of its side edges.
	L1WithL2

	// AlreadyIntersected indicates l1 and l2 currently overlap and must be separated by
	// the solver's unstick heuristic rather than an elastic response.
	AlreadyIntersected
)

// String returns a human-readable name for the classification. Panics on an unrecognized
// value, matching the adapted sibling enums in this codebase.
func (c Classification) String() string {
	switch c {
	case None:
		return "None"
	case L2WithL1:
		return "L2WithL1"
	case L1WithL2:
		return "L1WithL2"
	case AlreadyIntersected:
		return "AlreadyIntersected"
	default:
		panic(fmt.Errorf("unsupported classification: %d", c))
	}
}
