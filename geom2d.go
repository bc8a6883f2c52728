// Package linesim simulates rigid 2D line segments moving at constant velocity inside a
// square arena, detecting and resolving collisions between them frame by frame.
//
// # Pipeline
//
// Each frame runs a fixed four-stage pipeline, driven by [world.World.Frame]:
//
//  1. Detect: build a [quadtree.Tree] over the segments' swept volumes, enumerate candidate
//     pairs, and classify each with [geomkernel.Intersect].
//  2. Resolve: sort the resulting events canonically and apply [collision.Solver] to update
//     velocities.
//  3. Advance: translate endpoints by velocity * dt and refresh cached length/speed.
//  4. Wall-bounce: reflect velocity components that would carry a segment past an arena wall.
//
// # Precision Control with Epsilon
//
// Geometric comparisons (orientation tests, point and segment equality) consult the
// process-wide default epsilon set by [SetEpsilon] and read by [GetEpsilon]. Components
// with their own tunable tolerances, such as [quadtree.Config], instead take it as an
// explicit functional option.
package linesim

import (
	"math"
	"sync/atomic"
)

var defaultEpsilon atomic.Uint64

func init() {
	SetEpsilon(1e-9)
	logDebugf("debug logging enabled")
}

// GetEpsilon returns the process-wide default epsilon used by comparisons that do not
// accept an explicit tolerance (e.g. [point.Point.Eq], [point.Orientation]).
func GetEpsilon() float64 {
	return math.Float64frombits(defaultEpsilon.Load())
}

// SetEpsilon sets the process-wide default epsilon. Negative values are clamped to zero.
func SetEpsilon(epsilon float64) {
	if epsilon < 0 {
		epsilon = 0
	}
	defaultEpsilon.Store(math.Float64bits(epsilon))
}
