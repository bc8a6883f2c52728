package geomkernel

import (
	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/segment"
)

// Intersect classifies the collision, if any, between two segments over a timestep dt.
//
// Precondition: segment.Compare(l1, l2) < 0 — see [segment.Ordered]. The precondition
// exists purely to make the asymmetric L1WithL2 / L2WithL1 result stable across callers
// that discover the pair in either order.
//
// The test is run twice, once per reference frame: once holding l1 fixed and sweeping l2
// by their relative velocity (a hit attributes as L2WithL1 — l2's swept volume is what
// reaches the stationary l1), and once with the roles reversed (a hit attributes as
// L1WithL2). Both sweeps only consider the "future" and "side" edges of the swept
// parallelogram; the parallelogram edge coincident with the stationary segment's own
// current position degenerates to the AlreadyIntersected test and is checked once, up
// front, rather than per frame.
func Intersect(l1, l2 *segment.Segment, dt float64) Classification {
	if segmentsIntersect(l1.P1, l1.P2, l2.P1, l2.P2) {
		return AlreadyIntersected
	}

	vx := l2.Velocity.X() - l1.Velocity.X()
	vy := l2.Velocity.Y() - l1.Velocity.Y()

	if sweptEdgesHit(l1.P1, l1.P2, l2.P1, l2.P2, vx, vy, dt) {
		return L2WithL1
	}
	if sweptEdgesHit(l2.P1, l2.P2, l1.P1, l1.P2, -vx, -vy, dt) {
		return L1WithL2
	}
	return None
}

// sweptEdgesHit reports whether the segment (movingP1,movingP2), translated by
// (vx,vy)*dt, sweeps a parallelogram whose future edge or either side edge crosses the
// fixed segment (fixedA,fixedB).
func sweptEdgesHit(fixedA, fixedB, movingP1, movingP2 point.Point, vx, vy, dt float64) bool {
	delta := point.New(vx*dt, vy*dt)
	future1 := movingP1.Translate(delta)
	future2 := movingP2.Translate(delta)

	if segmentsIntersect(fixedA, fixedB, future1, future2) {
		return true
	}
	if segmentsIntersect(fixedA, fixedB, movingP1, future1) {
		return true
	}
	if segmentsIntersect(fixedA, fixedB, movingP2, future2) {
		return true
	}
	return false
}

// IntersectionPoint computes the current intersection point of the (infinite extensions
// of the) two segments' lines. Used by the solver's unstick heuristic, which is only
// invoked for pairs classified AlreadyIntersected.
func IntersectionPoint(l1, l2 *segment.Segment) (point.Point, bool) {
	return lineIntersectionPoint(l1.P1, l1.P2, l2.P1, l2.P2)
}
