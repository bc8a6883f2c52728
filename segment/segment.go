// Package segment defines the Segment type: a rigid, moving line segment owned by a
// [world.World] and referenced (never copied into new storage) by a quadtree during
// detection.
//
// Unlike [linesegment.LineSegment], a Segment never reorders its own endpoints. P1 and P2
// keep the identity they were given at ingest, since the swept-parallelogram intersection
// test in package geomkernel depends on which endpoint is "first".
package segment

import "github.com/cdillond/linesim/point"

// Segment is a rigid line segment moving at a constant velocity.
//
// Id is assigned at ingest and is dense in [0, N) for the N segments owned by a world.
// P1 and P2 are the endpoints in their original order; Velocity is constant per step.
// CachedLength and CachedSpeed are derived values, refreshed by Refresh after each
// Advance step, and must be used by the solver instead of recomputing from P1/P2/Velocity
// on the hot path.
type Segment struct {
	Id           int
	P1, P2       point.Point
	Velocity     point.Point
	Color        [3]uint8
	CachedLength float64
	CachedSpeed  float64
}

// New creates a Segment with its length and speed caches populated.
func New(id int, p1, p2, velocity point.Point, color [3]uint8) *Segment {
	s := &Segment{
		Id:       id,
		P1:       p1,
		P2:       p2,
		Velocity: velocity,
		Color:    color,
	}
	s.Refresh()
	return s
}

// Refresh recomputes CachedLength and CachedSpeed from the current endpoints and velocity.
// Called by Advance after endpoints have moved; never called mid-frame by the solver.
func (s *Segment) Refresh() {
	s.CachedLength = s.P1.DistanceToPoint(s.P2)
	s.CachedSpeed = s.Velocity.DistanceToPoint(point.Origin())
}

// Compare implements the canonical total order on segments: by P1.X, then P1.Y, then
// P2.X, then P2.Y, ties broken by Id. Used to orient every pair before classification so
// that the asymmetric L1_WITH_L2 / L2_WITH_L1 result is stable regardless of discovery
// order.
func Compare(a, b *Segment) int {
	switch {
	case a.P1.X() < b.P1.X():
		return -1
	case a.P1.X() > b.P1.X():
		return 1
	}
	switch {
	case a.P1.Y() < b.P1.Y():
		return -1
	case a.P1.Y() > b.P1.Y():
		return 1
	}
	switch {
	case a.P2.X() < b.P2.X():
		return -1
	case a.P2.X() > b.P2.X():
		return 1
	}
	switch {
	case a.P2.Y() < b.P2.Y():
		return -1
	case a.P2.Y() > b.P2.Y():
		return 1
	}
	switch {
	case a.Id < b.Id:
		return -1
	case a.Id > b.Id:
		return 1
	}
	return 0
}

// Ordered returns l1, l2 such that Compare(l1, l2) < 0, satisfying the precondition of
// geomkernel.Intersect.
func Ordered(a, b *Segment) (l1, l2 *Segment) {
	if Compare(a, b) < 0 {
		return a, b
	}
	return b, a
}
