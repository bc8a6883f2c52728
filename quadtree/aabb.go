package quadtree

import (
	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/segment"
)

// AABB is an axis-aligned bounding box, used both for quadtree cell bounds and for the
// swept bounding box of a moving segment over a timestep.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// Intersects reports whether box o overlaps cell b. The cell is closed on its lower edges
// and open on its upper edges; o is treated as closed.
func (b AABB) Intersects(o AABB) bool {
	return b.MinX <= o.MaxX && o.MinX < b.MaxX && b.MinY <= o.MaxY && o.MinY < b.MaxY
}

// Contains reports whether b fully contains o.
func (b AABB) Contains(o AABB) bool {
	return b.MinX <= o.MinX && o.MaxX <= b.MaxX && b.MinY <= o.MinY && o.MaxY <= b.MaxY
}

// quadrants splits b into four equal quadrants: NW, NE, SW, SE.
func (b AABB) quadrants() [4]AABB {
	midX := (b.MinX + b.MaxX) / 2
	midY := (b.MinY + b.MaxY) / 2
	return [4]AABB{
		{b.MinX, midY, midX, b.MaxY}, // NW
		{midX, midY, b.MaxX, b.MaxY}, // NE
		{b.MinX, b.MinY, midX, midY}, // SW
		{midX, b.MinY, b.MaxX, midY}, // SE
	}
}

func (b AABB) width() float64  { return b.MaxX - b.MinX }
func (b AABB) height() float64 { return b.MaxY - b.MinY }

// sweptBounds computes the AABB of a segment's swept parallelogram over dt, inflated by a
// fixed bboxEpsilon plus bboxVelFactor*maxSpeed*dt. maxSpeed is the tree-wide maximum
// segment speed for the frame, not this segment's own CachedSpeed: collision detection
// works in relative velocity space, which for a pair of segments each moving at speed v
// can be as large as 2v, so margining by the faster segment in the whole frame (a
// conservative stand-in for the true pairwise relative speed) is what keeps a fast segment
// from being pruned out of a slow segment's cell between builds. This mirrors the
// fattened-AABB approach common to broad-phase collision detectors: accept a few extra
// false-positive candidate pairs in exchange for not having to rebuild the tree mid-step.
func sweptBounds(s *segment.Segment, dt, bboxEpsilon, bboxVelFactor, maxSpeed float64) AABB {
	future1 := s.P1.Translate(point.New(s.Velocity.X()*dt, s.Velocity.Y()*dt))
	future2 := s.P2.Translate(point.New(s.Velocity.X()*dt, s.Velocity.Y()*dt))

	minX := min(s.P1.X(), s.P2.X(), future1.X(), future2.X())
	maxX := max(s.P1.X(), s.P2.X(), future1.X(), future2.X())
	minY := min(s.P1.Y(), s.P2.Y(), future1.Y(), future2.Y())
	maxY := max(s.P1.Y(), s.P2.Y(), future1.Y(), future2.Y())

	margin := bboxEpsilon + bboxVelFactor*maxSpeed*dt
	return AABB{minX - margin, minY - margin, maxX + margin, maxY + margin}
}

// unionBounds returns the smallest AABB containing every box, padded by epsilon on each
// side. An empty boxes slice yields a degenerate box at the origin, padded by epsilon —
// the N=0 boundary case still needs a well-formed root even though it holds nothing.
func unionBounds(boxes []AABB, epsilon float64) AABB {
	if len(boxes) == 0 {
		return AABB{-epsilon, -epsilon, epsilon, epsilon}
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		u.MinX = min(u.MinX, b.MinX)
		u.MinY = min(u.MinY, b.MinY)
		u.MaxX = max(u.MaxX, b.MaxX)
		u.MaxY = max(u.MaxY, b.MaxY)
	}
	u.MinX -= epsilon
	u.MinY -= epsilon
	u.MaxX += epsilon
	u.MaxY += epsilon
	return u
}
