package collision

import (
	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/geomkernel"
	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/segment"
)

// Solver resolves a single classified Event into updated velocities for its two
// segments. Mass is taken to be each segment's CachedLength, so a longer segment imparts
// more inertia onto a shorter one it strikes, the way a longer lever arm would.
//
// Collisions are resolved along a single normal direction (the "face" normal) via the
// standard 1D elastic-collision exchange, decomposed into normal and tangential velocity
// components: the tangential component is left untouched and the normal components trade
// according to the two masses. This preserves both total momentum and total kinetic
// energy along the normal, matching an idealized rigid-body bounce rather than an
// inelastic one.
type Solver struct{}

// NewSolver returns a ready-to-use Solver. It carries no configuration: the unstick
// heuristic's only free parameter is the pair's own geometry.
func NewSolver() *Solver {
	return &Solver{}
}

// Resolve applies the response for a single event, mutating e.A.Velocity and e.B.Velocity
// in place: the elastic exchange for L1WithL2 and L2WithL1, and for AlreadyIntersected a
// redirection of both velocities away from the overlap. Endpoints are never moved here.
func (s *Solver) Resolve(e Event) {
	switch e.Kind {
	case geomkernel.L1WithL2:
		s.exchange(e.A, e.B, faceNormal(e.B, e.A))
	case geomkernel.L2WithL1:
		s.exchange(e.A, e.B, faceNormal(e.A, e.B))
	case geomkernel.AlreadyIntersected:
		s.resolveOverlap(e.A, e.B)
	}
}

// exchange performs the 1D elastic velocity exchange along the line of unit normal n. The
// result does not depend on the sign of n; Resolve passes a normal of the face that was
// hit.
func (s *Solver) exchange(a, b *segment.Segment, n point.Point) {
	m1, m2 := a.CachedLength, b.CachedLength
	if m1 <= 0 {
		m1 = 1
	}
	if m2 <= 0 {
		m2 = 1
	}

	v1n := a.Velocity.DotProduct(n)
	v2n := b.Velocity.DotProduct(n)

	v1t := a.Velocity.Sub(n.Scale(point.Origin(), v1n))
	v2t := b.Velocity.Sub(n.Scale(point.Origin(), v2n))

	newV1n := ((m1-m2)*v1n + 2*m2*v2n) / (m1 + m2)
	newV2n := ((m2-m1)*v2n + 2*m1*v1n) / (m1 + m2)

	a.Velocity = v1t.Add(n.Scale(point.Origin(), newV1n))
	b.Velocity = v2t.Add(n.Scale(point.Origin(), newV2n))
}

// resolveOverlap handles the degenerate case where two segments already overlap at the
// start of the step, so there is no swept parallelogram to test against. For each
// segment, find its intersection point p with the other's line, pick whichever of its own
// two endpoints lies farther from p, and point the segment's velocity from p toward that
// endpoint at its original speed. Both segments now move away from p, which guarantees
// separation by the next frame without changing either segment's speed — no momentum or
// energy bookkeeping applies here since this is a geometric nudge, not a collision.
//
// IntersectionPoint has no single point to report when a and b are collinear (the 2x2
// system is singular), which is exactly the case where AlreadyIntersected means the two
// segments overlap along a shared line rather than crossing at a point; that case is
// handled separately by resolveCollinearOverlap.
func (s *Solver) resolveOverlap(a, b *segment.Segment) {
	p, ok := geomkernel.IntersectionPoint(a, b)
	if !ok {
		s.resolveCollinearOverlap(a, b)
		return
	}
	a.Velocity = awayFrom(a, p)
	b.Velocity = awayFrom(b, p)
}

// resolveCollinearOverlap separates two collinear, overlapping segments along their
// shared line direction. Each segment's midpoint is projected onto that direction; the
// segment whose projection is smaller is sent in the negative direction and the other in
// the positive direction, at its own original speed, so the pair pulls apart instead of
// being left untouched. A tie in the projection (coincident midpoints) is broken by Id so
// the outcome is still deterministic.
func (s *Solver) resolveCollinearOverlap(a, b *segment.Segment) {
	dir := a.P2.Sub(a.P1).Normalize()
	aMid := point.New((a.P1.X()+a.P2.X())/2, (a.P1.Y()+a.P2.Y())/2)
	bMid := point.New((b.P1.X()+b.P2.X())/2, (b.P1.Y()+b.P2.Y())/2)
	aProj := aMid.Sub(point.Origin()).DotProduct(dir)
	bProj := bMid.Sub(point.Origin()).DotProduct(dir)

	sign := 1.0
	if aProj > bProj || (aProj == bProj && a.Id > b.Id) {
		sign = -1.0
	}
	a.Velocity = dir.Scale(point.Origin(), -sign*a.CachedSpeed)
	b.Velocity = dir.Scale(point.Origin(), sign*b.CachedSpeed)
}

// awayFrom returns a velocity of s's original speed, directed from p toward whichever of
// s's endpoints is farther from p.
func awayFrom(s *segment.Segment, p point.Point) point.Point {
	far := s.P1
	if s.P2.DistanceToPoint(p) > s.P1.DistanceToPoint(p) {
		far = s.P2
	}
	dir := far.Sub(p).Normalize()
	return dir.Scale(point.Origin(), s.CachedSpeed)
}

// faceNormal returns the unit outward normal of face's line, oriented to point from face
// toward other.
func faceNormal(face, other *segment.Segment) point.Point {
	dir := face.P2.Sub(face.P1).Normalize()
	n := dir.Orthogonal()
	mid := point.New((face.P1.X()+face.P2.X())/2, (face.P1.Y()+face.P2.Y())/2)
	toOther := point.New((other.P1.X()+other.P2.X())/2, (other.P1.Y()+other.P2.Y())/2).Sub(mid)
	if n.DotProduct(toOther) < 0 {
		n = n.Negate()
	}
	return n
}
