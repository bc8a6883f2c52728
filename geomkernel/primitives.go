package geomkernel

import (
	"math"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/numeric"
	"github.com/cdillond/linesim/point"
)

// segmentsIntersect reports whether the closed segments [a1,a2] and [b1,b2] share at
// least one point, using the orientation test plus a collinear-overlap check.
func segmentsIntersect(a1, a2, b1, b2 point.Point) bool {
	o1 := point.Orientation(a1, a2, b1)
	o2 := point.Orientation(a1, a2, b2)
	o3 := point.Orientation(b1, b2, a1)
	o4 := point.Orientation(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == point.Collinear && onSegment(a1, a2, b1) {
		return true
	}
	if o2 == point.Collinear && onSegment(a1, a2, b2) {
		return true
	}
	if o3 == point.Collinear && onSegment(b1, b2, a1) {
		return true
	}
	if o4 == point.Collinear && onSegment(b1, b2, a2) {
		return true
	}

	return false
}

// onSegment reports whether p, known to be collinear with [a,b], lies within the
// bounding box of a and b.
func onSegment(a, b, p point.Point) bool {
	eps := linesim.GetEpsilon()
	return numeric.FloatLessThanOrEqualTo(math.Min(a.X(), b.X()), p.X(), eps) &&
		numeric.FloatLessThanOrEqualTo(p.X(), math.Max(a.X(), b.X()), eps) &&
		numeric.FloatLessThanOrEqualTo(math.Min(a.Y(), b.Y()), p.Y(), eps) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), math.Max(a.Y(), b.Y()), eps)
}

// lineIntersectionPoint solves for the intersection of the infinite lines through (a1,a2)
// and (b1,b2). The second return value is false if the lines are parallel (which includes
// collinear overlapping segments); the caller handles that case itself.
func lineIntersectionPoint(a1, a2, b1, b2 point.Point) (point.Point, bool) {
	// Line through a1,a2: a1x + b1y = c1
	la := a2.Y() - a1.Y()
	lb := a1.X() - a2.X()
	lc := la*a1.X() + lb*a1.Y()

	// Line through b1,b2: a2x + b2y = c2
	ma := b2.Y() - b1.Y()
	mb := b1.X() - b2.X()
	mc := ma*b1.X() + mb*b1.Y()

	determinant := la*mb - ma*lb
	if numeric.FloatEquals(determinant, 0, linesim.GetEpsilon()) {
		return point.Point{}, false
	}

	x := (mb*lc - lb*mc) / determinant
	y := (la*mc - ma*lc) / determinant
	return point.New(x, y), true
}
