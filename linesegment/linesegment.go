// Package linesegment provides the LineSegment type used to represent arena walls: a
// finite straight segment between two endpoints, canonically ordered so that two
// constructions of the same wall always compare equal.
package linesegment

import (
	"github.com/cdillond/linesim/point"
)

// LineSegment represents a line segment in a 2D space, defined by two endpoints,
// an upper [point.Point] and a lower [point.Point].
type LineSegment struct {
	upper point.Point
	lower point.Point
}

// New creates a new LineSegment with the specified start and end x and y coordinates.
//
// Parameters:
//   - x1,y1 (float64): The starting point of the LineSegment.
//   - x2,y2 (float64): The ending point of the LineSegment.
//
// Returns:
//   - LineSegment: A new line segment defined by the start and end points.
func New(x1, y1, x2, y2 float64) LineSegment {
	p1 := point.New(x1, y1)
	p2 := point.New(x2, y2)

	return NewFromPoints(p1, p2)
}

// NewFromPoints creates a new LineSegment from two endpoints, a start [point.Point] and an end [point.Point].
//
// Parameters:
//   - p1,p2 (point.Point): The two endpoints of the LineSegment, in either order.
//
// Returns:
//   - LineSegment: A new line segment defined by the start and end points, canonically
//     ordered so that the endpoint with the higher Y (or, if tied, the lower X) is upper.
func NewFromPoints(p1, p2 point.Point) LineSegment {

	// Ensure p1 is the "upper" point (higher Y first, or lower X if tied)
	if p2.Y() > p1.Y() || (p2.Y() == p1.Y() && p2.X() < p1.X()) {
		p1, p2 = p2, p1 // Swap to maintain order
	}

	return LineSegment{
		upper: p1, // Always uppermost point first
		lower: p2,
	}
}

// Eq checks if two line segments are equal by comparing their upper and lower endpoints.
//
// Parameters:
//   - other (LineSegment): The line segment to compare with the current line segment.
//
// Returns:
//   - bool: Returns true if both line segments have identical upper and lower endpoints.
func (l LineSegment) Eq(other LineSegment) bool {
	return l.upper.Eq(other.upper) && l.lower.Eq(other.lower)
}

// Lower returns the lower [point.Point] of the LineSegment.
func (l LineSegment) Lower() point.Point {
	return l.lower
}

// Upper returns the upper [point.Point] of the LineSegment.
func (l LineSegment) Upper() point.Point {
	return l.upper
}
