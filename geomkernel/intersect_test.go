package geomkernel

import (
	"testing"

	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/segment"
	"github.com/stretchr/testify/assert"
)

func seg(id int, x1, y1, x2, y2, vx, vy float64) *segment.Segment {
	return segment.New(id, point.New(x1, y1), point.New(x2, y2), point.New(vx, vy), [3]uint8{})
}

func TestIntersect_None(t *testing.T) {
	l1 := seg(0, 0, 0, 10, 0, 0, 1)
	l2 := seg(1, 0, 100, 10, 100, 0, 1)
	assert.Equal(t, None, Intersect(l1, l2, 0.5))
}

func TestIntersect_AlreadyIntersected(t *testing.T) {
	l1 := seg(0, 0, 5, 10, 5, 0, 0)
	l2 := seg(1, 5, 0, 5, 10, 0, 0)
	assert.Equal(t, AlreadyIntersected, Intersect(l1, l2, 0.5))
}

func TestIntersect_L1RunsIntoL2(t *testing.T) {
	// l1 is short and vertical and moves right toward the longer, stationary l2. Swept in
	// l1's frame, l2's parallelogram passes above and below l1, so only the sweep of l1 in
	// l2's frame (its side edges cross l2) finds the hit.
	l1 := seg(0, 0, 4, 0, 6, 10, 0)
	l2 := seg(1, 5, 0, 5, 10, 0, 0)
	got := Intersect(l1, l2, 1)
	assert.Equal(t, L1WithL2, got)
}

func TestIntersect_L2RunsIntoL1(t *testing.T) {
	// l1 is vertical and stationary; l2 starts to its right and moves into it.
	l1 := seg(0, 0, 0, 0, 10, 0, 0)
	l2 := seg(1, 5, -1, 5, 1, -10, 0)
	got := Intersect(l1, l2, 1)
	assert.Equal(t, L2WithL1, got)
}

func TestIntersectionPoint(t *testing.T) {
	l1 := seg(0, 0, 5, 10, 5, 0, 0)
	l2 := seg(1, 5, 0, 5, 10, 0, 0)
	p, ok := IntersectionPoint(l1, l2)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, p.X(), 1e-9)
	assert.InDelta(t, 5.0, p.Y(), 1e-9)
}
