package segment

import (
	"testing"

	"github.com/cdillond/linesim/point"
	"github.com/stretchr/testify/assert"
)

func TestNew_PopulatesCaches(t *testing.T) {
	s := New(0, point.New(0, 0), point.New(3, 4), point.New(1, 0), [3]uint8{255, 0, 0})
	assert.Equal(t, 5.0, s.CachedLength)
	assert.Equal(t, 1.0, s.CachedSpeed)
}

func TestRefresh_ReflectsMovedEndpoints(t *testing.T) {
	s := New(0, point.New(0, 0), point.New(1, 0), point.New(0, 2), [3]uint8{})
	s.P2 = point.New(0, 3)
	s.Refresh()
	assert.Equal(t, 3.0, s.CachedLength)
	assert.Equal(t, 2.0, s.CachedSpeed)
}

func TestCompare_OrdersByP1ThenP2ThenId(t *testing.T) {
	a := New(0, point.New(0, 0), point.New(1, 1), point.New(0, 0), [3]uint8{})
	b := New(1, point.New(1, 0), point.New(0, 0), point.New(0, 0), [3]uint8{})
	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, a))
}

func TestCompare_TiesBrokenByP2ThenId(t *testing.T) {
	a := New(0, point.New(0, 0), point.New(1, 1), point.New(0, 0), [3]uint8{})
	b := New(1, point.New(0, 0), point.New(2, 1), point.New(0, 0), [3]uint8{})
	assert.Negative(t, Compare(a, b))

	c := New(0, point.New(0, 0), point.New(1, 1), point.New(0, 0), [3]uint8{})
	d := New(1, point.New(0, 0), point.New(1, 1), point.New(0, 0), [3]uint8{})
	assert.Negative(t, Compare(c, d))
}

func TestOrdered_ReturnsStableOrderRegardlessOfArgumentOrder(t *testing.T) {
	a := New(0, point.New(0, 0), point.New(1, 1), point.New(0, 0), [3]uint8{})
	b := New(1, point.New(5, 0), point.New(6, 1), point.New(0, 0), [3]uint8{})

	l1, l2 := Ordered(a, b)
	assert.Same(t, a, l1)
	assert.Same(t, b, l2)

	l1, l2 = Ordered(b, a)
	assert.Same(t, a, l1)
	assert.Same(t, b, l2)
}
