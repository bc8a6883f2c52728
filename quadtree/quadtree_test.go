package quadtree

import (
	"context"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/point"
	"github.com/cdillond/linesim/segment"
)

func mkSeg(id int, x1, y1, x2, y2, vx, vy float64) *segment.Segment {
	return segment.New(id, point.New(x1, y1), point.New(x2, y2), point.New(vx, vy), [3]uint8{})
}

func TestBuild_EmptySegmentsProducesEmptyTree(t *testing.T) {
	tr, err := Build(nil, 1.0)
	require.NoError(t, err)
	pairs, err := tr.FindCandidatePairs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestBuild_SubdividesPastCapacity(t *testing.T) {
	var segs []*segment.Segment
	for i := 0; i < 40; i++ {
		x := float64(i % 10)
		y := float64(i / 10)
		segs = append(segs, mkSeg(i, x, y, x+0.1, y, 0, 0))
	}
	tr, err := Build(segs, 1.0, WithMaxLinesPerNode(4), WithDebugStats())
	require.NoError(t, err)
	assert.False(t, tr.Root.isLeaf())
	assert.Greater(t, tr.Stats.NodeCount, 1)
}

func TestFindCandidatePairs_FindsOverlappingSegments(t *testing.T) {
	s1 := mkSeg(0, 0, 0, 1, 1, 0, 0)
	s2 := mkSeg(1, 0.5, 0.5, 1.5, 1.5, 0, 0)
	far := mkSeg(2, 50, 50, 51, 51, 0, 0)

	tr, err := Build([]*segment.Segment{s1, s2, far}, 1.0, WithMaxLinesPerNode(2))
	require.NoError(t, err)

	pairs, err := tr.FindCandidatePairs(context.Background())
	require.NoError(t, err)

	found := false
	for _, p := range pairs {
		ids := map[int]bool{p.A.Id: true, p.B.Id: true}
		if ids[0] && ids[1] {
			found = true
		}
		assert.False(t, ids[2], "far segment should not pair with anything")
	}
	assert.True(t, found, "expected segments 0 and 1 to be reported as a candidate pair")
}

func TestFindCandidatePairs_NoDuplicatesForMultiCellSegment(t *testing.T) {
	// A long segment spanning every quadrant should still only pair once with a segment
	// it shares multiple cells with.
	spanning := mkSeg(0, 0, 0, 100, 100, 0, 0)
	other := mkSeg(1, 40, 60, 60, 40, 0, 0)

	tr, err := Build([]*segment.Segment{spanning, other}, 1.0, WithMaxLinesPerNode(1), WithMaxDepth(3))
	require.NoError(t, err)

	pairs, err := tr.FindCandidatePairs(context.Background())
	require.NoError(t, err)

	count := 0
	for _, p := range pairs {
		if p.A.Id == 0 && p.B.Id == 1 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuild_RespectsMinCellSize(t *testing.T) {
	var segs []*segment.Segment
	for i := 0; i < 20; i++ {
		segs = append(segs, mkSeg(i, 0, 0, 0.01, 0.01, 0, 0))
	}
	tr, err := Build(segs, 1.0, WithMaxLinesPerNode(1), WithMinCellSize(0.5))
	require.NoError(t, err)
	assert.True(t, tr.Root.isLeaf(), "subdivision should stop once cells would fall below MinCellSize")
}

func TestDestroy_ClearsReferences(t *testing.T) {
	segs := []*segment.Segment{mkSeg(0, 0, 0, 1, 1, 0, 0)}
	tr, err := Build(segs, 1.0)
	require.NoError(t, err)
	tr.Destroy()
	assert.Nil(t, tr.Root)
}

func TestSweptBounds_MarginUsesProvidedMaxSpeedNotSegmentsOwnSpeed(t *testing.T) {
	// A stationary segment's own CachedSpeed is zero; a buggy implementation that margins
	// by the segment's own speed would leave its box unpadded even when a much faster
	// segment shares the tree.
	stationary := mkSeg(0, 10, 0, 10.1, 0, 0, 0)

	tight := sweptBounds(stationary, 1.0, 0, 0.2, stationary.CachedSpeed)
	padded := sweptBounds(stationary, 1.0, 0, 0.2, 50.0)

	assert.Less(t, tight.MaxX-tight.MinX, padded.MaxX-padded.MinX)
	assert.InDelta(t, 0.2*50.0, padded.MaxX-tight.MaxX, 1e-9)
}

func TestBuild_CachesTreeWideMaxSpeed(t *testing.T) {
	slow := mkSeg(0, 0, 0, 1, 0, 1, 0)
	fast := mkSeg(1, 50, 50, 51, 50, 0, 30)

	tr, err := Build([]*segment.Segment{slow, fast}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, fast.CachedSpeed, tr.maxSpeed)
}

func TestShardInsert_RepeatOfSamePairIsIdempotent(t *testing.T) {
	a := mkSeg(0, 0, 0, 1, 0, 0, 0)
	b := mkSeg(1, 2, 0, 3, 0, 0, 0)
	sh := &shard{tree: rbt.NewWith(utils.Int64Comparator)}

	key := pairKey(a, b)
	require.NoError(t, sh.insert(key, Pair{A: a, B: b}))
	require.NoError(t, sh.insert(key, Pair{A: a, B: b}))
}

func TestShardInsert_KeyCollisionWithDifferentPairIsInvariantViolation(t *testing.T) {
	a := mkSeg(0, 0, 0, 1, 0, 0, 0)
	b := mkSeg(1, 2, 0, 3, 0, 0, 0)
	other := mkSeg(2, 4, 0, 5, 0, 0, 0)
	sh := &shard{tree: rbt.NewWith(utils.Int64Comparator)}

	key := pairKey(a, b)
	require.NoError(t, sh.insert(key, Pair{A: a, B: b}))

	err := sh.insert(key, Pair{A: a, B: other})
	require.Error(t, err)
	assert.ErrorIs(t, err, linesim.ErrInvariantViolation)
}

func TestFindCandidatePairs_FastSiblingPadsSlowSegmentAcrossCellBoundary(t *testing.T) {
	// A is effectively stationary and sits just past a quadrant split from B. Under a
	// margin computed from each segment's own speed, A's box would stay tight (its own
	// speed is ~0) and the split would separate A and B into non-overlapping quadrants.
	// Margining every box by the tree-wide max speed (contributed here by the fast,
	// distant third segment) pads A's box enough to still share a cell with B.
	a := mkSeg(0, 9.95, 0, 10.0, 0, 0, 0)
	b := mkSeg(1, 10.2, 0, 10.25, 0, 0, 0)
	fast := mkSeg(2, 9.95, 40, 10.25, 40, 0, 40)

	tr, err := Build([]*segment.Segment{a, b, fast}, 1.0, WithMaxLinesPerNode(1), WithMaxDepth(8))
	require.NoError(t, err)

	pairs, err := tr.FindCandidatePairs(context.Background())
	require.NoError(t, err)

	found := false
	for _, p := range pairs {
		ids := map[int]bool{p.A.Id: true, p.B.Id: true}
		if ids[0] && ids[1] {
			found = true
		}
	}
	assert.True(t, found, "expected the tree-wide max-speed margin to keep segments 0 and 1 in a shared cell")
}
