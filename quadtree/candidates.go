package quadtree

import (
	"context"
	"sync"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/sync/errgroup"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/segment"
)

// Pair is a candidate collision pair: two segments that share at least one quadtree
// cell. FindCandidatePairs makes no claim the pair actually collides — that test belongs
// to geomkernel.Intersect.
type Pair struct {
	A, B *segment.Segment // A, B satisfy segment.Compare(A, B) < 0
}

func pairKey(a, b *segment.Segment) int64 {
	l1, l2 := segment.Ordered(a, b)
	return int64(l1.Id)<<32 | int64(uint32(l2.Id))
}

const numShards = 16

// shard is a single partition of the dedup structure: a red-black tree keyed by the
// packed (a.Id, b.Id) pair, following the same github.com/emirpasic/gods/trees/redblacktree
// usage as the adapted sweep-line status structure, here repurposed from an ordered
// sweep-line membership set to a concurrent-safe candidate-pair dedup set.
type shard struct {
	mu   sync.Mutex
	tree *rbt.Tree
}

func newShards() [numShards]*shard {
	var shards [numShards]*shard
	for i := range shards {
		shards[i] = &shard{tree: rbt.NewWith(utils.Int64Comparator)}
	}
	return shards
}

// insert records a candidate pair under its dedup key. A key collision between two
// distinct segment pairs would mean segment.Ordered disagreed with itself between calls,
// or two segments shared an Id — either way, every leaf walk would have produced the
// identical Pair for the identical key, so a mismatch here is an internal invariant
// violation, not a data condition callers should expect to hit in practice.
func (s *shard) insert(key int64, p Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, found := s.tree.Get(key); found {
		ep := existing.(Pair)
		if err := linesim.CheckInvariant(ep.A == p.A && ep.B == p.B,
			"candidate dedup key %d remapped from (%d,%d) to (%d,%d)", key, ep.A.Id, ep.B.Id, p.A.Id, p.B.Id); err != nil {
			return err
		}
		return nil
	}
	s.tree.Put(key, p)
	return nil
}

// leaves collects every leaf node in the tree via an iterative walk.
func (t *Tree) leaves() []*Node {
	var out []*Node
	var stack []*Node
	if t.Root != nil {
		stack = append(stack, t.Root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf() {
			if len(n.Segments) > 0 {
				out = append(out, n)
			}
			continue
		}
		for _, child := range n.Children {
			stack = append(stack, child)
		}
	}
	return out
}

// FindCandidatePairs enumerates every pair of segments that share at least one quadtree
// leaf. Leaves are processed concurrently via errgroup, one goroutine per batch of up to
// 64 leaves; each discovered pair is deduplicated (a segment spanning multiple leaves would
// otherwise surface its neighbors once per shared leaf) against a sharded set of red-black
// trees keyed by the canonical (A.Id, B.Id) pair, so that only the shard a given key hashes
// to is ever locked. A final sequential pass merges the shards into the result slice.
func (t *Tree) FindCandidatePairs(ctx context.Context) ([]Pair, error) {
	leaves := t.leaves()
	shards := newShards()

	g, _ := errgroup.WithContext(ctx)
	const batchSize = 64
	for start := 0; start < len(leaves); start += batchSize {
		end := min(start+batchSize, len(leaves))
		batch := leaves[start:end]
		g.Go(func() error {
			for _, n := range batch {
				for i := 0; i < len(n.Segments); i++ {
					for j := i + 1; j < len(n.Segments); j++ {
						a, b := n.Segments[i], n.Segments[j]
						if a.Id == b.Id {
							continue
						}
						l1, l2 := segment.Ordered(a, b)
						key := pairKey(a, b)
						if err := shards[int(key%int64(numShards))].insert(key, Pair{A: l1, B: l2}); err != nil {
							return err
						}
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Pair
	for _, s := range shards {
		for _, v := range s.tree.Values() {
			out = append(out, v.(Pair))
		}
	}
	return out, nil
}
