// Package collision turns quadtree candidate pairs into classified collision events,
// orders them canonically, and resolves them into updated segment velocities.
package collision

import (
	"github.com/cdillond/linesim/geomkernel"
	"github.com/cdillond/linesim/segment"
)

// Event is a single classified collision between two segments within a frame's timestep.
// A and B always satisfy segment.Compare(A, B) < 0.
type Event struct {
	A, B *segment.Segment
	Kind geomkernel.Classification
}

// Key returns the canonical ordering key used to sort and deduplicate events, as the two
// values A.Id and B.Id.
func (e Event) Key() (int, int) {
	return e.A.Id, e.B.Id
}

// Less implements the ordering consumed by the event list's backing btree.BTreeG: events
// are ordered by A.Id, then B.Id, matching segment.Compare's own tie-break order so that
// a frame's resolution order is stable regardless of the order candidate pairs were
// discovered in.
func Less(a, b Event) bool {
	aID, aID2 := a.Key()
	bID, bID2 := b.Key()
	if aID != bID {
		return aID < bID
	}
	return aID2 < bID2
}
