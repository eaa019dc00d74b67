package assign

import "math"

// tracker accumulates the assignments achieving the lowest unassigned count
// seen so far. All updates go through record, which is the single routine a
// parallel search would have to wrap in a critical section together with any
// read of bound.
type tracker struct {
	best    uint64
	results *resultSet
}

func newTracker() *tracker {
	return &tracker{
		best:    math.MaxUint64,
		results: newResultSet(),
	}
}

// bound is the unassigned count a branch must not exceed to stay alive.
func (t *tracker) bound() uint64 {
	return t.best
}

func (t *tracker) record(assignment Assignment) {
	score := uint64(len(assignment.Unassigned))
	switch {
	case score < t.best:
		t.best = score
		t.results = newResultSet()
		t.results.add(assignment)
	case score == t.best:
		t.results.add(assignment)
	}
	// score > best is unreachable when branches prune against bound, but a
	// worse leaf must still be dropped rather than recorded
}
