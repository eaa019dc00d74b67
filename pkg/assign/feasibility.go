package assign

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// minSizePossible reports whether every group's minimum fits under its
// maximum. A violation makes the whole problem infeasible before any person
// is considered.
func minSizePossible(groups map[string]GroupConstraint) bool {
	return !lo.SomeBy(lo.Values(groups), func(constraint GroupConstraint) bool {
		return constraint.MaxSize < constraint.MinSize
	})
}

type seat struct {
	group string
	index uint64
}

type personSlot struct {
	person string
	index  uint64
}

// minSeatsCoverable checks a relaxation of the minimum-size constraints: each
// group with a minimum contributes that many seats, each person contributes
// one slot per membership they can hold (capped by membershipCap and by the
// number of groups needing seats), and a seat may be matched to a slot of an
// eligible person. If even the largest bipartite matching leaves a seat
// uncovered, no leaf of the search can satisfy every minimum and the search
// is skipped entirely. The relaxation ignores that a person fills at most one
// seat per group, so it can only under-reject, never over-reject: the result
// set is unchanged, only the dead search avoided.
func minSeatsCoverable(input ModelInput) bool {
	seatGroups := lo.PickBy(input.Groups, func(_ string, constraint GroupConstraint) bool {
		return constraint.MinSize > 0
	})
	if len(seatGroups) == 0 {
		return true
	}

	seats := make([]any, 0)
	for groupName, constraint := range seatGroups {
		for i := uint64(0); i < constraint.MinSize; i++ {
			seats = append(seats, seat{group: groupName, index: i})
		}
	}

	eligible := make(map[string]map[string]bool, len(input.People))
	slots := make([]any, 0, len(input.People))
	for _, person := range input.People {
		eligible[person.Name] = lo.SliceToMap(person.AllowedGroups, func(groupName string) (string, bool) {
			return groupName, true
		})

		quota := min(person.MaxGroups, uint64(len(seatGroups)))
		for i := uint64(0); i < quota; i++ {
			slots = append(slots, personSlot{person: person.Name, index: i})
		}
	}

	neighbors := func(seatAny any, slotAny any) (bool, error) {
		requiredSeat := seatAny.(seat)
		slot := slotAny.(personSlot)
		return eligible[slot.person][requiredSeat.group], nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(seats, slots, neighbors)
	if err != nil {
		return true // the relaxation is advisory, never reject on its own failure
	}

	matching := graph.LargestMatching()
	return len(matching) == len(seats)
}
