package assign

import (
	"slices"

	"github.com/samber/lo"
)

// eligibleGroups returns the person's allowed groups restricted to groups
// that exist in the constraint mapping, deduplicated and in lexicographic
// order. The fixed order keeps combination generation deterministic.
func eligibleGroups(person Person, groups map[string]GroupConstraint) []string {
	eligible := lo.Uniq(lo.Filter(person.AllowedGroups, func(groupName string, _ int) bool {
		_, ok := groups[groupName]
		return ok
	}))
	slices.Sort(eligible)
	return eligible
}

func meetsMinSizes(state *searchState, groups map[string]GroupConstraint) bool {
	return !lo.SomeBy(lo.Entries(groups), func(entry lo.Entry[string, GroupConstraint]) bool {
		return uint64(len(state.members[entry.Key])) < entry.Value.MinSize
	})
}

// verify checks a completed assignment against the input's invariants:
// - every populated group exists and its size is within [MinSize, MaxSize]
// - every group of the input meets its minimum (an omitted group counts as empty)
// - every member is an input person allowed into that group, at most once per group
// - nobody holds more memberships than their quota (at most one when exclusive)
// - when exclusive, assigned and unassigned people partition the input people
func verify(assignment Assignment, input ModelInput, exclusive bool) bool {
	peopleByName := lo.SliceToMap(input.People, func(person Person) (string, Person) {
		return person.Name, person
	})

	memberships := make(map[string]uint64, len(input.People))

	for groupName, members := range assignment.Groups {
		constraint, ok := input.Groups[groupName]
		if !ok || uint64(len(members)) > constraint.MaxSize {
			return false
		}

		seen := make(map[string]bool, len(members))
		for _, memberName := range members {
			person, known := peopleByName[memberName]
			if !known || seen[memberName] || !slices.Contains(person.AllowedGroups, groupName) {
				return false
			}
			seen[memberName] = true
			memberships[memberName]++
		}
	}

	for groupName, constraint := range input.Groups {
		if uint64(len(assignment.Groups[groupName])) < constraint.MinSize {
			return false
		}
	}

	for personName, count := range memberships {
		quota := peopleByName[personName].MaxGroups
		if exclusive {
			quota = min(quota, 1)
		}
		if count > quota {
			return false
		}
	}

	if exclusive {
		accounted := make(map[string]bool, len(input.People))
		for personName := range memberships {
			accounted[personName] = true
		}
		for _, personName := range assignment.Unassigned {
			if accounted[personName] {
				return false
			}
			accounted[personName] = true
		}
		return !lo.SomeBy(input.People, func(person Person) bool { return !accounted[person.Name] })
	}

	return len(assignment.Unassigned) == 0
}
