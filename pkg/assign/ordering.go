package assign

import (
	"cmp"
	"slices"
)

// sortPeople returns a copy of the people ordered for the search: fewest
// allowed groups first (the most constrained people are decided early, so a
// dead end is hit with minimal wasted work), ties broken by larger membership
// quota. The order only affects how fast solutions are found, never which
// solutions exist.
func sortPeople(people []Person) []Person {
	sorted := make([]Person, len(people))
	copy(sorted, people)
	slices.SortStableFunc(sorted, func(a, b Person) int {
		if comparison := cmp.Compare(len(a.AllowedGroups), len(b.AllowedGroups)); comparison != 0 {
			return comparison
		}
		return cmp.Compare(b.MaxGroups, a.MaxGroups)
	})
	return sorted
}
