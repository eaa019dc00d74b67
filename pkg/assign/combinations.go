package assign

// combinations visits every combination (not permutation) of exactly k items,
// drawn without replacement and in the order the items are given. An item
// rejected by admissible at the moment it would enter the combination is
// skipped along with every combination containing it, so capacity pruning
// happens during generation rather than after it. The slice passed to visit
// is reused between calls and must not be retained.
func combinations(items []string, k uint64, admissible func(item string) bool, visit func(combination []string)) {
	current := make([]string, 0, k)
	combine(items, k, 0, current, admissible, visit)
}

func combine(
	items []string,
	k uint64,
	start int,
	current []string,
	admissible func(item string) bool,
	visit func(combination []string)) {

	if uint64(len(current)) == k {
		visit(current)
		return
	}

	for i := start; i < len(items); i++ {
		if !admissible(items[i]) {
			continue
		}
		current = append(current, items[i])
		combine(items, k, i+1, current, admissible, visit)
		current = current[:len(current)-1]
	}
}
