package engine

// MatchCount returns how many of the chosen numbers appear among the winning
// numbers. Pure and order-independent; the result is bounded by the smaller
// set's cardinality.
func MatchCount(chosen, winning NumberSet) int {
	drawn := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		drawn[n] = struct{}{}
	}

	matches := 0
	for _, n := range chosen {
		if _, ok := drawn[n]; ok {
			matches++
		}
	}
	return matches
}
