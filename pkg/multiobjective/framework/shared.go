package framework

// NonDominatedSort splits points into fronts of indices. Front 0 holds the
// points no other point dominates, front 1 those dominated only by front 0,
// and so on.
func NonDominatedSort(points []ObjectiveSpacePoint) [][]int {
	var fronts [][]int
	dominated := make([][]int, len(points))
	domCount := make([]int, len(points))

	// Calculate domination for each point
	for i := range points {
		for j := range points {
			if i == j {
				continue
			}
			if Dominates(points[i], points[j]) {
				dominated[i] = append(dominated[i], j)
			} else if Dominates(points[j], points[i]) {
				domCount[i]++
			}
		}
	}

	// Find first front
	var current []int
	for i := range points {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	// Find subsequent fronts
	for len(current) > 0 {
		fronts = append(fronts, current)
		var next []int
		for _, idx := range current {
			for _, d := range dominated[idx] {
				domCount[d]--
				if domCount[d] == 0 {
					next = append(next, d)
				}
			}
		}
		current = next
	}

	return fronts
}

// Ranks returns, for every point, the index of the front it belongs to.
func Ranks(points []ObjectiveSpacePoint) []int {
	ranks := make([]int, len(points))
	for rank, front := range NonDominatedSort(points) {
		for _, idx := range front {
			ranks[idx] = rank
		}
	}
	return ranks
}

// Dominates checks if point a dominates point b when every objective is
// minimised.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}
