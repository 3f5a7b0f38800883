package wpm

// Frontier returns the names of the Pareto-optimal alternatives, in input order.
// An alternative is dominated if another is at least as good on every criterion
// (>= on benefit, <= on cost) and strictly better on at least one.
// O(n^2) dominance check. Returns nil when the values do not match types.
func Frontier(alternatives []Alternative, types []CriterionType) []string {
	for _, alt := range alternatives {
		if len(alt.Values) != len(types) {
			return nil
		}
	}

	var frontier []string
	for i := range alternatives {
		dominated := false
		for j := range alternatives {
			if i == j {
				continue
			}
			if dominates(alternatives[j], alternatives[i], types) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, alternatives[i].Name)
		}
	}
	return frontier
}

// dominates returns true if a dominates b.
func dominates(a, b Alternative, types []CriterionType) bool {
	strictlyBetter := false
	for j, t := range types {
		av, bv := a.Values[j], b.Values[j]
		if t.IsCost() {
			av, bv = -av, -bv
		}
		if av < bv {
			return false
		}
		if av > bv {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}
