package csp

// Shared fixtures for the package tests: integer range domains and a
// few well-known small problems.

// rangeDomain returns the ordered integer domain lo..hi inclusive.
func rangeDomain(lo, hi int) Domain {
	d := make(Domain, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		d = append(d, v)
	}
	return d
}

// intsOf converts a domain of int values back to []int for assertions.
func intsOf(d Domain) []int {
	out := make([]int, len(d))
	for i, v := range d {
		out[i] = v.(int)
	}
	return out
}

// australiaProblem is the classic map-coloring instance: seven
// territories, three colors, adjacent territories must differ.
func australiaProblem() *CSP {
	vars := []Variable{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	colors := Domain{"red", "green", "blue"}
	domains := make(map[Variable]Domain, len(vars))
	for _, v := range vars {
		domains[v] = colors
	}
	adjacent := [][2]Variable{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
		{"NSW", "V"},
	}
	constraints := make([]Constraint, 0, len(adjacent))
	for _, pair := range adjacent {
		constraints = append(constraints, NotEquals(pair[0], pair[1]))
	}
	return New(vars, domains, constraints)
}

// queensProblem builds N-Queens with one variable per row holding the
// queen's column. Queens must not share a column or a diagonal.
func queensProblem(n int) *CSP {
	vars := make([]Variable, n)
	domains := make(map[Variable]Domain, n)
	for i := range vars {
		vars[i] = Variable(rune('a' + i))
		domains[vars[i]] = rangeDomain(0, n-1)
	}

	var constraints []Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rowGap := j - i
			constraints = append(constraints, Binary(vars[i], vars[j], func(vi, vj Value) bool {
				ci, cj := vi.(int), vj.(int)
				if ci == cj {
					return false
				}
				diff := cj - ci
				if diff < 0 {
					diff = -diff
				}
				return diff != rowGap
			}))
		}
	}
	return New(vars, domains, constraints)
}

// unsatProblem is a tiny problem with no solution: two variables
// forced equal to 1 but also required to differ.
func unsatProblem() *CSP {
	vars := []Variable{"x", "y"}
	domains := map[Variable]Domain{
		"x": rangeDomain(1, 2),
		"y": rangeDomain(1, 2),
	}
	constraints := []Constraint{
		Equals("x", 1),
		Equals("y", 1),
		NotEquals("x", "y"),
	}
	return New(vars, domains, constraints)
}

// assignmentKey flattens an assignment into a comparable string so
// solution sets can be compared independent of discovery order.
func assignmentKey(a Assignment) string {
	return a.String()
}

// solutionSet collects assignment keys from a result.
func solutionSet(r *Result) map[string]bool {
	set := make(map[string]bool, len(r.Assignments))
	for _, a := range r.Assignments {
		set[assignmentKey(a)] = true
	}
	return set
}
