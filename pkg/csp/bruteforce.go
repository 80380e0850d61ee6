// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements exhaustive enumeration of
// the full cartesian product of domains. It exists as an oracle for
// testing the real search strategies and is exponential in the number
// of variables; do not use it on problems of any size.
package csp

// solveBruteForce enumerates every complete assignment in domain order
// and keeps the ones satisfying all constraints. Unlike backtracking it
// does no pruning at all, which makes it an independent cross-check.
func solveBruteForce(p *CSP, opts *Options) *Result {
	var solutions []Assignment
	enumerate(p, Assignment{}, p.variables, opts.All, &solutions)
	if len(solutions) == 0 {
		return noSolution()
	}
	return solved(solutions...)
}

// enumerate extends the assignment over the remaining variables in
// order, testing only complete assignments. Returns true when a
// first-solution run should stop.
func enumerate(p *CSP, a Assignment, remaining []Variable, all bool, solutions *[]Assignment) bool {
	if len(remaining) == 0 {
		if p.Consistent(a) {
			*solutions = append(*solutions, a)
			return !all
		}
		return false
	}

	v := remaining[0]
	for _, val := range p.Domain(v) {
		if enumerate(p, a.Extend(v, val), remaining[1:], all, solutions) {
			return true
		}
	}
	return false
}
