// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements depth-first backtracking
// search with pluggable variable-selection heuristics and optional
// interleaved AC-3 inference.
package csp

// VariableSelector chooses the next variable to assign during
// backtracking. It receives the current (possibly inference-shrunk)
// problem and the unassigned variables, and returns the chosen variable
// plus the remaining list. The inputs must not be modified.
//
// TakeHead and MinimumRemainingValues are the built-in selectors;
// callers may supply their own.
type VariableSelector func(p *CSP, unassigned []Variable) (Variable, []Variable)

// TakeHead selects the next variable in input order. This is the
// default selector.
func TakeHead(p *CSP, unassigned []Variable) (Variable, []Variable) {
	return unassigned[0], unassigned[1:]
}

// MinimumRemainingValues selects the unassigned variable with the
// smallest current domain, the classic MRV (fail-first) heuristic.
// Ties break deterministically in favor of the variable that comes
// first in the unassigned list, which preserves original declaration
// order rather than inheriting incidental map iteration order.
func MinimumRemainingValues(p *CSP, unassigned []Variable) (Variable, []Variable) {
	bestIdx := 0
	bestSize := len(p.Domain(unassigned[0]))
	for i := 1; i < len(unassigned); i++ {
		if size := len(p.Domain(unassigned[i])); size < bestSize {
			bestIdx = i
			bestSize = size
		}
	}

	rest := make([]Variable, 0, len(unassigned)-1)
	rest = append(rest, unassigned[:bestIdx]...)
	rest = append(rest, unassigned[bestIdx+1:]...)
	return unassigned[bestIdx], rest
}

// backtracker carries the search configuration through the recursion.
type backtracker struct {
	selector  VariableSelector
	infer     bool
	all       bool
	solutions []Assignment
}

// solveBacktracking runs depth-first search over the problem, assigning
// one variable per recursion level. Values are tried in raw domain
// order. Exhausting the search space without a solution is a proof of
// unsatisfiability.
func solveBacktracking(p *CSP, opts *Options) *Result {
	b := &backtracker{
		selector: opts.Selector,
		infer:    opts.AC3,
		all:      opts.All,
	}
	if b.selector == nil {
		b.selector = TakeHead
	}

	b.step(p, Assignment{}, p.Variables())

	if len(b.solutions) == 0 {
		return noSolution()
	}
	return solved(b.solutions...)
}

// step tries every value of one variable and recurses. It returns true
// when the search should stop because a first-solution run succeeded.
func (b *backtracker) step(p *CSP, a Assignment, unassigned []Variable) bool {
	if len(unassigned) == 0 {
		b.solutions = append(b.solutions, a)
		return !b.all
	}

	v, rest := b.selector(p, unassigned)
	for _, val := range p.Domain(v) {
		next := a.Extend(v, val)
		if !p.Consistent(next) {
			continue
		}

		childCSP, childA, childRest := p, next, rest
		if b.infer {
			var ok bool
			childCSP, childA, childRest, ok = ac3Infer(p, next, rest)
			if !ok {
				// Inference drove a domain empty: this branch cannot
				// succeed, try the next candidate value.
				continue
			}
			// Folded singletons can violate constraints AC-3 does not
			// propagate (arity > 2); re-check before descending.
			if len(childA) > len(next) && !childCSP.Consistent(childA) {
				continue
			}
		}

		if b.step(childCSP, childA, childRest) {
			return true
		}
	}
	return false
}
