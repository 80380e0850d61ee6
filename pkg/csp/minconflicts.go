// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements min-conflicts local search:
// an incomplete, randomized repair strategy that operates on complete
// assignments and uses a tabu list as anti-cycling memory.
package csp

import (
	"math/rand/v2"
	"sort"
)

// tabuPair is one recently tried (variable, value) move.
type tabuPair struct {
	v   Variable
	val Value
}

// tabuList is the short-term memory of recent moves, most recent
// first. A depth of zero means unbounded growth for the run's
// duration; a positive depth evicts the oldest entries beyond it.
type tabuList struct {
	entries []tabuPair
	depth   int
}

func (t *tabuList) push(v Variable, val Value) {
	t.entries = append([]tabuPair{{v: v, val: val}}, t.entries...)
	if t.depth > 0 && len(t.entries) > t.depth {
		t.entries = t.entries[:t.depth]
	}
}

func (t *tabuList) contains(v Variable, val Value) bool {
	for _, e := range t.entries {
		if e.v == v && e.val == val {
			return true
		}
	}
	return false
}

// solveMinConflicts runs the min-conflicts repair loop. Starting from a
// complete assignment, it repeatedly picks a random conflicted variable
// and moves it to the domain value that minimizes the resulting
// conflict count, skipping tabu moves. Exhausting the iteration budget
// yields StatusNoSolution, which here is a heuristic failure rather
// than a proof of unsatisfiability.
func solveMinConflicts(p *CSP, opts *Options) *Result {
	rng := opts.rng()

	var a Assignment
	if opts.OptimizeInitialState {
		a = greedyInitialState(p, rng)
	} else {
		a = randomInitialState(p, rng)
	}

	tabu := &tabuList{depth: opts.TabuDepth}

	for i := 0; i < opts.MaxIterations; i++ {
		conflicted := p.ConflictedVariables(a)
		if len(conflicted) == 0 {
			return solved(a)
		}

		v := conflicted[rng.IntN(len(conflicted))]
		val, ok := bestNonTabuValue(p, a, v, tabu)
		if !ok {
			// Every candidate move is tabu: take a uniformly random
			// domain value to keep the search moving.
			dom := p.Domain(v)
			val = dom[rng.IntN(len(dom))]
		}

		a = a.Extend(v, val)
		tabu.push(v, val)
	}

	return noSolution()
}

// randomInitialState assigns every variable a uniformly random value
// from its domain.
func randomInitialState(p *CSP, rng *rand.Rand) Assignment {
	a := make(Assignment, len(p.variables))
	for _, v := range p.variables {
		dom := p.Domain(v)
		a[v] = dom[rng.IntN(len(dom))]
	}
	return a
}

// greedyInitialState assigns each variable, in declaration order, the
// value minimizing conflicts against the already-assigned prefix. The
// first variable has no prefix to compare against, so it falls back to
// a uniformly random pick.
func greedyInitialState(p *CSP, rng *rand.Rand) Assignment {
	a := Assignment{}
	for _, v := range p.variables {
		dom := p.Domain(v)
		if len(a) == 0 {
			a = a.Extend(v, dom[rng.IntN(len(dom))])
			continue
		}
		a = a.Extend(v, minConflictValue(p, a, v))
	}
	return a
}

// minConflictValue returns the domain value with the fewest conflicts
// against the rest of the assignment, preferring earlier domain values
// on ties.
func minConflictValue(p *CSP, a Assignment, v Variable) Value {
	dom := p.Domain(v)
	best := dom[0]
	bestConflicts := p.Conflicts(a.Extend(v, dom[0]))
	for _, val := range dom[1:] {
		if c := p.Conflicts(a.Extend(v, val)); c < bestConflicts {
			best = val
			bestConflicts = c
		}
	}
	return best
}

// bestNonTabuValue ranks the variable's domain by resulting conflict
// count, lowest first with stable order among equals, and returns the
// best move not present in the tabu list. The second return is false
// when every domain value is tabu.
func bestNonTabuValue(p *CSP, a Assignment, v Variable, tabu *tabuList) (Value, bool) {
	dom := p.Domain(v)
	type move struct {
		val       Value
		conflicts int
	}
	moves := make([]move, len(dom))
	for i, val := range dom {
		moves[i] = move{val: val, conflicts: p.Conflicts(a.Extend(v, val))}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].conflicts < moves[j].conflicts
	})

	for _, m := range moves {
		if !tabu.contains(v, m.val) {
			return m.val, true
		}
	}
	return nil, false
}
