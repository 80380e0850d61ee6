// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements the AC-3 propagation
// engine: standalone domain reduction to node and arc consistency, and
// the incremental variant used as an inference step inside
// backtracking search.
//
// # How propagation works
//
// AC-3 maintains a deduplicating worklist of constraints, seeded with
// every constraint in the problem:
//
//  1. Pop a constraint from the worklist.
//  2. Arity 1: filter the variable's domain to values satisfying the
//     predicate alone (node consistency).
//  3. Arity 2: arc-reduce each side against the other - keep a value
//     only if some value in the opposite domain is compatible with it.
//  4. Whenever a domain shrinks, re-enqueue every other constraint on
//     that variable (the current one excluded); constraints already
//     queued are not queued twice.
//  5. Stop when the worklist is empty.
//
// Constraints of arity greater than two are skipped: propagation is
// merely incomplete for them, and they remain enforced by the
// consistency check during search.
package csp

import "slices"

// worklist is a FIFO queue of constraint indexes that never holds the
// same index twice. Re-enqueueing a queued constraint is a no-op.
type worklist struct {
	queue  []int
	queued []bool
}

func newWorklist(n int) *worklist {
	w := &worklist{
		queue:  make([]int, 0, n),
		queued: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		w.push(i)
	}
	return w
}

func (w *worklist) push(i int) {
	if w.queued[i] {
		return
	}
	w.queued[i] = true
	w.queue = append(w.queue, i)
}

func (w *worklist) pop() (int, bool) {
	if len(w.queue) == 0 {
		return 0, false
	}
	i := w.queue[0]
	w.queue = w.queue[1:]
	w.queued[i] = false
	return i, true
}

// nodeReduce filters the domain to values satisfying the unary
// constraint on its own.
func nodeReduce(c Constraint, v Variable, dom Domain) Domain {
	kept := make(Domain, 0, len(dom))
	for _, val := range dom {
		if c.Check(Assignment{v: val}) {
			kept = append(kept, val)
		}
	}
	return kept
}

// arcReduce filters x's domain against y's: a value vx survives only
// if some vy in y's domain satisfies the constraint for the pair.
func arcReduce(c Constraint, x, y Variable, domX, domY Domain) Domain {
	kept := make(Domain, 0, len(domX))
	for _, vx := range domX {
		supported := false
		for _, vy := range domY {
			if c.Check(Assignment{x: vx, y: vy}) {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, vx)
		}
	}
	return kept
}

// AC3 reduces the problem's domains to node and arc consistency and
// classifies the outcome over the final domains:
//
//   - any domain empty: StatusNoSolution - the problem is proven
//     unsatisfiable, no search needed
//   - every domain a singleton: StatusSolved - the unique per-variable
//     values form the solution
//   - otherwise: StatusReduced - the returned Result.CSP carries the
//     pruned problem for a follow-on search
//
// AC-3 is sound (it never removes a value that participates in a full
// solution) and idempotent (re-running it on its own output changes
// nothing). The input problem is not modified.
func AC3(p *CSP) *Result {
	domains := p.Domains()
	if !reduceToFixpoint(p, domains) {
		return noSolution()
	}

	reduced := p.WithDomains(domains)
	allSingleton := true
	for _, v := range p.variables {
		if len(domains[v]) != 1 {
			allSingleton = false
			break
		}
	}
	if allSingleton {
		a := make(Assignment, len(p.variables))
		for _, v := range p.variables {
			a[v] = domains[v][0]
		}
		return &Result{Status: StatusSolved, Assignments: []Assignment{a}, CSP: reduced}
	}
	return &Result{Status: StatusReduced, CSP: reduced}
}

// reduceToFixpoint runs the AC-3 worklist loop over the given working
// domains, mutating the map in place. Returns false as soon as any
// domain is driven empty.
func reduceToFixpoint(p *CSP, domains map[Variable]Domain) bool {
	work := newWorklist(len(p.constraints))

	// shrink installs a reduced domain and re-enqueues the other
	// constraints on the variable. Returns false on an empty domain.
	shrink := func(v Variable, next Domain, self int) bool {
		domains[v] = next
		if len(next) == 0 {
			return false
		}
		for _, j := range p.constraintsOn(v) {
			if j != self {
				work.push(j)
			}
		}
		return true
	}

	for {
		i, ok := work.pop()
		if !ok {
			return true
		}
		c := p.constraints[i]
		args := c.Variables()

		switch len(args) {
		case 1:
			v := args[0]
			next := nodeReduce(c, v, domains[v])
			if len(next) != len(domains[v]) {
				if !shrink(v, next, i) {
					return false
				}
			}
		case 2:
			x, y := args[0], args[1]
			nextX := arcReduce(c, x, y, domains[x], domains[y])
			if len(nextX) != len(domains[x]) {
				if !shrink(x, nextX, i) {
					return false
				}
			}
			nextY := arcReduce(c, y, x, domains[y], domains[x])
			if len(nextY) != len(domains[y]) {
				if !shrink(y, nextY, i) {
					return false
				}
			}
		default:
			// Arity 0 or >2: not propagated. Higher-arity constraints
			// stay enforced by the search-time consistency check.
		}
	}
}

// ac3Infer is the inference entry point embedded in backtracking. It
// runs the same node/arc reduction with every assigned variable pinned
// to a singleton of its assigned value. Any unassigned variable whose
// domain is driven to a single value is folded into the assignment and
// dropped from the unassigned list; any domain driven empty reports
// failure immediately so the caller can backtrack instead of reducing
// further.
//
// On success it returns the domain-reduced problem, the extended
// assignment, and the remaining unassigned variables. The inputs are
// not modified.
func ac3Infer(p *CSP, a Assignment, unassigned []Variable) (*CSP, Assignment, []Variable, bool) {
	domains := p.Domains()
	for v, val := range a {
		domains[v] = Domain{val}
	}

	if !reduceToFixpoint(p, domains) {
		return nil, nil, nil, false
	}

	nextA := a.Clone()
	nextUnassigned := make([]Variable, 0, len(unassigned))
	for _, v := range unassigned {
		if dom := domains[v]; len(dom) == 1 {
			nextA[v] = dom[0]
		} else {
			nextUnassigned = append(nextUnassigned, v)
		}
	}

	// The folded singletons may themselves violate a now fully bound
	// constraint that AC-3 could not propagate (arity > 2); the caller
	// re-checks admissibility before recursing.
	return p.WithDomains(domains), nextA, slices.Clip(nextUnassigned), true
}
