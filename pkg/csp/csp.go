// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file defines the core problem model:
// variables, domains, assignments, and the immutable CSP aggregate
// that every solver in the package consumes.
package csp

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Variable identifies a decision variable within a problem.
// Variables are opaque, hashable, and must be unique within a CSP.
type Variable string

// Value is a candidate value for a variable. Values are opaque to the
// engine; constraint predicates give them meaning. Helper constructors
// such as Equals and NotEquals compare values with ==, so values passed
// to those helpers must be comparable.
type Value any

// Domain is the finite, ordered sequence of candidate values for one
// variable. Order matters: backtracking search tries values left to
// right, so callers can bias search by ordering their domains.
//
// Domains are treated as immutable - solvers never modify a domain in
// place, they build new slices when pruning.
type Domain []Value

// Contains returns true if the domain holds the given value.
// Comparison uses ==, so the value must be comparable.
func (d Domain) Contains(v Value) bool {
	return slices.Contains(d, v)
}

// clone returns an independent copy of the domain.
func (d Domain) clone() Domain {
	return slices.Clone(d)
}

// String returns a human-readable representation of the domain.
// Example: "[1 2 3]".
func (d Domain) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range d {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")
	return b.String()
}

// Assignment maps variables to concrete values. An assignment may be
// partial (a subset of a problem's variables) or complete (all of them).
// Each variable is mapped at most once by construction.
//
// Solvers never mutate a caller's assignment: extension always copies.
type Assignment map[Variable]Value

// Extend returns a new assignment with the given binding added.
// The receiver is not modified. A nil receiver is treated as empty.
func (a Assignment) Extend(v Variable, val Value) Assignment {
	next := make(Assignment, len(a)+1)
	maps.Copy(next, a)
	next[v] = val
	return next
}

// Bound returns true if the assignment binds every listed variable.
func (a Assignment) Bound(vars []Variable) bool {
	for _, v := range vars {
		if _, ok := a[v]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	return maps.Clone(a)
}

// String returns the assignment in a stable, sorted form, suitable for
// test output and debugging. Example: "{x=1 y=2}".
func (a Assignment) String() string {
	keys := make([]string, 0, len(a))
	for v := range a {
		keys = append(keys, string(v))
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%v", k, a[Variable(k)])
	}
	b.WriteString("}")
	return b.String()
}

// CSP is an immutable constraint satisfaction problem: an ordered set of
// variables, a domain per variable, and an ordered set of constraints.
//
// Invariants, established at construction and preserved by every
// transformation:
//   - the domain map's keys are exactly the variable set
//   - every constraint's arguments are a subset of the variables
//
// A CSP is never mutated after construction. Solvers that prune domains
// build derived problems via WithDomains, so search branches are simply
// discarded rather than rolled back. This also makes a CSP safe to share
// across concurrent solver instances.
type CSP struct {
	// variables holds the decision variables in declaration order
	variables []Variable

	// domains maps each variable to its candidate values
	domains map[Variable]Domain

	// constraints holds all constraints in declaration order
	constraints []Constraint
}

// New constructs a CSP from variables, their domains, and constraints.
// It panics if the domain map's keys do not exactly match the variable
// list, or if a constraint references an undeclared variable. Both are
// programmer errors in problem construction, reported fail-fast rather
// than surfacing later as a missolve.
func New(variables []Variable, domains map[Variable]Domain, constraints []Constraint) *CSP {
	if len(domains) != len(variables) {
		panic(fmt.Sprintf("csp: %d variables but %d domains", len(variables), len(domains)))
	}
	declared := make(map[Variable]bool, len(variables))
	for _, v := range variables {
		if declared[v] {
			panic(fmt.Sprintf("csp: duplicate variable %q", v))
		}
		declared[v] = true
		if _, ok := domains[v]; !ok {
			panic(fmt.Sprintf("csp: variable %q has no domain", v))
		}
	}
	for _, c := range constraints {
		for _, v := range c.Variables() {
			if !declared[v] {
				panic(fmt.Sprintf("csp: constraint %v references undeclared variable %q", c, v))
			}
		}
	}

	return &CSP{
		variables:   slices.Clone(variables),
		domains:     maps.Clone(domains),
		constraints: slices.Clone(constraints),
	}
}

// Variables returns the problem's variables in declaration order.
// The returned slice must not be modified.
func (p *CSP) Variables() []Variable {
	return p.variables
}

// Domain returns the domain of the given variable. It panics if the
// variable was not declared: asking for an unknown variable's domain is
// a programmer error, never a recoverable condition.
func (p *CSP) Domain(v Variable) Domain {
	d, ok := p.domains[v]
	if !ok {
		panic(fmt.Sprintf("csp: no domain for variable %q", v))
	}
	return d
}

// Domains returns a copy of the variable-to-domain mapping. The domains
// themselves are shared; treat them as read-only.
func (p *CSP) Domains() map[Variable]Domain {
	return maps.Clone(p.domains)
}

// Constraints returns the problem's constraints in declaration order.
// The returned slice must not be modified.
func (p *CSP) Constraints() []Constraint {
	return p.constraints
}

// WithDomains returns a new CSP sharing this problem's variables and
// constraints but carrying the given domains. Variables absent from the
// override map keep their current domain. The receiver is unchanged.
func (p *CSP) WithDomains(override map[Variable]Domain) *CSP {
	next := maps.Clone(p.domains)
	for v, d := range override {
		if _, ok := p.domains[v]; !ok {
			panic(fmt.Sprintf("csp: no domain for variable %q", v))
		}
		next[v] = d
	}
	return &CSP{
		variables:   p.variables,
		domains:     next,
		constraints: p.constraints,
	}
}

// constraintsOn returns the indexes of all constraints that mention the
// variable. Shared by AC-3 worklist seeding and heuristics.
func (p *CSP) constraintsOn(v Variable) []int {
	var idxs []int
	for i, c := range p.constraints {
		if slices.Contains(c.Variables(), v) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
