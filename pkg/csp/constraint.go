// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file defines the Constraint interface, the
// predicate-backed concrete constraint, and convenience constructors
// for the common unary and binary forms.
package csp

import (
	"fmt"
	"strings"
)

// Constraint restricts the values an ordered set of variables may take
// simultaneously. Arity is unconstrained in representation, but only
// unary and binary constraints participate in AC-3 propagation; higher
// arities are still enforced by the consistency check during search.
//
// Constraints are immutable after creation and safe for concurrent use.
type Constraint interface {
	// Variables returns the variables this constraint restricts, in
	// argument order. The predicate is evaluated against values
	// extracted in exactly this order.
	Variables() []Variable

	// Check evaluates the constraint against the assignment. Every
	// argument variable must be bound; calling Check with an unbound
	// argument is a contract violation and its behavior is undefined.
	// Callers that hold partial assignments must pre-filter with
	// Assignment.Bound.
	Check(a Assignment) bool

	// String returns a human-readable representation.
	String() string
}

// FuncConstraint is the default Constraint implementation: an ordered
// argument list plus a boolean predicate over the argument values.
type FuncConstraint struct {
	vars []Variable
	pred func(values []Value) bool
	name string
}

// NewConstraint builds a constraint from an argument list and a
// predicate. The predicate receives the assigned values in argument
// order and must be pure: no side effects, same answer for same values.
func NewConstraint(vars []Variable, pred func(values []Value) bool) *FuncConstraint {
	return &FuncConstraint{vars: vars, pred: pred, name: "constraint"}
}

// Named attaches a descriptive name used by String, and returns the
// receiver for chaining during problem construction.
func (c *FuncConstraint) Named(name string) *FuncConstraint {
	c.name = name
	return c
}

// Variables returns the constraint's arguments in order.
// Implements the Constraint interface.
func (c *FuncConstraint) Variables() []Variable {
	return c.vars
}

// Check extracts the argument values in order and applies the
// predicate. Implements the Constraint interface.
func (c *FuncConstraint) Check(a Assignment) bool {
	values := make([]Value, len(c.vars))
	for i, v := range c.vars {
		values[i] = a[v]
	}
	return c.pred(values)
}

// String returns the constraint's name and argument list.
func (c *FuncConstraint) String() string {
	args := make([]string, len(c.vars))
	for i, v := range c.vars {
		args[i] = string(v)
	}
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(args, ","))
}

// Unary builds a single-variable constraint from a predicate over that
// variable's value. Unary constraints are propagated by AC-3 as node
// consistency.
func Unary(v Variable, pred func(value Value) bool) *FuncConstraint {
	c := NewConstraint([]Variable{v}, func(values []Value) bool {
		return pred(values[0])
	})
	return c.Named("unary")
}

// Binary builds a two-variable constraint from a predicate over the
// pair of values, in argument order. Binary constraints are propagated
// by AC-3 as arc consistency.
func Binary(x, y Variable, pred func(vx, vy Value) bool) *FuncConstraint {
	c := NewConstraint([]Variable{x, y}, func(values []Value) bool {
		return pred(values[0], values[1])
	})
	return c.Named("binary")
}

// Equals constrains a variable to a fixed value, compared with ==.
func Equals(v Variable, value Value) *FuncConstraint {
	c := Unary(v, func(actual Value) bool {
		return actual == value
	})
	return c.Named(fmt.Sprintf("eq[%v]", value))
}

// NotEquals constrains two variables to take different values,
// compared with ==.
func NotEquals(x, y Variable) *FuncConstraint {
	c := Binary(x, y, func(vx, vy Value) bool {
		return vx != vy
	})
	return c.Named("neq")
}

// AllDifferent expands to the pairwise inequality constraints requiring
// every listed variable to take a distinct value: exactly k(k-1)/2
// constraints for k variables, one per unordered pair. Zero or one
// variables yield no constraints.
func AllDifferent(vars []Variable) []Constraint {
	if len(vars) < 2 {
		return nil
	}
	constraints := make([]Constraint, 0, len(vars)*(len(vars)-1)/2)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			constraints = append(constraints, NotEquals(vars[i], vars[j]))
		}
	}
	return constraints
}
