// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements the partial-assignment
// consistency utilities shared by every search strategy: admissibility
// checking, conflict counting, and conflicted-variable detection.
package csp

// Consistent reports whether the assignment is admissible for the
// problem: every constraint whose full argument set is bound by the
// assignment must hold. Constraints with any unbound argument are
// vacuously satisfied - a partial assignment cannot violate them yet.
//
// For a complete assignment this is exactly the solution test.
func (p *CSP) Consistent(a Assignment) bool {
	for _, c := range p.constraints {
		if !a.Bound(c.Variables()) {
			continue
		}
		if !c.Check(a) {
			return false
		}
	}
	return true
}

// Conflicts counts the constraints violated by the assignment.
// Constraints with unbound arguments are skipped, mirroring Consistent.
// Min-conflicts uses this as its objective function.
func (p *CSP) Conflicts(a Assignment) int {
	count := 0
	for _, c := range p.constraints {
		if !a.Bound(c.Variables()) {
			continue
		}
		if !c.Check(a) {
			count++
		}
	}
	return count
}

// ConflictedVariables returns, in declaration order, the variables that
// participate in at least one violated constraint under the assignment.
// Each variable appears at most once.
func (p *CSP) ConflictedVariables(a Assignment) []Variable {
	inConflict := make(map[Variable]bool)
	for _, c := range p.constraints {
		if !a.Bound(c.Variables()) {
			continue
		}
		if !c.Check(a) {
			for _, v := range c.Variables() {
				inConflict[v] = true
			}
		}
	}

	var vars []Variable
	for _, v := range p.variables {
		if inConflict[v] {
			vars = append(vars, v)
		}
	}
	return vars
}
