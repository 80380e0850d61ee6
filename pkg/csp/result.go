// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file defines the status and result types
// shared by the propagation and search entry points.
package csp

// Status classifies the outcome of a solve or propagation run.
type Status int

const (
	// StatusSolved means at least one complete, consistent assignment
	// was found. For AC-3 it means every domain was reduced to a
	// singleton, which pins the unique assignment.
	StatusSolved Status = iota

	// StatusReduced is produced only by the standalone AC-3 entry
	// point: domains were pruned but the problem is neither solved nor
	// proven unsatisfiable.
	StatusReduced

	// StatusNoSolution means no satisfying assignment was produced.
	// From AC-3 or backtracking this is a proof of unsatisfiability.
	// From min-conflicts it only means the iteration budget ran out -
	// a heuristic failure, not a proof. Callers must not conflate the
	// two; the solving method determines which reading applies.
	StatusNoSolution
)

// String returns the status tag in snake_case.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusReduced:
		return "reduced"
	case StatusNoSolution:
		return "no_solution"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of a solver or propagation run.
//
// Exactly one of the payload fields is meaningful, keyed by Status:
// Assignments for StatusSolved, CSP for StatusReduced, neither for
// StatusNoSolution.
type Result struct {
	// Status classifies the outcome.
	Status Status

	// Assignments holds the solutions found, in discovery order.
	// Single-solution runs produce exactly one entry.
	Assignments []Assignment

	// CSP is the domain-reduced problem, populated by the standalone
	// AC-3 entry point for StatusSolved and StatusReduced outcomes.
	CSP *CSP
}

// Solved reports whether the run produced at least one solution.
func (r *Result) Solved() bool {
	return r.Status == StatusSolved
}

// Assignment returns the first solution, or nil if there is none.
func (r *Result) Assignment() Assignment {
	if len(r.Assignments) == 0 {
		return nil
	}
	return r.Assignments[0]
}

func solved(assignments ...Assignment) *Result {
	return &Result{Status: StatusSolved, Assignments: assignments}
}

func noSolution() *Result {
	return &Result{Status: StatusNoSolution}
}
