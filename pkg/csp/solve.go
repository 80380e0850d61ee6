// Package csp provides a general-purpose finite-domain constraint
// satisfaction engine. This file implements the top-level solve
// dispatcher and its configuration, following the package's
// options-struct-with-defaults convention.
package csp

import (
	"fmt"
	"math/rand/v2"
)

// Method selects the search strategy used by Solve.
type Method int

const (
	// MethodBacktracking is depth-first search with optional embedded
	// AC-3 inference. The default.
	MethodBacktracking Method = iota

	// MethodMinConflicts is randomized local repair with tabu memory.
	// Incomplete: failure is not a proof of unsatisfiability.
	MethodMinConflicts

	// MethodAC3 runs AC-3 preprocessing and feeds the reduced problem
	// into backtracking search.
	MethodAC3

	// MethodBruteForce exhaustively enumerates all complete
	// assignments. Exponential; oracle and testing use only.
	MethodBruteForce
)

// String returns the method name in snake_case.
func (m Method) String() string {
	switch m {
	case MethodBacktracking:
		return "backtracking"
	case MethodMinConflicts:
		return "min_conflicts"
	case MethodAC3:
		return "ac3"
	case MethodBruteForce:
		return "brute_force"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name, as produced by Method.String, back to
// its Method. Used by front-ends that take the method as text.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "backtracking":
		return MethodBacktracking, nil
	case "min_conflicts":
		return MethodMinConflicts, nil
	case "ac3":
		return MethodAC3, nil
	case "brute_force":
		return MethodBruteForce, nil
	default:
		return 0, fmt.Errorf("csp: unknown method %q", name)
	}
}

// Options configures a Solve run. The zero value is usable and means:
// backtracking, first solution only, no embedded inference, TakeHead
// selection, 10000 min-conflicts iterations, random initial state,
// unbounded tabu memory, and a freshly seeded random source.
type Options struct {
	// Method selects the search strategy.
	Method Method

	// All requests every solution instead of the first. Honored by
	// backtracking (with or without AC-3 preprocessing) and brute
	// force; min-conflicts produces at most one solution by nature.
	All bool

	// AC3 enables the incremental inference step inside backtracking:
	// after each consistent extension, domains of the remaining
	// variables are reduced and forced singletons are folded into the
	// assignment. Branches whose inference empties a domain are
	// abandoned immediately.
	AC3 bool

	// Selector is the variable-ordering heuristic for backtracking.
	// Nil means TakeHead.
	Selector VariableSelector

	// MaxIterations is the min-conflicts iteration ceiling. Zero or
	// negative means the default of 10000.
	MaxIterations int

	// OptimizeInitialState makes min-conflicts start from a greedy
	// minimum-conflict construction instead of a random assignment.
	OptimizeInitialState bool

	// TabuDepth bounds the min-conflicts tabu memory. Zero means
	// unbounded.
	TabuDepth int

	// Rand is the random source consumed by min-conflicts. Solvers
	// never touch global randomness: supply a seeded source here for
	// reproducible runs, or leave nil for a freshly seeded one. Each
	// concurrent solver instance should own its own source.
	Rand *rand.Rand
}

// DefaultMaxIterations is the min-conflicts iteration ceiling applied
// when Options.MaxIterations is unset.
const DefaultMaxIterations = 10000

// DefaultOptions returns the default solve configuration.
func DefaultOptions() *Options {
	return &Options{
		Method:        MethodBacktracking,
		MaxIterations: DefaultMaxIterations,
	}
}

// rng returns the configured random source, or a freshly seeded one.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// normalized returns options with defaults filled in, leaving the
// caller's struct untouched.
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}
	next := *o
	if next.MaxIterations <= 0 {
		next.MaxIterations = DefaultMaxIterations
	}
	return &next
}

// Solve finds assignments satisfying every constraint of the problem,
// using the strategy selected by the options (nil means defaults).
//
// When AC-3 preprocessing is combined with a follow-on search
// (MethodAC3): a NoSolution outcome short-circuits without invoking
// search, a fully solved outcome is still handed to the search (which
// trivially re-derives the unique assignment from the singleton
// domains), and a merely reduced outcome feeds the shrunk problem into
// backtracking.
func Solve(p *CSP, opts *Options) *Result {
	opts = opts.normalized()

	switch opts.Method {
	case MethodBacktracking:
		return solveBacktracking(p, opts)
	case MethodMinConflicts:
		return solveMinConflicts(p, opts)
	case MethodAC3:
		pre := AC3(p)
		if pre.Status == StatusNoSolution {
			return pre
		}
		return solveBacktracking(pre.CSP, opts)
	case MethodBruteForce:
		return solveBruteForce(p, opts)
	default:
		panic(fmt.Sprintf("csp: unknown method %d", opts.Method))
	}
}
