package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveDefaultsToBacktracking(t *testing.T) {
	r := Solve(australiaProblem(), nil)
	require.True(t, r.Solved())
	assert.Len(t, r.Assignments, 1)
	assert.True(t, australiaProblem().Consistent(r.Assignment()))
}

func TestSolveMethodAC3ShortCircuitsOnProvenUnsat(t *testing.T) {
	r := Solve(unsatProblem(), &Options{Method: MethodAC3})
	assert.Equal(t, StatusNoSolution, r.Status)
}

func TestSolveMethodAC3HandsSolvedProblemToSearch(t *testing.T) {
	// AC-3 alone fully solves this problem; the follow-on search must
	// re-derive the same unique assignment from the singleton domains.
	p := New(
		[]Variable{"x", "y"},
		map[Variable]Domain{"x": rangeDomain(1, 2), "y": rangeDomain(1, 2)},
		[]Constraint{Equals("x", 1), NotEquals("x", "y")},
	)
	require.Equal(t, StatusSolved, AC3(p).Status)

	r := Solve(p, &Options{Method: MethodAC3})
	require.True(t, r.Solved())
	assert.Equal(t, Assignment{"x": 1, "y": 2}, r.Assignment())
}

func TestSolveMethodAC3FeedsReducedProblemIntoBacktracking(t *testing.T) {
	p := queensProblem(6)
	want := Solve(p, &Options{All: true})
	got := Solve(p, &Options{Method: MethodAC3, All: true})

	assert.Equal(t, solutionSet(want), solutionSet(got))
}

func TestSolveBruteForceFirstAndAll(t *testing.T) {
	p := australiaProblem()

	first := Solve(p, &Options{Method: MethodBruteForce})
	require.True(t, first.Solved())
	assert.Len(t, first.Assignments, 1)
	assert.True(t, p.Consistent(first.Assignment()))

	all := Solve(p, &Options{Method: MethodBruteForce, All: true})
	require.True(t, all.Solved())
	// 6 proper 3-colorings of the mainland (3 choices for SA, then the
	// outer path alternates over the remaining 2 colors), times 3 free
	// choices for the isolated Tasmania.
	assert.Len(t, all.Assignments, 18)

	unsat := Solve(unsatProblem(), &Options{Method: MethodBruteForce, All: true})
	assert.Equal(t, StatusNoSolution, unsat.Status)
}

func TestSolveNormalizesOptions(t *testing.T) {
	// A zero Options value must behave like the defaults and leave the
	// caller's struct untouched.
	var opts Options
	r := Solve(australiaProblem(), &opts)
	require.True(t, r.Solved())
	assert.Equal(t, 0, opts.MaxIterations, "caller's options not mutated")

	assert.Equal(t, MethodBacktracking, DefaultOptions().Method)
	assert.Equal(t, DefaultMaxIterations, DefaultOptions().MaxIterations)
}

func TestSolveUnknownMethodPanics(t *testing.T) {
	assert.Panics(t, func() {
		Solve(australiaProblem(), &Options{Method: Method(99)})
	})
}

func TestMethodStringRoundTrip(t *testing.T) {
	methods := []Method{MethodBacktracking, MethodMinConflicts, MethodAC3, MethodBruteForce}
	for _, m := range methods {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMethod("simulated_annealing")
	assert.Error(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "solved", StatusSolved.String())
	assert.Equal(t, "reduced", StatusReduced.String())
	assert.Equal(t, "no_solution", StatusNoSolution.String())
}

func TestResultAccessors(t *testing.T) {
	r := noSolution()
	assert.False(t, r.Solved())
	assert.Nil(t, r.Assignment())

	r = solved(Assignment{"x": 1})
	assert.True(t, r.Solved())
	assert.Equal(t, Assignment{"x": 1}, r.Assignment())
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
	assert.Equal(t, Version, GetVersionInfo().Version)
}
