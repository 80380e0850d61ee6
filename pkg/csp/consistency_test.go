package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistentTreatsUncoveredConstraintsAsVacuous(t *testing.T) {
	p := australiaProblem()

	// Empty and single-variable assignments cannot violate binary
	// adjacency constraints.
	assert.True(t, p.Consistent(Assignment{}))
	assert.True(t, p.Consistent(Assignment{"WA": "red"}))

	// A covered constraint must hold.
	assert.False(t, p.Consistent(Assignment{"WA": "red", "NT": "red"}))
	assert.True(t, p.Consistent(Assignment{"WA": "red", "NT": "green"}))

	// An uncovered violation elsewhere does not matter yet.
	assert.True(t, p.Consistent(Assignment{"WA": "red", "V": "red"}))
}

func TestConflictsCountsViolatedConstraints(t *testing.T) {
	p := australiaProblem()

	assert.Equal(t, 0, p.Conflicts(Assignment{}))

	// SA=red clashes with WA, NT, Q, NSW and V when all are red.
	all := Assignment{
		"WA": "red", "NT": "red", "SA": "red", "Q": "red",
		"NSW": "red", "V": "red", "T": "red",
	}
	assert.Equal(t, 9, p.Conflicts(all), "every adjacency violated")

	one := Assignment{"WA": "red", "NT": "red", "SA": "green"}
	assert.Equal(t, 1, p.Conflicts(one))
}

func TestConflictedVariablesInDeclarationOrder(t *testing.T) {
	p := australiaProblem()

	a := Assignment{"WA": "red", "NT": "red", "SA": "green", "T": "blue"}
	got := p.ConflictedVariables(a)

	// Only the WA-NT adjacency is violated; T is isolated and clean.
	assert.Equal(t, []Variable{"WA", "NT"}, got)

	assert.Empty(t, p.ConflictedVariables(Assignment{"WA": "red", "NT": "green"}))
}
