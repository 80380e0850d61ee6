package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesProblem(t *testing.T) {
	domains := map[Variable]Domain{"x": rangeDomain(1, 3)}

	assert.Panics(t, func() {
		New([]Variable{"x", "y"}, domains, nil)
	}, "missing domain for a declared variable")

	assert.Panics(t, func() {
		New([]Variable{"x", "x"}, domains, nil)
	}, "duplicate variable")

	assert.Panics(t, func() {
		New([]Variable{"x"}, domains, []Constraint{NotEquals("x", "ghost")})
	}, "constraint over undeclared variable")
}

func TestDomainLookupPanicsOnUndeclaredVariable(t *testing.T) {
	p := New([]Variable{"x"}, map[Variable]Domain{"x": rangeDomain(1, 3)}, nil)
	assert.Panics(t, func() { p.Domain("ghost") })
}

func TestWithDomainsLeavesReceiverUntouched(t *testing.T) {
	p := New(
		[]Variable{"x", "y"},
		map[Variable]Domain{"x": rangeDomain(1, 3), "y": rangeDomain(1, 3)},
		[]Constraint{NotEquals("x", "y")},
	)

	q := p.WithDomains(map[Variable]Domain{"x": Domain{2}})

	assert.Equal(t, []int{1, 2, 3}, intsOf(p.Domain("x")), "original must not change")
	assert.Equal(t, []int{2}, intsOf(q.Domain("x")))
	assert.Equal(t, []int{1, 2, 3}, intsOf(q.Domain("y")), "untouched domains carry over")
	assert.Equal(t, p.Variables(), q.Variables())
	assert.Equal(t, p.Constraints(), q.Constraints())
}

func TestAssignmentExtendCopies(t *testing.T) {
	a := Assignment{"x": 1}
	b := a.Extend("y", 2)

	require.Len(t, a, 1, "receiver must not be modified")
	assert.Equal(t, 1, b["x"])
	assert.Equal(t, 2, b["y"])

	var empty Assignment
	c := empty.Extend("x", 1)
	assert.Equal(t, 1, c["x"])
}

func TestAssignmentString(t *testing.T) {
	a := Assignment{"y": 2, "x": 1}
	assert.Equal(t, "{x=1 y=2}", a.String(), "output is sorted by variable")
}

func TestDomainContains(t *testing.T) {
	d := Domain{"red", "green"}
	assert.True(t, d.Contains("red"))
	assert.False(t, d.Contains("blue"))
}
