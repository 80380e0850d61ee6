// Package problems builds the demo constraint satisfaction instances
// shipped with the gocsp command line front-end. The builders are
// external collaborators of the engine: they only construct conforming
// CSP values and contain no solving logic of their own.
package problems

import (
	"fmt"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// NQueens builds the N-Queens puzzle with one variable per row holding
// the queen's 0-based column. No two queens may share a column or a
// diagonal; rows are distinct by construction.
func NQueens(n int) *csp.CSP {
	vars := make([]csp.Variable, n)
	domains := make(map[csp.Variable]csp.Domain, n)
	for i := range vars {
		vars[i] = csp.Variable(fmt.Sprintf("q%d", i))
		cols := make(csp.Domain, n)
		for c := 0; c < n; c++ {
			cols[c] = c
		}
		domains[vars[i]] = cols
	}

	var constraints []csp.Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rowGap := j - i
			constraints = append(constraints, csp.Binary(vars[i], vars[j], func(vi, vj csp.Value) bool {
				ci, cj := vi.(int), vj.(int)
				if ci == cj {
					return false
				}
				diff := cj - ci
				if diff < 0 {
					diff = -diff
				}
				return diff != rowGap
			}))
		}
	}
	return csp.New(vars, domains, constraints)
}

// AustraliaMap builds the classic Australia map-coloring problem:
// seven territories, three colors, adjacent territories must differ.
// Tasmania is unconstrained.
func AustraliaMap() *csp.CSP {
	vars := []csp.Variable{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	colors := csp.Domain{"red", "green", "blue"}
	domains := make(map[csp.Variable]csp.Domain, len(vars))
	for _, v := range vars {
		domains[v] = colors
	}

	adjacent := [][2]csp.Variable{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
		{"NSW", "V"},
	}
	constraints := make([]csp.Constraint, 0, len(adjacent))
	for _, pair := range adjacent {
		constraints = append(constraints, csp.NotEquals(pair[0], pair[1]))
	}
	return csp.New(vars, domains, constraints)
}

// Sudoku builds a 9x9 Sudoku instance from an 81-character puzzle
// string read row by row, where '1'..'9' are givens and '.' or '0'
// mark empty cells.
func Sudoku(puzzle string) (*csp.CSP, error) {
	if len(puzzle) != 81 {
		return nil, fmt.Errorf("problems: puzzle must be 81 characters, got %d", len(puzzle))
	}

	vars := make([]csp.Variable, 0, 81)
	domains := make(map[csp.Variable]csp.Domain, 81)
	var constraints []csp.Constraint

	cell := func(row, col int) csp.Variable {
		return csp.Variable(fmt.Sprintf("r%dc%d", row, col))
	}

	digits := make(csp.Domain, 9)
	for d := 1; d <= 9; d++ {
		digits[d-1] = d
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := cell(row, col)
			vars = append(vars, v)
			domains[v] = digits

			ch := puzzle[row*9+col]
			switch {
			case ch >= '1' && ch <= '9':
				constraints = append(constraints, csp.Equals(v, int(ch-'0')))
			case ch == '.' || ch == '0':
			default:
				return nil, fmt.Errorf("problems: invalid puzzle character %q at %d", ch, row*9+col)
			}
		}
	}

	// Row, column, and box all-different groups.
	for i := 0; i < 9; i++ {
		var rowVars, colVars []csp.Variable
		for j := 0; j < 9; j++ {
			rowVars = append(rowVars, cell(i, j))
			colVars = append(colVars, cell(j, i))
		}
		constraints = append(constraints, csp.AllDifferent(rowVars)...)
		constraints = append(constraints, csp.AllDifferent(colVars)...)
	}
	for boxRow := 0; boxRow < 3; boxRow++ {
		for boxCol := 0; boxCol < 3; boxCol++ {
			var boxVars []csp.Variable
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					boxVars = append(boxVars, cell(boxRow*3+r, boxCol*3+c))
				}
			}
			constraints = append(constraints, csp.AllDifferent(boxVars)...)
		}
	}

	return csp.New(vars, domains, constraints), nil
}

// SendMoreMoney builds the SEND + MORE = MONEY cryptarithm: distinct
// digits per letter, no leading zeros. The sum itself is a single
// 8-ary constraint, deliberately beyond AC-3's reach, and is enforced
// by the search-time consistency check.
func SendMoreMoney() *csp.CSP {
	letters := []csp.Variable{"S", "E", "N", "D", "M", "O", "R", "Y"}
	digits := make(csp.Domain, 10)
	for d := 0; d <= 9; d++ {
		digits[d] = d
	}
	domains := make(map[csp.Variable]csp.Domain, len(letters))
	for _, v := range letters {
		domains[v] = digits
	}

	constraints := csp.AllDifferent(letters)
	constraints = append(constraints,
		csp.Unary("S", func(v csp.Value) bool { return v.(int) != 0 }),
		csp.Unary("M", func(v csp.Value) bool { return v.(int) != 0 }),
		csp.NewConstraint(letters, func(values []csp.Value) bool {
			s, e, n, d := values[0].(int), values[1].(int), values[2].(int), values[3].(int)
			m, o, r, y := values[4].(int), values[5].(int), values[6].(int), values[7].(int)
			send := 1000*s + 100*e + 10*n + d
			more := 1000*m + 100*o + 10*r + e
			money := 10000*m + 1000*o + 100*n + 10*e + y
			return send+more == money
		}).Named("send+more=money"),
	)
	return csp.New(letters, domains, constraints)
}
