package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/internal/problems"
	"github.com/gitrdm/gocsp/pkg/csp"
)

func newQueensCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solve the N-Queens puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("board size must be positive, got %d", n)
			}
			return runSolve(problems.NQueens(n), func(a csp.Assignment) {
				printBoard(a, n)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 8, "board size")
	return cmd
}

// printBoard renders the queen positions as an ASCII board.
func printBoard(a csp.Assignment, n int) {
	for row := 0; row < n; row++ {
		col := a[csp.Variable(fmt.Sprintf("q%d", row))].(int)
		line := make([]string, n)
		for c := 0; c < n; c++ {
			if c == col {
				line[c] = "Q"
			} else {
				line[c] = "."
			}
		}
		fmt.Println("  " + strings.Join(line, " "))
	}
}
