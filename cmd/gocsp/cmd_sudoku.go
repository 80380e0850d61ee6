package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/internal/problems"
	"github.com/gitrdm/gocsp/pkg/csp"
)

// defaultPuzzle is a well-known easy instance used when no puzzle file
// is supplied.
const defaultPuzzle = "53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

func newSudokuCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a 9x9 Sudoku puzzle",
		Long: "Solve a 9x9 Sudoku puzzle. The puzzle is an 81-character string read\n" +
			"row by row, with '.' or '0' for empty cells. Without --file a built-in\n" +
			"demo puzzle is used. Combine with --mrv --ac3 for reasonable runtimes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle := defaultPuzzle
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				puzzle = strings.Join(strings.Fields(string(raw)), "")
			}

			p, err := problems.Sudoku(puzzle)
			if err != nil {
				return err
			}
			return runSolve(p, printGrid)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the puzzle string")
	return cmd
}

// printGrid renders a solved Sudoku grid.
func printGrid(a csp.Assignment) {
	for row := 0; row < 9; row++ {
		var b strings.Builder
		b.WriteString("  ")
		for col := 0; col < 9; col++ {
			v := a[csp.Variable(fmt.Sprintf("r%dc%d", row, col))]
			fmt.Fprintf(&b, "%v ", v)
			if col == 2 || col == 5 {
				b.WriteString("| ")
			}
		}
		fmt.Println(b.String())
		if row == 2 || row == 5 {
			fmt.Println("  ------+-------+------")
		}
	}
}
