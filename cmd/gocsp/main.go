// Command gocsp runs the demo constraint satisfaction problems shipped
// with the engine: N-Queens, Australia map coloring, Sudoku, and the
// SEND+MORE=MONEY cryptarithm. Every solve option of the library is
// exposed as a flag, so the command doubles as a workbench for
// comparing methods and heuristics.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
)

var (
	flagMethod        string
	flagAll           bool
	flagAC3           bool
	flagMRV           bool
	flagMaxIterations int
	flagOptimizeInit  bool
	flagTabuDepth     int
	flagSeed          uint64
)

func main() {
	root := &cobra.Command{
		Use:     "gocsp",
		Short:   "Solve demo constraint satisfaction problems",
		Version: csp.Version,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagMethod, "method", "backtracking",
		"search method: backtracking, min_conflicts, ac3, brute_force")
	pf.BoolVar(&flagAll, "all", false, "find every solution instead of the first")
	pf.BoolVar(&flagAC3, "ac3", false, "interleave AC-3 inference with backtracking")
	pf.BoolVar(&flagMRV, "mrv", false, "use the minimum-remaining-values heuristic")
	pf.IntVar(&flagMaxIterations, "max-iterations", csp.DefaultMaxIterations,
		"iteration ceiling for min_conflicts")
	pf.BoolVar(&flagOptimizeInit, "optimize-initial-state", false,
		"greedy instead of random initial assignment for min_conflicts")
	pf.IntVar(&flagTabuDepth, "tabu-depth", 0, "tabu memory bound for min_conflicts (0 = unbounded)")
	pf.Uint64Var(&flagSeed, "seed", 0, "random seed for min_conflicts (0 = fresh seed)")

	root.AddCommand(newQueensCmd(), newColorCmd(), newSudokuCmd(), newMoneyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// solveOptions translates the persistent flags into library options.
func solveOptions() (*csp.Options, error) {
	method, err := csp.ParseMethod(flagMethod)
	if err != nil {
		return nil, err
	}

	opts := &csp.Options{
		Method:               method,
		All:                  flagAll,
		AC3:                  flagAC3,
		MaxIterations:        flagMaxIterations,
		OptimizeInitialState: flagOptimizeInit,
		TabuDepth:            flagTabuDepth,
	}
	if flagMRV {
		opts.Selector = csp.MinimumRemainingValues
	}
	if flagSeed != 0 {
		opts.Rand = rand.New(rand.NewPCG(flagSeed, flagSeed))
	}
	return opts, nil
}

// runSolve solves the problem with the flag-derived options and prints
// the outcome. Extra solutions beyond the first are summarized.
func runSolve(p *csp.CSP, describe func(csp.Assignment)) error {
	opts, err := solveOptions()
	if err != nil {
		return err
	}

	r := csp.Solve(p, opts)
	if !r.Solved() {
		if opts.Method == csp.MethodMinConflicts {
			fmt.Println("no solution found within the iteration budget (heuristic failure)")
		} else {
			fmt.Println("no solution exists")
		}
		return nil
	}

	fmt.Printf("solved (%d solution(s) via %s)\n\n", len(r.Assignments), opts.Method)
	describe(r.Assignment())
	if len(r.Assignments) > 1 {
		fmt.Printf("\n... and %d more solution(s)\n", len(r.Assignments)-1)
	}
	return nil
}

// printAssignment lists the bindings sorted by variable name.
func printAssignment(a csp.Assignment) {
	names := make([]string, 0, len(a))
	for v := range a {
		names = append(names, string(v))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s = %v\n", name, a[csp.Variable(name)])
	}
}
