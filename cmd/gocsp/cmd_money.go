package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/internal/problems"
	"github.com/gitrdm/gocsp/pkg/csp"
)

func newMoneyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "money",
		Short: "Solve the SEND + MORE = MONEY cryptarithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(problems.SendMoreMoney(), func(a csp.Assignment) {
				printAssignment(a)
				word := func(letters ...string) int {
					n := 0
					for _, l := range letters {
						n = n*10 + a[csp.Variable(l)].(int)
					}
					return n
				}
				fmt.Printf("\n  %d + %d = %d\n",
					word("S", "E", "N", "D"),
					word("M", "O", "R", "E"),
					word("M", "O", "N", "E", "Y"))
			})
		},
	}
}
