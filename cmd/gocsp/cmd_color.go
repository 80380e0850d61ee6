package main

import (
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/internal/problems"
)

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Color the map of Australia with three colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(problems.AustraliaMap(), printAssignment)
		},
	}
}
