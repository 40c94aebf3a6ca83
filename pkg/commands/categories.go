package commands

import (
	"github.com/spf13/cobra"

	"travelnello/pkg/printers"
	"travelnello/pkg/trip"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List the trip category catalog",
		Example: `
travelnello categories
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pp := printers.PrettyPrint{}
			pp.Categories(trip.AllCategories()...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
