package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/commands/options"
	"travelnello/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TripOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a trip",
		Example: `
travelnello add "Vacanza a Parigi" --from 2025-07-10 --to 2025-07-15 -l "Paris, France" -c "City Life,Culture"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a trip title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := add.Add{
				Title:         to.Title,
				ImageURI:      to.ImageURI,
				DepartureDate: to.DepartureDate,
				ReturnDate:    to.ReturnDate,
				Location:      to.Location,
				Description:   to.Description,
				Categories:    to.Categories,
				Favorite:      to.Favorite,
				Collector:     c,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddTripArgs(cmd, to)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
