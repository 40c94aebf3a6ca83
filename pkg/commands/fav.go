package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/runner/fav"
)

func addFav(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:     "fav [id]",
		Aliases: []string{"favorite"},
		Short:   "Toggle a trip's favorite flag",
		Example: `
travelnello fav 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a trip id")
			}
			var err error
			id, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := fav.Fav{
				ID:        id,
				Collector: c,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
