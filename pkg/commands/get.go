package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/commands/options"
	"travelnello/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get trips, filtered or by id",
		Example: `
travelnello get
travelnello get 3
travelnello get --search vacanza --favorites
travelnello get -c Beach --date-mode range --start 2025-07-01 --end 2025-07-31
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := get.Get{
				ShowID:    io.ShowID,
				JSON:      output.JSON,
				Filter:    fo.Spec(),
				Collector: c,
			}
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				s.ID = id
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
