package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/geo"
	"travelnello/pkg/runner/locate"
)

func addLocate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "locate [query]",
		Short: "Geocode trip locations for the map view",
		Long: base.Wrap80("Resolves every distinct trip location to coordinates " +
			"through the OpenCage geocoding service, or a single free-text query " +
			"when one is given. Requires TRAVELNELLO_OPENCAGE_KEY."),
		Example: `
travelnello locate
travelnello locate Reykjavik
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, cfg, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := locate.Locate{
				Query:     strings.Join(args, " "),
				Collector: c,
				Geocoder:  geo.New(cfg.OpenCageKey()),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
