package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/imagesearch"
	"travelnello/pkg/printers"
	"travelnello/pkg/store"
)

func addImages(topLevel *cobra.Command) {
	var perPage int

	cmd := &cobra.Command{
		Use:   "images [query]",
		Short: "Search trip cover photos",
		Long: base.Wrap80("Searches Pexels for landscape photos matching the " +
			"query. Pick a URL and set it with add --image or by editing the " +
			"trip. Requires TRAVELNELLO_PEXELS_KEY."),
		Example: `
travelnello images iceland
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a search query")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			client := imagesearch.New(cfg.PexelsKey())
			photos, err := client.Search(context.Background(), strings.Join(args, " "), perPage)
			if err != nil {
				return output.HandleError(err)
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.AddRow(printers.Bold("URL"), printers.Bold("Description"), printers.Bold("By"))
			for _, p := range photos {
				tbl.AddRow(p.URL, p.Description, p.Attribution)
			}
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	cmd.Flags().IntVar(&perPage, "count", 10, "Number of results.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
