package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/collector"
	"travelnello/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "travelnello",
		Short: base.Wrap80("Trip journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addFav(topLevel)
	addNote(topLevel)
	addLocate(topLevel)
	addImages(topLevel)
	addCategories(topLevel)
	addVersion(topLevel)
}

// loadCollector builds the collector every command runs against: config,
// store, a fresh Collector, and one Initialize. Callers must Flush the
// returned persistence before the process exits so queued writes land.
func loadCollector(ctx context.Context) (*collector.Collector, store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	c := collector.New(p)
	if err := c.Initialize(ctx); err != nil {
		return nil, nil, nil, err
	}
	return c, p, cfg, nil
}
