package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"travelnello/pkg/commands/options"
	"travelnello/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Work with a trip's diary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteGet(cmd)
	addNoteRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteAdd(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	var title string
	var content string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a diary note to a trip",
		Example: `
travelnello note add "Giorno 1" -t 3 --date 2025-04-05 --content "Hanami a **Ueno**"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := note.Add{
				TripID:    no.TripID,
				Title:     title,
				Date:      no.Date,
				Content:   content,
				Images:    no.Images,
				Collector: c,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddNoteArgs(cmd, no)
	cmd.Flags().StringVar(&content, "content", "",
		"Note text (markdown).")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteGet(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List the notes in a trip's diary",
		Example: `
travelnello note get -t 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := note.List{
				TripID:    no.TripID,
				ShowID:    io.ShowID,
				Collector: c,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddNoteArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteRemove(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	var noteID int

	cmd := &cobra.Command{
		Use:     "remove [note id]",
		Aliases: []string{"rm"},
		Short:   "Remove a note from a trip's diary",
		Example: `
travelnello note remove 2 -t 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a note id")
			}
			var err error
			noteID, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, p, _, err := loadCollector(ctx)
			if err != nil {
				return err
			}
			defer p.Flush()

			s := note.Remove{
				TripID:    no.TripID,
				NoteID:    noteID,
				Collector: c,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddNoteArgs(cmd, no)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
