package options

import (
	"github.com/spf13/cobra"
)

// NoteOptions captures the note fields commands accept as flags.
type NoteOptions struct {
	TripID int
	Date   string
	Images []string
}

// AddNoteArgs wires note flags on the provided command.
func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().IntVarP(&o.TripID, "trip", "t", 0,
		"Id of the trip the note belongs to.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Reference date of the note (YYYY-MM-DD). Defaults to today.")
	cmd.Flags().StringSliceVar(&o.Images, "image", nil,
		"Image URIs embedded in the note. Repeat or comma-separate.")
}
