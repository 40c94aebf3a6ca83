// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TripOptions captures the trip fields commands accept as flags.
type TripOptions struct {
	Title         string
	ImageURI      string
	DepartureDate string
	ReturnDate    string
	Location      string
	Description   string
	Categories    []string
	Favorite      bool
}

// AddTripArgs wires trip field flags on the provided command.
func AddTripArgs(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVar(&o.ImageURI, "image", "",
		"Image URI for the trip card.")
	cmd.Flags().StringVar(&o.DepartureDate, "from", "",
		"Departure date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.ReturnDate, "to", "",
		"Return date (YYYY-MM-DD).")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Free-text place name.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Trip description (markdown).")
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		"Trip categories. Repeat or comma-separate.")
	cmd.Flags().BoolVar(&o.Favorite, "favorite", false,
		"Mark the trip as a favorite.")
}
