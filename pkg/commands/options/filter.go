package options

import (
	"github.com/spf13/cobra"

	"travelnello/pkg/filter"
	"travelnello/pkg/trip"
)

// FilterOptions captures the filter/search flags for listing commands.
type FilterOptions struct {
	Query         string
	FavoritesOnly bool
	Categories    []string
	DateMode      string
	Date          string
	StartDate     string
	EndDate       string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "search", "s", "",
		"Case-insensitive title search.")
	cmd.Flags().BoolVar(&o.FavoritesOnly, "favorites", false,
		"Only favorite trips.")
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		"Only trips in these categories. \"None\" selects uncategorized trips.")
	cmd.Flags().StringVar(&o.DateMode, "date-mode", filter.ModeAll,
		"Date filter: all, departure, return, or range.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Reference date for departure/return modes (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.StartDate, "start", "",
		"Range start (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.EndDate, "end", "",
		"Range end (YYYY-MM-DD).")
}

// Spec converts the parsed flags into a filter specification.
func (o *FilterOptions) Spec() filter.Spec {
	return filter.Spec{
		Query:         o.Query,
		FavoritesOnly: o.FavoritesOnly,
		Categories:    o.Categories,
		DateMode:      o.DateMode,
		Date:          trip.Date(o.Date),
		StartDate:     trip.Date(o.StartDate),
		EndDate:       trip.Date(o.EndDate),
	}
}
