// Package filter is the pure query engine over the in-memory trip
// collection: text search, favorites, category selection, and date modes.
// Apply never mutates its input and holds no state, so the same spec over
// the same trips always yields the same result.
package filter

import (
	"strings"

	"travelnello/pkg/trip"
)

// Date filter modes. An unrecognized mode behaves like ModeAll.
const (
	ModeAll       = "all"
	ModeDeparture = "departure"
	ModeReturn    = "return"
	ModeRange     = "range"
)

// Spec describes one filter application. The zero value passes every trip.
type Spec struct {
	Query         string
	FavoritesOnly bool
	Categories    []string

	DateMode  string
	Date      trip.Date // reference date for ModeDeparture / ModeReturn
	StartDate trip.Date // range bounds, both required for ModeRange
	EndDate   trip.Date
}

// Apply narrows trips stage by stage: text search, favorites, categories,
// dates. Each stage is an independent predicate; the order is for
// readability, not correctness.
func Apply(trips []*trip.Trip, s Spec) []*trip.Trip {
	out := make([]*trip.Trip, 0, len(trips))
	query := strings.ToLower(strings.TrimSpace(s.Query))
	for _, t := range trips {
		if t == nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		if s.FavoritesOnly && !t.Favorite {
			continue
		}
		if !matchesCategories(t, s.Categories) {
			continue
		}
		if !matchesDate(t, s) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesCategories keeps a trip when the selection is empty, when the trip
// has no category and the None sentinel is selected, or when the trip's
// split category list intersects the selection.
func matchesCategories(t *trip.Trip, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	cats := t.Categories()
	if len(cats) == 0 {
		for _, s := range selected {
			if s == trip.CategoryNone {
				return true
			}
		}
		return false
	}
	for _, c := range cats {
		for _, s := range selected {
			if c == s {
				return true
			}
		}
	}
	return false
}

func matchesDate(t *trip.Trip, s Spec) bool {
	switch s.DateMode {
	case ModeDeparture:
		return t.DepartureDate.Equal(s.Date)
	case ModeReturn:
		return t.ReturnDate.Equal(s.Date)
	case ModeRange:
		// An applied range filter missing a bound excludes everything:
		// fail closed, not open.
		if s.StartDate.IsZero() || s.EndDate.IsZero() {
			return false
		}
		return inRange(t.DepartureDate, s.StartDate, s.EndDate) ||
			inRange(t.ReturnDate, s.StartDate, s.EndDate) ||
			spans(t, s.StartDate, s.EndDate)
	default:
		// ModeAll, the empty mode, and anything unrecognized pass through.
		return true
	}
}

// inRange is inclusive on both ends.
func inRange(d, start, end trip.Date) bool {
	return !d.Before(start) && !d.After(end)
}

// spans reports whether the trip fully covers the filter window.
func spans(t *trip.Trip, start, end trip.Date) bool {
	return !t.DepartureDate.After(start) && !t.ReturnDate.Before(end)
}
