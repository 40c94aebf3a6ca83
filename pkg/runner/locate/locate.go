// Package locate resolves trip locations to coordinates for the stats/map
// view. Locations are deduplicated before the geocoder is called, since the
// service is rate limited and several trips often share a place.
package locate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"travelnello/pkg/collector"
	"travelnello/pkg/geo"
	"travelnello/pkg/printers"
)

type Locate struct {
	Query string // when set, geocode this instead of the collection

	Collector *collector.Collector
	Geocoder  *geo.Client
}

func (n *Locate) Do(ctx context.Context) error {
	if n.Geocoder == nil {
		return errors.New("can not locate, no geocoder")
	}

	if n.Query != "" {
		return n.one(ctx, n.Query)
	}

	if n.Collector == nil {
		return errors.New("can not locate, no collector")
	}

	seen := make(map[string]struct{})
	locations := make([]string, 0)
	for _, t := range n.Collector.AllTrips() {
		if t.Location == "" {
			continue
		}
		if _, ok := seen[t.Location]; ok {
			continue
		}
		seen[t.Location] = struct{}{}
		locations = append(locations, t.Location)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(printers.Bold("Location"), printers.Bold("Latitude"), printers.Bold("Longitude"))
	for _, loc := range locations {
		coords, err := n.Geocoder.Geocode(ctx, loc)
		if err != nil {
			return err
		}
		if coords == nil {
			tbl.AddRow(loc, "-", "-")
			continue
		}
		tbl.AddRow(loc, fmt.Sprintf("%.4f", coords.Latitude), fmt.Sprintf("%.4f", coords.Longitude))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func (n *Locate) one(ctx context.Context, query string) error {
	coords, err := n.Geocoder.Geocode(ctx, query)
	if err != nil {
		return err
	}
	if coords == nil {
		fmt.Printf("no match for %q\n", query)
		return nil
	}
	fmt.Printf("%s: %.4f, %.4f\n", query, coords.Latitude, coords.Longitude)
	return nil
}
