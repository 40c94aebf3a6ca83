package add

import (
	"context"
	"errors"
	"fmt"

	"travelnello/pkg/collector"
	"travelnello/pkg/printers"
	"travelnello/pkg/trip"
)

type Add struct {
	Title         string
	ImageURI      string
	DepartureDate string
	ReturnDate    string
	Location      string
	Description   string
	Categories    []string
	Favorite      bool

	Collector *collector.Collector
}

func (n *Add) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not add, no collector")
	}

	departure, err := trip.ParseDate(n.DepartureDate)
	if err != nil {
		return err
	}
	ret, err := trip.ParseDate(n.ReturnDate)
	if err != nil {
		return err
	}
	if ret.Before(departure) {
		return fmt.Errorf("return date %s is before departure %s", ret, departure)
	}

	t := trip.New(n.Collector.NextID(), n.Title)
	t.ImageURI = n.ImageURI
	t.DepartureDate = departure
	t.ReturnDate = ret
	t.Location = n.Location
	t.Description = n.Description
	t.SetCategories(n.Categories)
	t.Favorite = n.Favorite

	if err := n.Collector.AddTrip(t); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Trip(t)
	return nil
}
