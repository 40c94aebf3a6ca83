package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"travelnello/pkg/collector"
	"travelnello/pkg/filter"
	"travelnello/pkg/printers"
)

type Get struct {
	ShowID bool
	JSON   bool
	ID     int // when > 0, show the single trip and its diary
	Filter filter.Spec

	Collector *collector.Collector
}

func (n *Get) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not get, no collector")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.ID > 0 {
		t, ok := n.Collector.Trip(n.ID)
		if !ok {
			fmt.Printf("no trip with id %d\n", n.ID)
			return nil
		}
		if n.JSON {
			return printJSON(t)
		}
		pp.Trip(t)
		if d, ok := n.Collector.DiaryForTrip(t.ID); ok {
			pp.Notes(d.GetNotes()...)
		}
		return nil
	}

	trips := filter.Apply(n.Collector.AllTrips(), n.Filter)
	if n.JSON {
		return printJSON(trips)
	}

	fmt.Println("")
	pp.TitleWithCount("Trips", len(trips))
	pp.Trips(trips...)
	return nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
