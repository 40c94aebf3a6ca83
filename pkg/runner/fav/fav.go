package fav

import (
	"context"
	"errors"
	"fmt"

	"travelnello/pkg/collector"
)

type Fav struct {
	ID int

	Collector *collector.Collector
}

func (n *Fav) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not toggle favorite, no collector")
	}

	t, ok := n.Collector.Trip(n.ID)
	if !ok {
		fmt.Printf("no trip with id %d\n", n.ID)
		return nil
	}

	t.ToggleFavorite()
	n.Collector.UpdateTrip(t)

	if t.Favorite {
		fmt.Printf("%s is now a favorite\n", t.Title)
	} else {
		fmt.Printf("%s is no longer a favorite\n", t.Title)
	}
	return nil
}
