package remove

import (
	"context"
	"errors"
	"fmt"

	"travelnello/pkg/collector"
)

type Remove struct {
	ID int

	Collector *collector.Collector
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not remove, no collector")
	}

	if n.Collector.RemoveTrip(n.ID) {
		fmt.Printf("removed trip %d and its diary\n", n.ID)
	} else {
		fmt.Printf("no trip with id %d\n", n.ID)
	}
	return nil
}
