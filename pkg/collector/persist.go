package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"travelnello/pkg/diary"
	"travelnello/pkg/store"
	"travelnello/pkg/trip"
)

// Initialize loads both snapshots from the durable store and rebuilds the
// counters. Absent blobs mean a first run and leave the maps empty. A
// corrupt blob or a failing read is logged and treated the same way: start
// empty, never crash the caller. Call exactly once, before anything else.
func (c *Collector) Initialize(ctx context.Context) error {
	if c.p == nil {
		return errors.New("collector: no persistence configured")
	}

	if trips, ok := c.loadBlob(ctx, TripsKey); ok {
		var list []*trip.Trip
		if err := json.Unmarshal(trips, &list); err != nil {
			fmt.Fprintf(os.Stderr, "collector: load %s: %v\n", TripsKey, err)
		} else {
			for _, t := range list {
				if t == nil {
					continue
				}
				c.trips[t.ID] = t
				if t.ID >= c.nextID {
					c.nextID = t.ID + 1
				}
			}
		}
	}

	if diaries, ok := c.loadBlob(ctx, DiariesKey); ok {
		var list []*diary.Diary
		if err := json.Unmarshal(diaries, &list); err != nil {
			fmt.Fprintf(os.Stderr, "collector: load %s: %v\n", DiariesKey, err)
		} else {
			for _, d := range list {
				if d == nil {
					continue
				}
				if d.Notes == nil {
					d.Notes = []*diary.Note{}
				}
				// Trust the persisted per-diary note counter rather than
				// recomputing it; note ids must never be reused either.
				if d.NextNoteID < 1 {
					d.NextNoteID = 1
				}
				c.diaries[d.ID] = d
				c.byTrip[d.TripID] = d.ID
				if d.ID >= c.nextDiaryID {
					c.nextDiaryID = d.ID + 1
				}
			}
		}
	}

	return nil
}

func (c *Collector) loadBlob(ctx context.Context, key string) ([]byte, bool) {
	if err := ctx.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "collector: load %s: %v\n", key, err)
		return nil, false
	}
	data, err := c.p.ReadBlob(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "collector: load %s: %v\n", key, err)
		}
		return nil, false
	}
	return data, true
}

// persistTrips issues an asynchronous write of the full trip snapshot. The
// in-memory state is already updated by the time this runs; failures here
// are logged and swallowed so durability stays best-effort.
func (c *Collector) persistTrips() {
	data, err := json.Marshal(sortTrips(c.trips))
	if err != nil {
		fmt.Fprintf(os.Stderr, "collector: persist %s: %v\n", TripsKey, err)
		return
	}
	if err := c.p.WriteBlob(TripsKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "collector: persist %s: %v\n", TripsKey, err)
	}
}

func (c *Collector) persistDiaries() {
	data, err := json.Marshal(sortDiaries(c.diaries))
	if err != nil {
		fmt.Fprintf(os.Stderr, "collector: persist %s: %v\n", DiariesKey, err)
		return
	}
	if err := c.p.WriteBlob(DiariesKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "collector: persist %s: %v\n", DiariesKey, err)
	}
}

func sortTrips(m map[int]*trip.Trip) []*trip.Trip {
	list := make([]*trip.Trip, 0, len(m))
	for _, t := range m {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func sortDiaries(m map[int]*diary.Diary) []*diary.Diary {
	list := make([]*diary.Diary, 0, len(m))
	for _, d := range m {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
