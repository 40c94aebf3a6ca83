// Package note holds the diary verbs: add, list, and remove notes for a
// trip's diary.
package note

import (
	"context"
	"errors"
	"fmt"

	"travelnello/pkg/collector"
	"travelnello/pkg/printers"
	"travelnello/pkg/trip"
)

type Add struct {
	TripID  int
	Title   string
	Date    string
	Content string
	Images  []string

	Collector *collector.Collector
}

func (n *Add) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not add a note, no collector")
	}
	if !n.Collector.HasTrip(n.TripID) {
		fmt.Printf("no trip with id %d\n", n.TripID)
		return nil
	}

	date := trip.Today()
	if n.Date != "" {
		var err error
		if date, err = trip.ParseDate(n.Date); err != nil {
			return err
		}
	}

	created := n.Collector.AddNote(n.TripID, n.Title, date, n.Content, n.Images)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Notes(created)
	return nil
}

type List struct {
	TripID int
	ShowID bool

	Collector *collector.Collector
}

func (n *List) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not list notes, no collector")
	}

	t, ok := n.Collector.Trip(n.TripID)
	if !ok {
		fmt.Printf("no trip with id %d\n", n.TripID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(t.Title)

	d, ok := n.Collector.DiaryForTrip(n.TripID)
	if !ok {
		pp.Notes()
		return nil
	}
	pp.Notes(d.GetNotes()...)
	return nil
}

type Remove struct {
	TripID int
	NoteID int

	Collector *collector.Collector
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Collector == nil {
		return errors.New("can not remove a note, no collector")
	}

	if n.Collector.RemoveNote(n.TripID, n.NoteID) {
		fmt.Printf("removed note %d from trip %d\n", n.NoteID, n.TripID)
	} else {
		fmt.Printf("no note %d on trip %d\n", n.NoteID, n.TripID)
	}
	return nil
}
