// Package collector owns the canonical in-memory collection of trips and
// their diaries. The maps here are the single source of truth; the durable
// store is a derived mirror that every mutation refreshes asynchronously.
// Construct one Collector at startup, Initialize it, and pass it to every
// consumer.
package collector

import (
	"errors"

	"travelnello/pkg/diary"
	"travelnello/pkg/store"
	"travelnello/pkg/trip"
)

// The two fixed keys the collector owns in the durable store. Each holds a
// JSON array snapshot of the corresponding map.
const (
	TripsKey   = "trips"
	DiariesKey = "diaries"
)

// ErrNilTrip is returned when a caller hands AddTrip something that is not a
// trip. This is the one fail-fast validation the collector performs.
var ErrNilTrip = errors.New("collector: trip must not be nil")

// Collector synchronizes the trip and diary maps with the durable store.
// Mutators apply their in-memory effect synchronously and then issue the
// durable write without awaiting it; reads never touch the store.
type Collector struct {
	p store.Persistence

	trips   map[int]*trip.Trip
	diaries map[int]*diary.Diary
	byTrip  map[int]int // tripID -> diaryID index; same semantics as a scan

	nextID      int
	nextDiaryID int
}

// New returns an empty Collector over the given store. Call Initialize
// before anything else; operations invoked earlier observe an empty
// collection.
func New(p store.Persistence) *Collector {
	return &Collector{
		p:           p,
		trips:       make(map[int]*trip.Trip),
		diaries:     make(map[int]*diary.Diary),
		byTrip:      make(map[int]int),
		nextID:      1,
		nextDiaryID: 1,
	}
}

// NextID returns the current trip id and advances the counter. Not
// idempotent: call it once per trip to be created.
func (c *Collector) NextID() int {
	id := c.nextID
	c.nextID++
	return id
}

// AddTrip inserts t keyed by its id, silently overwriting an existing trip
// with the same id, and auto-creates an empty diary for the trip if it does
// not have one yet. Both snapshots are persisted asynchronously.
func (c *Collector) AddTrip(t *trip.Trip) error {
	if t == nil {
		return ErrNilTrip
	}
	c.trips[t.ID] = t
	if _, ok := c.byTrip[t.ID]; !ok {
		c.createDiary(t.ID)
	}
	c.persistTrips()
	c.persistDiaries()
	return nil
}

// RemoveTrip deletes the trip with the given id and cascades to its diary.
// Reports whether a deletion occurred; an unknown id is a benign no-op.
func (c *Collector) RemoveTrip(id int) bool {
	if _, ok := c.trips[id]; !ok {
		return false
	}
	delete(c.trips, id)
	if diaryID, ok := c.byTrip[id]; ok {
		delete(c.diaries, diaryID)
		delete(c.byTrip, id)
	}
	c.persistTrips()
	c.persistDiaries()
	return true
}

// UpdateTrip replaces the stored trip carrying t.ID and persists. Unknown
// ids are a documented soft-fail: nothing happens, nothing is reported.
func (c *Collector) UpdateTrip(t *trip.Trip) {
	if t == nil {
		return
	}
	if _, ok := c.trips[t.ID]; !ok {
		return
	}
	c.trips[t.ID] = t
	c.persistTrips()
}

// Trip looks up a trip by id.
func (c *Collector) Trip(id int) (*trip.Trip, bool) {
	t, ok := c.trips[id]
	return t, ok
}

// AllTrips returns the current trips sorted by id.
func (c *Collector) AllTrips() []*trip.Trip {
	return sortTrips(c.trips)
}

// HasTrip reports whether a trip with the given id exists.
func (c *Collector) HasTrip(id int) bool {
	_, ok := c.trips[id]
	return ok
}

// Count returns the number of trips.
func (c *Collector) Count() int {
	return len(c.trips)
}

// DiaryForTrip returns the diary belonging to the trip, if any.
func (c *Collector) DiaryForTrip(tripID int) (*diary.Diary, bool) {
	diaryID, ok := c.byTrip[tripID]
	if !ok {
		return nil, false
	}
	d, ok := c.diaries[diaryID]
	return d, ok
}

// AddNote appends a note to the trip's diary, lazily creating the diary if
// the trip never got one, and persists the diary snapshot.
func (c *Collector) AddNote(tripID int, title string, date trip.Date, content string, images []string) *diary.Note {
	d, ok := c.DiaryForTrip(tripID)
	if !ok {
		d = c.createDiary(tripID)
	}
	n := d.CreateNote(title, date, content, images)
	c.persistDiaries()
	return n
}

// UpdateNote replaces a note inside the trip's diary. A missing diary or
// unknown note id is a no-op reporting false.
func (c *Collector) UpdateNote(tripID int, updated *diary.Note) bool {
	d, ok := c.DiaryForTrip(tripID)
	if !ok {
		return false
	}
	if !d.UpdateNote(updated) {
		return false
	}
	c.persistDiaries()
	return true
}

// RemoveNote deletes a note from the trip's diary. A missing diary or
// unknown note id is a no-op reporting false.
func (c *Collector) RemoveNote(tripID, noteID int) bool {
	d, ok := c.DiaryForTrip(tripID)
	if !ok {
		return false
	}
	if !d.RemoveNote(noteID) {
		return false
	}
	c.persistDiaries()
	return true
}

func (c *Collector) createDiary(tripID int) *diary.Diary {
	d := diary.New(c.nextDiaryID, tripID)
	c.nextDiaryID++
	c.diaries[d.ID] = d
	c.byTrip[tripID] = d.ID
	return d
}
