// Package diary holds the journal attached to a trip: an ordered list of
// dated notes with embedded images. A diary belongs to exactly one trip and
// issues note ids from its own counter, so note ids are only unique within
// the owning diary.
package diary

import (
	"travelnello/pkg/trip"
)

// Note is one journal entry. Content is markdown-flavored text using
// **bold**, *italic* and "• " bullet markers.
type Note struct {
	ID      int       `json:"id"`
	DiaryID int       `json:"diaryId"`
	Title   string    `json:"title"`
	Date    trip.Date `json:"date"`
	Content string    `json:"content"`
	Images  []string  `json:"images"`
}

// New returns an empty diary for the given trip. The note id counter starts
// at 1 and is persisted with the diary so it survives reloads.
func New(id, tripID int) *Diary {
	return &Diary{
		ID:         id,
		TripID:     tripID,
		Notes:      []*Note{},
		NextNoteID: 1,
	}
}

// Diary is the container of notes for one trip. Insertion order of Notes is
// not meaningful; consumers re-sort by date when they care.
type Diary struct {
	ID         int     `json:"id"`
	TripID     int     `json:"tripId"`
	Notes      []*Note `json:"notes"`
	NextNoteID int     `json:"nextNoteId"`
}

// CreateNote builds a note from the given fields, assigns it the next note
// id, appends it, and returns it.
func (d *Diary) CreateNote(title string, date trip.Date, content string, images []string) *Note {
	if images == nil {
		images = []string{}
	}
	n := &Note{
		ID:      d.NextNoteID,
		DiaryID: d.ID,
		Title:   title,
		Date:    date,
		Content: content,
		Images:  images,
	}
	d.NextNoteID++
	d.Notes = append(d.Notes, n)
	return n
}

// RemoveNote filters out the note with the given id and reports whether
// anything was removed.
func (d *Diary) RemoveNote(noteID int) bool {
	kept := d.Notes[:0]
	for _, n := range d.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(d.Notes)
	d.Notes = kept
	return removed
}

// UpdateNote replaces the stored note carrying the same id and reports
// whether it was found.
func (d *Diary) UpdateNote(updated *Note) bool {
	if updated == nil {
		return false
	}
	for i, n := range d.Notes {
		if n.ID == updated.ID {
			updated.DiaryID = d.ID
			d.Notes[i] = updated
			return true
		}
	}
	return false
}

// GetNotes returns a copy of the note list. Callers must not reach the
// diary's internal slice through the result.
func (d *Diary) GetNotes() []*Note {
	out := make([]*Note, len(d.Notes))
	copy(out, d.Notes)
	return out
}

// GetNote finds a note by id, nil when absent.
func (d *Diary) GetNote(noteID int) *Note {
	for _, n := range d.Notes {
		if n.ID == noteID {
			return n
		}
	}
	return nil
}
