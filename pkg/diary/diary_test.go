package diary

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCreateNoteAssignsSequentialIDs(t *testing.T) {
	d := New(7, 3)
	first := d.CreateNote("Giorno 1", "2025-07-10", "Arrivo a **Parigi**", nil)
	second := d.CreateNote("Giorno 2", "2025-07-11", "Louvre", nil)

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.DiaryID != 7 || second.DiaryID != 7 {
		t.Fatalf("expected notes to carry the diary id")
	}
	if d.NextNoteID != 3 {
		t.Fatalf("expected counter at 3, got %d", d.NextNoteID)
	}
	if first.Images == nil {
		t.Fatalf("expected images to be an empty list, not nil")
	}
}

func TestNoteIDsScopedPerDiary(t *testing.T) {
	a := New(1, 10)
	b := New(2, 20)
	na := a.CreateNote("a", "2025-01-01", "", nil)
	nb := b.CreateNote("b", "2025-01-02", "", nil)
	if na.ID != 1 || nb.ID != 1 {
		t.Fatalf("expected both diaries to start at note id 1, got %d and %d", na.ID, nb.ID)
	}
	if a.GetNote(1).Title != "a" || b.GetNote(1).Title != "b" {
		t.Fatalf("note lookup must be scoped by diary")
	}
}

func TestRemoveNote(t *testing.T) {
	d := New(1, 1)
	d.CreateNote("keep", "2025-01-01", "", nil)
	n := d.CreateNote("drop", "2025-01-02", "", nil)

	if !d.RemoveNote(n.ID) {
		t.Fatalf("expected removal to report true")
	}
	if d.RemoveNote(n.ID) {
		t.Fatalf("second removal should report false")
	}
	if len(d.Notes) != 1 || d.Notes[0].Title != "keep" {
		t.Fatalf("unexpected notes after removal: %+v", d.Notes)
	}
	if d.NextNoteID != 3 {
		t.Fatalf("removal must not rewind the id counter, got %d", d.NextNoteID)
	}
}

func TestUpdateNote(t *testing.T) {
	d := New(1, 1)
	n := d.CreateNote("Giorno 1", "2025-07-10", "draft", nil)

	updated := &Note{ID: n.ID, Title: "Giorno 1", Date: "2025-07-10", Content: "final", Images: []string{"file:///a.jpg"}}
	if !d.UpdateNote(updated) {
		t.Fatalf("expected update to find the note")
	}
	if got := d.GetNote(n.ID); got.Content != "final" || got.DiaryID != d.ID {
		t.Fatalf("unexpected note after update: %+v", got)
	}
	if d.UpdateNote(&Note{ID: 99}) {
		t.Fatalf("expected update of unknown id to report false")
	}
	if d.UpdateNote(nil) {
		t.Fatalf("expected nil update to report false")
	}
}

func TestGetNotesIsDefensiveCopy(t *testing.T) {
	d := New(1, 1)
	d.CreateNote("one", "2025-01-01", "", nil)
	d.CreateNote("two", "2025-01-02", "", nil)

	got := d.GetNotes()
	got[0] = nil
	if d.Notes[0] == nil {
		t.Fatalf("mutating the returned slice must not touch the diary")
	}
}

func TestDiaryJSONShape(t *testing.T) {
	d := New(4, 9)
	d.CreateNote("Giorno 1", "2025-07-10", "• colazione\n• museo", []string{"https://img/1.jpg"})

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &Diary{}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(d, out) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", d, out)
	}

	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"id", "tripId", "notes", "nextNoteId"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("persisted diary is missing %q", key)
		}
	}
}
