package trip

import (
	"strings"
)

// New returns a Trip with the given identity and title. The remaining fields
// are assigned directly by the caller before the trip is handed to the
// collector.
func New(id int, title string) *Trip {
	return &Trip{
		ID:       id,
		Title:    title,
		Category: CategoryNone,
	}
}

// Trip is one travel record. The JSON tags are the persisted shape and must
// round-trip losslessly through the durable store.
//
// A Trip performs no validation of its own: the caller keeps ReturnDate on or
// after DepartureDate, and length conventions on Title and Description are
// enforced at the edges.
type Trip struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	ImageURI      string `json:"imageUri"`
	DepartureDate Date   `json:"departureDate"`
	ReturnDate    Date   `json:"returnDate"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Favorite      bool   `json:"favorite"`
}

// ToggleFavorite flips the favorite flag. This is the only mutation a Trip
// owns; everything else is direct field assignment followed by an explicit
// update through the collector.
func (t *Trip) ToggleFavorite() {
	t.Favorite = !t.Favorite
}

// Categories splits the comma-joined category field into its category names.
// A trip carrying no category (empty, blank, or the literal "None" in any
// case) reports nil.
func (t *Trip) Categories() []string {
	raw := strings.TrimSpace(t.Category)
	if raw == "" || strings.EqualFold(raw, CategoryNone) {
		return nil
	}
	parts := strings.Split(raw, ", ")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// SetCategories joins the given names back into the stored comma-joined form,
// falling back to the None sentinel when nothing is selected.
func (t *Trip) SetCategories(names []string) {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" && !strings.EqualFold(n, CategoryNone) {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		t.Category = CategoryNone
		return
	}
	t.Category = strings.Join(kept, ", ")
}

func (t *Trip) String() string {
	return t.Title
}
