package filter

import (
	"reflect"
	"testing"

	"travelnello/pkg/trip"
)

func mk(id int, title, category string, favorite bool, departure, ret trip.Date) *trip.Trip {
	t := trip.New(id, title)
	t.Category = category
	t.Favorite = favorite
	t.DepartureDate = departure
	t.ReturnDate = ret
	return t
}

func titles(trips []*trip.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.Title)
	}
	return out
}

func sampleTrips() []*trip.Trip {
	return []*trip.Trip{
		mk(1, "Vacanza a Parigi", "City Life, Culture", false, "2025-07-10", "2025-07-15"),
		mk(2, "Safari in Kenya", "Safari, Nature", false, "2024-12-01", "2024-12-10"),
		mk(3, "Tour in Giappone", "Culture", true, "2025-04-05", "2025-04-20"),
		mk(4, "Vacanza alle Maldive", "", false, "2025-08-01", "2025-08-14"),
		mk(5, "Weekend a New York", "None", true, "2025-09-18", "2025-09-22"),
	}
}

func TestZeroSpecPassesEverything(t *testing.T) {
	trips := sampleTrips()
	got := Apply(trips, Spec{})
	if len(got) != len(trips) {
		t.Fatalf("expected all %d trips, got %d", len(trips), len(got))
	}
}

func TestTextSearchTitleOnly(t *testing.T) {
	trips := sampleTrips()

	got := Apply(trips, Spec{Query: "vacanza"})
	want := []string{"Vacanza a Parigi", "Vacanza alle Maldive"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}

	// Matching text in the category field must not count.
	if got := Apply(trips, Spec{Query: "culture"}); len(got) != 0 {
		t.Fatalf("search must match the title only, got %v", titles(got))
	}

	// Whitespace-only queries pass everything.
	if got := Apply(trips, Spec{Query: "   "}); len(got) != len(trips) {
		t.Fatalf("blank query should pass all trips, got %d", len(got))
	}
}

func TestFavoritesFilter(t *testing.T) {
	got := Apply(sampleTrips(), Spec{FavoritesOnly: true})
	want := []string{"Tour in Giappone", "Weekend a New York"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
}

func TestCategoryFilter(t *testing.T) {
	trips := sampleTrips()

	got := Apply(trips, Spec{Categories: []string{"Culture"}})
	want := []string{"Vacanza a Parigi", "Tour in Giappone"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
}

func TestCategoryNoneSemantics(t *testing.T) {
	trips := []*trip.Trip{
		mk(1, "empty", "", false, "2025-01-01", "2025-01-02"),
		mk(2, "literal none", "None", false, "2025-01-01", "2025-01-02"),
		mk(3, "lower none", "none", false, "2025-01-01", "2025-01-02"),
		mk(4, "beach", "Beach", false, "2025-01-01", "2025-01-02"),
	}

	got := Apply(trips, Spec{Categories: []string{"None"}})
	want := []string{"empty", "literal none", "lower none"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Fatalf("got %v, want %v", titles(got), want)
	}

	if got := Apply(trips, Spec{Categories: []string{"Beach"}}); !reflect.DeepEqual(titles(got), []string{"beach"}) {
		t.Fatalf("uncategorized trips must not match other selections, got %v", titles(got))
	}
}

func TestDateExactModes(t *testing.T) {
	trips := sampleTrips()

	got := Apply(trips, Spec{DateMode: ModeDeparture, Date: "2025-04-05"})
	if !reflect.DeepEqual(titles(got), []string{"Tour in Giappone"}) {
		t.Fatalf("departure mode got %v", titles(got))
	}

	got = Apply(trips, Spec{DateMode: ModeReturn, Date: "2024-12-10"})
	if !reflect.DeepEqual(titles(got), []string{"Safari in Kenya"}) {
		t.Fatalf("return mode got %v", titles(got))
	}
}

func TestDateRangeInclusion(t *testing.T) {
	// Trip A departs 07-01 and returns 07-10; the window [07-05, 07-20]
	// catches the return even though the departure is outside and the trip
	// does not span the window.
	a := mk(1, "A", "", false, "2025-07-01", "2025-07-10")
	got := Apply([]*trip.Trip{a}, Spec{DateMode: ModeRange, StartDate: "2025-07-05", EndDate: "2025-07-20"})
	if len(got) != 1 {
		t.Fatalf("expected A to be included via its return date")
	}

	// Spanning trip: window entirely inside the trip.
	got = Apply([]*trip.Trip{a}, Spec{DateMode: ModeRange, StartDate: "2025-07-03", EndDate: "2025-07-08"})
	if len(got) != 1 {
		t.Fatalf("expected A to be included by spanning the window")
	}

	// Inclusive bounds.
	got = Apply([]*trip.Trip{a}, Spec{DateMode: ModeRange, StartDate: "2025-07-10", EndDate: "2025-07-12"})
	if len(got) != 1 {
		t.Fatalf("range bounds must be inclusive")
	}

	// Disjoint window.
	got = Apply([]*trip.Trip{a}, Spec{DateMode: ModeRange, StartDate: "2025-08-01", EndDate: "2025-08-05"})
	if len(got) != 0 {
		t.Fatalf("expected A excluded by a disjoint window")
	}
}

func TestDateRangeFailsClosed(t *testing.T) {
	trips := sampleTrips()
	if got := Apply(trips, Spec{DateMode: ModeRange, StartDate: "2025-07-01"}); len(got) != 0 {
		t.Fatalf("a range filter missing a bound must exclude all trips, got %d", len(got))
	}
	if got := Apply(trips, Spec{DateMode: ModeRange}); len(got) != 0 {
		t.Fatalf("a range filter with no bounds must exclude all trips, got %d", len(got))
	}
}

func TestUnknownDateModePassesThrough(t *testing.T) {
	trips := sampleTrips()
	if got := Apply(trips, Spec{DateMode: "fortnight"}); len(got) != len(trips) {
		t.Fatalf("unknown mode must behave like %q, got %d trips", ModeAll, len(got))
	}
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	trips := sampleTrips()
	spec := Spec{Query: "a", FavoritesOnly: false, Categories: []string{"Culture"}, DateMode: ModeAll}

	first := Apply(trips, spec)
	second := Apply(trips, spec)
	if !reflect.DeepEqual(titles(first), titles(second)) {
		t.Fatalf("same spec over same trips must agree: %v vs %v", titles(first), titles(second))
	}

	again := Apply(first, spec)
	if !reflect.DeepEqual(titles(first), titles(again)) {
		t.Fatalf("applying a filter to its own output must be stable")
	}

	if len(trips) != 5 {
		t.Fatalf("Apply must not mutate its input")
	}
}
