package places

import (
	"context"
	"testing"
)

func TestSearchEmptyQuery(t *testing.T) {
	ix := DefaultIndex()

	for _, q := range []string{"", "   ", "\t"} {
		matches, err := ix.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) error: %v", q, err)
		}
		if len(matches) != 0 {
			t.Errorf("Search(%q) = %d matches, want 0", q, len(matches))
		}
	}
}

func TestSearchRanking(t *testing.T) {
	ix := NewIndex([]Place{
		{ID: 1, Name: "Harbor", Popularity: 10},
		{ID: 2, Name: "Harborview Market", Popularity: 90},
		{ID: 3, Name: "Old Harbor", Popularity: 50},
		{ID: 4, Name: "The Anchorage", Kind: "harbor", Popularity: 99},
		{ID: 5, Name: "Bakery", Popularity: 80},
	})

	matches, err := ix.Search(context.Background(), "harbor")
	if err != nil {
		t.Fatal(err)
	}

	gotIDs := make([]int, len(matches))
	for i, m := range matches {
		gotIDs[i] = m.ID
	}
	// Exact > prefix > word prefix > kind; the unrelated bakery is out.
	wantIDs := []int{1, 2, 3, 4}
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("got %d matches %v, want %v", len(gotIDs), gotIDs, wantIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("match[%d] = id %d, want %d (all: %v)", i, gotIDs[i], wantIDs[i], gotIDs)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	ix := DefaultIndex()
	matches, err := ix.Search(context.Background(), "SALTGRASS")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 || matches[0].Name != "Saltgrass Beach" {
		t.Errorf("expected Saltgrass Beach first, got %+v", matches)
	}
}

func TestSearchCancellation(t *testing.T) {
	ix := DefaultIndex()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ix.Search(ctx, "harbor"); err == nil {
		t.Error("cancelled search should return the context error")
	}
}

func TestSearchCapsResults(t *testing.T) {
	var many []Place
	for i := 0; i < 100; i++ {
		many = append(many, Place{ID: i, Name: "Pier"})
	}
	ix := NewIndex(many)

	matches, err := ix.Search(context.Background(), "pier")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != maxResults {
		t.Errorf("len = %d, want %d", len(matches), maxResults)
	}
}

func TestDistance(t *testing.T) {
	// One degree of latitude is about 111km.
	d := Distance(45, -1.5, 46, -1.5)
	if d < 110_000 || d > 112_000 {
		t.Errorf("Distance = %v, want ~111km", d)
	}
	if Distance(45, -1.5, 45, -1.5) != 0 {
		t.Error("distance to self should be zero")
	}
}
