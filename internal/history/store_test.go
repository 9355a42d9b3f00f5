package history

import (
	"fmt"
	"testing"

	"github.com/ced-it/promptforge/internal/prompt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestAddKeepsNewestTen(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 11; i++ {
		_, err := s.Add(prompt.Request{Keywords: fmt.Sprintf("idea %d", i)})
		if err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(entries), MaxEntries)
	}
	if entries[0].Request.Keywords != "idea 11" {
		t.Errorf("newest first: got %q", entries[0].Request.Keywords)
	}
	if entries[len(entries)-1].Request.Keywords != "idea 2" {
		t.Errorf("oldest kept should be idea 2, got %q", entries[len(entries)-1].Request.Keywords)
	}
	for _, e := range entries {
		if e.Request.Keywords == "idea 1" {
			t.Error("first submission should have been evicted")
		}
		if e.ID == "" || e.Timestamp.IsZero() {
			t.Error("entries must carry an id and a capture timestamp")
		}
	}
}

func TestAddSnapshotsFullRequest(t *testing.T) {
	s := newTestStore(t)

	req := prompt.Request{
		Keywords:         "un portrait",
		Type:             prompt.CategoryImage,
		Style:            prompt.StyleCreative,
		Language:         prompt.LanguageEnglish,
		HasAttachments:   true,
		NegativeKeywords: "blurry",
		AspectRatio:      "1:1",
		ArtistReference:  "Van Gogh",
		ImageVariants:    3,
		EnrichmentTags:   []string{"Cyberpunk", "Néon"},
	}
	if _, err := s.Add(req); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := entries[0].Request
	if got.ArtistReference != "Van Gogh" || got.ImageVariants != 3 || !got.HasAttachments {
		t.Errorf("request not fully snapshotted: %+v", got)
	}
	if len(got.EnrichmentTags) != 2 || got.EnrichmentTags[0] != "Cyberpunk" {
		t.Errorf("tags not preserved: %v", got.EnrichmentTags)
	}
}

func TestListSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := s1.Add(prompt.Request{Keywords: "persist me"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s2, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore reopen: %v", err)
	}
	entries, err := s2.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Request.Keywords != "persist me" {
		t.Errorf("history did not survive reopen: %v", entries)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(prompt.Request{Keywords: "x"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("history not empty after clear: %v", entries)
	}

	// Clearing an already-empty history is fine
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestCounterPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s1, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for i := 1; i <= 3; i++ {
		n, err := s1.Increment()
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if n != i {
			t.Errorf("Increment = %d, want %d", n, i)
		}
	}

	s2, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore reopen: %v", err)
	}
	n, err := s2.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count after reopen = %d, want 3", n)
	}
}
