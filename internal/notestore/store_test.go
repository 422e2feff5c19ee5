package notestore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/khlau/dsenotes/internal/apperr"
	"github.com/khlau/dsenotes/internal/models"
	"github.com/khlau/dsenotes/internal/testutil"
)

func TestSaveAndListRoundTrip(t *testing.T) {
	_, store := testutil.TestStore(t)
	ctx := context.Background()

	note := models.Note{
		ID:      "phys-1",
		Title:   "牛頓定律",
		Subject: "physics",
		Content: "F = ma",
		Tags:    []string{"力學", "基礎"},
	}
	if _, err := store.Save(ctx, note); err != nil {
		t.Fatalf("Save: %v", err)
	}

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1", len(notes))
	}
	got := notes[0]
	if got.ID != "phys-1" || got.Title != note.Title || got.Subject != note.Subject || got.Content != note.Content {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "力學" {
		t.Errorf("tags = %v", got.Tags)
	}
}

func TestSaveStampsTimestamps(t *testing.T) {
	_, store := testutil.TestStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, models.Note{ID: "ts", Title: "t"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped on create")
	}

	provided := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	saved, err = store.Save(ctx, models.Note{ID: "ts", Title: "t", CreatedAt: provided})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !saved.CreatedAt.Equal(provided) {
		t.Errorf("CreatedAt = %v, want the provided value kept", saved.CreatedAt)
	}
}

func TestSaveFullReplace(t *testing.T) {
	_, store := testutil.TestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, models.Note{
		ID: "n1", Title: "v1", Subject: "math", Tags: []string{"algebra"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Second save omits subject and tags; nothing is inherited.
	if _, err := store.Save(ctx, models.Note{ID: "n1", Title: "v2"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1", len(notes))
	}
	got := notes[0]
	if got.Title != "v2" {
		t.Errorf("title = %q, want v2", got.Title)
	}
	if got.Subject != "" {
		t.Errorf("subject = %q, want empty (not inherited)", got.Subject)
	}
	if len(got.Tags) != 0 {
		t.Errorf("tags = %v, want empty (not inherited)", got.Tags)
	}
}

func TestDeleteMissingNote(t *testing.T) {
	_, store := testutil.TestStore(t)

	err := store.Delete(context.Background(), "ghost")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	dir, store := testutil.TestStore(t)
	ctx := context.Background()

	_, _ = store.Save(ctx, models.Note{ID: "bye", Title: "t"})
	if err := store.Delete(ctx, "bye"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bye.json")); !errors.Is(err, os.ErrNotExist) {
		t.Error("backing file still exists")
	}
}

func TestListCorruptFile(t *testing.T) {
	dir, store := testutil.TestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := store.List(context.Background())
	if !errors.Is(err, apperr.ErrStorageRead) {
		t.Errorf("err = %v, want ErrStorageRead", err)
	}
}

func TestConcurrentSavesLastWriteWins(t *testing.T) {
	_, store := testutil.TestStore(t)
	ctx := context.Background()

	a := models.Note{ID: "race", Title: "a", Content: "version a"}
	b := models.Note{ID: "race", Title: "b", Content: "version b"}

	var wg sync.WaitGroup
	for _, n := range []models.Note{a, b} {
		wg.Add(1)
		go func(n models.Note) {
			defer wg.Done()
			if _, err := store.Save(ctx, n); err != nil {
				t.Errorf("Save: %v", err)
			}
		}(n)
	}
	wg.Wait()

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("len(notes) = %d, want 1", len(notes))
	}
	got := notes[0]
	// Atomic rename means the survivor is one complete submitted record,
	// never a partial merge of both.
	if !(got.Title == "a" && got.Content == "version a") &&
		!(got.Title == "b" && got.Content == "version b") {
		t.Errorf("corrupted merge: %+v", got)
	}
}
