// Package notestore persists notes as one JSON document per file.
package notestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/khlau/dsenotes/internal/apperr"
	"github.com/khlau/dsenotes/internal/models"
	"github.com/khlau/dsenotes/internal/storage"
)

// Store reads and writes note records through a storage.Provider. Writes are
// not serialized per id: two concurrent saves of the same note interleave at
// the file-system level and the last completed write wins.
type Store struct {
	files storage.Provider
}

// New creates a Store over the given provider.
func New(files storage.Provider) *Store {
	return &Store{files: files}
}

// List scans the notes directory and decodes every note file. Order follows
// the directory enumeration and is not guaranteed chronological.
func (s *Store) List(_ context.Context) ([]models.Note, error) {
	names, err := s.files.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorageRead, err)
	}
	notes := make([]models.Note, 0, len(names))
	for _, name := range names {
		data, err := s.files.Read(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrStorageRead, err)
		}
		var note models.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", apperr.ErrStorageRead, name, err)
		}
		// The file name is authoritative for the id.
		note.ID = strings.TrimSuffix(name, ".json")
		notes = append(notes, note)
	}
	return notes, nil
}

// Save writes the full note record to <id>.json, replacing any previous
// version entirely. It stamps UpdatedAt and defaults a zero CreatedAt to now;
// no field is inherited from the prior version.
func (s *Store) Save(_ context.Context, note models.Note) (models.Note, error) {
	now := time.Now().UTC()
	note.UpdatedAt = now
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: encode %s: %v", apperr.ErrStorageWrite, note.ID, err)
	}
	if err := s.files.Write(note.ID+".json", data); err != nil {
		return models.Note{}, fmt.Errorf("%w: %v", apperr.ErrStorageWrite, err)
	}
	return note, nil
}

// Delete removes the backing file for id.
func (s *Store) Delete(_ context.Context, id string) error {
	if err := s.files.Delete(id + ".json"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("%w: %v", apperr.ErrStorageWrite, err)
	}
	return nil
}
