// Package testutil provides shared test helpers for setting up note and upload directories.
package testutil

import (
	"testing"

	"github.com/khlau/dsenotes/internal/notestore"
	"github.com/khlau/dsenotes/internal/storage"
	"github.com/khlau/dsenotes/internal/upload"
)

// TestStore creates a notestore backed by a temporary directory.
func TestStore(t *testing.T) (string, *notestore.Store) {
	t.Helper()
	dir := t.TempDir()
	files, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, notestore.New(files)
}

// TestUploads creates an upload service backed by a temporary directory.
func TestUploads(t *testing.T) (string, *upload.Service) {
	t.Helper()
	dir := t.TempDir()
	svc, err := upload.NewService(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, svc
}
