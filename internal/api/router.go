package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/khlau/dsenotes/internal/notestore"
	"github.com/khlau/dsenotes/internal/upload"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(notes *notestore.Store, uploads *upload.Service, ai Asker) chi.Router {
	h := NewHandler(notes, uploads, ai)

	r := chi.NewRouter()

	// Notes CRUD. POST and PUT share full-replace upsert semantics.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)

	// Reference document upload.
	r.Post("/upload", h.Upload)

	// One-shot Q&A.
	r.Post("/ask", h.Ask)

	// Fixed subject catalog.
	r.Get("/subjects", h.ListSubjects)

	return r
}
