// Package api implements the dsenotes REST API using chi.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khlau/dsenotes/internal/apperr"
	"github.com/khlau/dsenotes/internal/gateway"
	"github.com/khlau/dsenotes/internal/models"
	"github.com/khlau/dsenotes/internal/notestore"
	"github.com/khlau/dsenotes/internal/subjects"
	"github.com/khlau/dsenotes/internal/upload"
)

// Asker is the Q&A gateway surface the API depends on.
type Asker interface {
	Ask(ctx context.Context, in gateway.AskInput) (models.Answer, error)
	Enabled() bool
}

// Handler holds API route handlers.
type Handler struct {
	notes   *notestore.Store
	uploads *upload.Service
	ai      Asker
}

// NewHandler creates a new Handler.
func NewHandler(notes *notestore.Store, uploads *upload.Service, ai Asker) *Handler {
	return &Handler{notes: notes, uploads: uploads, ai: ai}
}

// ListNotes handles GET /api/notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("無法讀取筆記"))
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/notes. A missing id is assigned by the server;
// an existing id is overwritten with the full record (last write wins).
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	h.saveNote(w, r, "")
}

// UpdateNote handles PUT /api/notes/{id} with full-replace semantics.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	h.saveNote(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request, id string) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("無效的請求內容"))
		return
	}
	if id != "" {
		// The URL is authoritative on PUT.
		req.ID = id
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	note := models.Note{
		ID:        req.ID,
		Title:     req.Title,
		Subject:   req.Subject,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: req.CreatedAt,
	}
	saved, err := h.notes.Save(r.Context(), note)
	if err != nil {
		slog.Error("save note failed", slog.String("id", req.ID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("保存筆記失敗"))
		return
	}
	writeJSON(w, http.StatusOK, SaveNoteResponse{Success: true, ID: saved.ID})
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.notes.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("筆記不存在"))
			return
		}
		slog.Error("delete note failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("刪除筆記失敗"))
		return
	}
	writeJSON(w, http.StatusOK, DeleteNoteResponse{Success: true})
}

// ListSubjects handles GET /api/subjects.
func (h *Handler) ListSubjects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, subjects.List())
}

// Ask handles POST /api/ask.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("無效的請求內容"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("請輸入問題"))
		return
	}
	if !h.ai.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, errorBody("AI 問答服務暫時不可用"))
		return
	}

	answer, err := h.ai.Ask(r.Context(), gateway.AskInput{
		Question:        req.Question,
		SubjectLabel:    subjects.Lookup(req.Subject),
		Context:         req.Context,
		UploadedContent: req.UploadedContent,
	})
	if err != nil {
		slog.Error("ask failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, errorBody("AI 問答服務暫時不可用"))
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: answer.Text, Timestamp: answer.Timestamp})
}
