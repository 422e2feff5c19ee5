package api

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// noteIDRe restricts ids to plain filename stems; the id becomes a file name.
var noteIDRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// SaveNoteRequest is the request body for creating or replacing a note.
// The full record is written as sent; omitted fields are not inherited from
// any prior version.
type SaveNoteRequest struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the request. The id is optional on POST (the server
// assigns one) but must be a safe filename stem when present.
func (r SaveNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Match(noteIDRe)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

// AskRequest is the request body for one Q&A round trip.
type AskRequest struct {
	Question        string `json:"question"`
	Subject         string `json:"subject"`
	Context         string `json:"context"`
	UploadedContent string `json:"uploadedContent"`
}

// Validate rejects empty questions server-side rather than trusting the
// browser client to do so.
func (r AskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question, validation.Required),
	)
}

// SaveNoteResponse confirms a note write.
type SaveNoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// DeleteNoteResponse confirms a note deletion.
type DeleteNoteResponse struct {
	Success bool `json:"success"`
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	Content  string `json:"content"`
	Message  string `json:"message"`
}

// AskResponse carries the raw completion text and its generation time.
type AskResponse struct {
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
