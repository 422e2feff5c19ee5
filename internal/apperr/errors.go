// Package apperr defines the sentinel errors shared across the application.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a note id has no backing file.
	ErrNotFound = errors.New("not found")
	// ErrStorageRead is returned when the notes directory or a note file
	// cannot be read or decoded.
	ErrStorageRead = errors.New("storage read failed")
	// ErrStorageWrite is returned when a note file cannot be written.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrValidation is returned for rejected input (upload type/size, bad request body).
	ErrValidation = errors.New("validation failed")
	// ErrUploadIO is returned when saving an accepted upload fails on disk.
	ErrUploadIO = errors.New("upload failed")
	// ErrGatewayUnavailable covers any AI provider failure, undifferentiated.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)
