// Package models defines the domain types for dsenotes.
package models

import "time"

// Note is a user-authored study record. The ID doubles as the filename stem
// of the backing JSON file and is stable once assigned.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Subject is one entry of the fixed academic subject catalog.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UploadResult describes a stored upload and its extracted text.
type UploadResult struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	Content  string `json:"content"`
}

// Answer is the result of one Q&A round trip. Answers are never persisted.
type Answer struct {
	Text      string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
