// Package upload stores reference documents and extracts their text.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khlau/dsenotes/internal/apperr"
	"github.com/khlau/dsenotes/internal/models"
)

const (
	// MaxFileSize is the upload size limit.
	MaxFileSize = 10 << 20 // 10 MiB

	// maxExtractedRunes bounds the text returned to the client.
	maxExtractedRunes = 1000
)

// allowedExtensions is the upload allow-list. The check is a case-insensitive
// filename-suffix match only; content is never sniffed, so a renamed binary
// passes. Documented as a weak validation policy, not a security control.
var allowedExtensions = map[string]bool{
	".pdf": true, ".txt": true, ".doc": true, ".docx": true, ".md": true,
}

// Client-facing rejection messages, localized like the rest of the UI.
const (
	msgUnsupportedType = "不支持的文件類型。請上傳 PDF、TXT、DOC、DOCX 或 MD 文件。"
	msgFileTooLarge    = "文件大小超過 10MB 限制"
)

// ValidationError is a rejected upload (bad extension or oversize). It
// unwraps to apperr.ErrValidation and carries the localized message shown to
// the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return apperr.ErrValidation }

// Service saves uploads into a dedicated directory. Stored files are never
// deleted; orphans accumulate on disk.
type Service struct {
	dir string
}

// NewService creates a Service rooted at dir. The directory must already exist.
func NewService(dir string) (*Service, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("upload: resolve dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("upload: stat dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("upload: not a directory: %s", abs)
	}
	return &Service{dir: abs}, nil
}

// Save validates and stores one uploaded file, returning its stored path and
// extracted text. size is the declared file size and is checked before
// anything touches the disk.
func (s *Service) Save(field, filename string, r io.Reader, size int64) (models.UploadResult, error) {
	if size > MaxFileSize {
		return models.UploadResult{}, &ValidationError{Msg: msgFileTooLarge}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return models.UploadResult{}, &ValidationError{Msg: msgUnsupportedType}
	}

	storedName := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	dest := filepath.Join(s.dir, storedName)

	dst, err := os.Create(dest)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: create %s: %v", apperr.ErrUploadIO, storedName, err)
	}
	_, copyErr := io.Copy(dst, io.LimitReader(r, MaxFileSize+1))
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(dest)
		return models.UploadResult{}, fmt.Errorf("%w: write %s", apperr.ErrUploadIO, storedName)
	}

	content, err := s.extract(dest, filename, ext)
	if err != nil {
		return models.UploadResult{}, err
	}

	return models.UploadResult{
		FileName: filename,
		FilePath: dest,
		Content:  content,
	}, nil
}

// extract returns the stored file's text for plain-text formats. PDF, DOC and
// DOCX are accepted but never parsed; they get a fixed placeholder instead.
func (s *Service) extract(dest, filename, ext string) (string, error) {
	if ext != ".txt" && ext != ".md" {
		return fmt.Sprintf("文件：%s 已上傳，但需要額外的處理來提取文本內容。", filename), nil
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		return "", fmt.Errorf("%w: read back %s: %v", apperr.ErrUploadIO, filepath.Base(dest), err)
	}
	return truncate(string(data)), nil
}

// truncate caps text at maxExtractedRunes, appending an ellipsis marker when
// anything was cut off.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxExtractedRunes {
		return text
	}
	return string(runes[:maxExtractedRunes]) + "..."
}
