package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khlau/dsenotes/internal/apperr"
)

func tempService(t *testing.T) (string, *Service) {
	t.Helper()
	dir := t.TempDir()
	svc, err := NewService(dir)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return dir, svc
}

func save(t *testing.T, svc *Service, name, content string) (string, error) {
	t.Helper()
	res, err := svc.Save("ebook", name, strings.NewReader(content), int64(len(content)))
	return res.Content, err
}

func TestSaveTxtExtractsContent(t *testing.T) {
	_, svc := tempService(t)
	got, err := save(t, svc, "hello.txt", "Hello World")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got != "Hello World" {
		t.Errorf("content = %q, want exact text without truncation marker", got)
	}
}

func TestSaveTruncatesLongText(t *testing.T) {
	_, svc := tempService(t)
	long := strings.Repeat("a", 1500)
	got, err := save(t, svc, "long.txt", long)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := strings.Repeat("a", 1000) + "..."
	if got != want {
		t.Errorf("len = %d, want first 1000 chars plus ellipsis", len(got))
	}
}

func TestSaveMarkdownExtracted(t *testing.T) {
	_, svc := tempService(t)
	got, err := save(t, svc, "notes.MD", "# 標題")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got != "# 標題" {
		t.Errorf("content = %q", got)
	}
}

func TestSavePdfReturnsPlaceholder(t *testing.T) {
	_, svc := tempService(t)
	got, err := save(t, svc, "book.pdf", "%PDF-1.4 binary stuff")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.Contains(got, "book.pdf") || !strings.Contains(got, "需要額外的處理") {
		t.Errorf("placeholder = %q", got)
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	dir, svc := tempService(t)
	_, err := save(t, svc, "virus.exe", "MZ")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	assertDirEmpty(t, dir)
}

func TestSaveRejectsOversizeBeforeWrite(t *testing.T) {
	dir, svc := tempService(t)
	_, err := svc.Save("ebook", "big.txt", strings.NewReader("tiny"), MaxFileSize+1)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	assertDirEmpty(t, dir)
}

func TestStoredNameKeepsExtension(t *testing.T) {
	dir, svc := tempService(t)
	res, err := svc.Save("ebook", "My Notes.TXT", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(res.FilePath) != ".txt" {
		t.Errorf("stored path = %q, want .txt extension", res.FilePath)
	}
	if res.FileName != "My Notes.TXT" {
		t.Errorf("fileName = %q, want original name", res.FileName)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("stored files = %d, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "ebook-") {
		t.Errorf("stored name = %q, want ebook- prefix", entries[0].Name())
	}
}

func TestValidationErrorCarriesMessage(t *testing.T) {
	_, svc := tempService(t)
	_, err := save(t, svc, "bad.zip", "PK")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *ValidationError", err)
	}
	if !strings.Contains(verr.Msg, "不支持的文件類型") {
		t.Errorf("msg = %q", verr.Msg)
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	// Multi-byte text must be cut at rune boundaries, not bytes.
	long := strings.Repeat("中", 1200)
	got := truncate(long)
	want := strings.Repeat("中", 1000) + "..."
	if got != want {
		t.Errorf("truncate cut mid-rune: len=%d", len(got))
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after rejected upload: %d entries", len(entries))
	}
}
