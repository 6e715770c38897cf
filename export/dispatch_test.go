package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/inkwill/model"
)

// ============================================================================
// Artifact naming
// ============================================================================

func TestArtifactName(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		pageIndex int
		pageCount int
		ext       string
		want      string
	}{
		{"single page keeps template", "notes.svg", 0, 1, ".svg", "notes.svg"},
		{"single page fixes extension", "notes.will", 0, 1, ".svg", "notes.svg"},
		{"single page adds extension", "notes", 0, 1, ".json", "notes.json"},
		{"multi page first", "notes.svg", 0, 3, ".svg", "notes0.svg"},
		{"multi page last", "notes.svg", 2, 3, ".svg", "notes2.svg"},
		{"multi page with dir", "out/notes.pdf", 1, 2, ".pdf", "out/notes1.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArtifactName(tt.template, tt.pageIndex, tt.pageCount, tt.ext)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ============================================================================
// Page dispatch
// ============================================================================

// failingExporter fails on one page index and succeeds on all others.
type failingExporter struct {
	failPage int
}

func (failingExporter) Extension() string { return ".out" }

func (f failingExporter) ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error) {
	if page.Index == f.failPage {
		return nil, errors.New("render failed")
	}
	return []byte("page\n"), nil
}

func TestPagesExportsAll(t *testing.T) {
	doc := multiPageDoc(3)
	out, err := Pages(doc, SVG{}, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 page outputs, got %d", len(out))
	}
	for i, data := range out {
		if len(data) == 0 {
			t.Errorf("page %d: empty output", i)
		}
	}
}

func TestPagesFailureIsolation(t *testing.T) {
	doc := multiPageDoc(3)
	out, err := Pages(doc, failingExporter{failPage: 1}, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for the failing page")
	}

	var errs ExportErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ExportErrors, got %T", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 page failure, got %d", len(errs))
	}
	if errs[0].Page != 1 {
		t.Errorf("expected failure on page 1, got page %d", errs[0].Page)
	}

	// Siblings of the failed page are still produced.
	if out[0] == nil || out[2] == nil {
		t.Error("sibling pages should still be exported")
	}
	if out[1] != nil {
		t.Error("failed page should have nil output")
	}
}

func TestFilesMultiPage(t *testing.T) {
	dir := t.TempDir()
	doc := multiPageDoc(3)
	template := filepath.Join(dir, "notes.svg")

	written, err := Files(doc, SVG{}, template, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(written))
	}

	// One numbered artifact per page, in page order.
	for i, path := range written {
		want := filepath.Join(dir, "notes"+string(rune('0'+i))+".svg")
		if path != want {
			t.Errorf("artifact %d: expected %q, got %q", i, want, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("artifact %d not written: %v", i, err)
		}
	}
}

func TestFilesSinglePage(t *testing.T) {
	dir := t.TempDir()
	doc := multiPageDoc(1)
	template := filepath.Join(dir, "notes.json")

	written, err := Files(doc, JSON{}, template, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(written))
	}
	if written[0] != template {
		t.Errorf("single-page artifact should keep the template name, got %q", written[0])
	}
}

func TestFilesFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	doc := multiPageDoc(3)
	template := filepath.Join(dir, "notes.out")

	written, err := Files(doc, failingExporter{failPage: 0}, template, DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for the failing page")
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 artifacts despite the failure, got %d", len(written))
	}

	var errs ExportErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ExportErrors, got %T", err)
	}
	if errs[0].Page != 0 {
		t.Errorf("expected failure on page 0, got page %d", errs[0].Page)
	}
}
