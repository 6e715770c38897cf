package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/inkwill/model"
)

// Exporter serializes one page of a document to its target format.
// Implementations hold no mutable state and are safe for concurrent use.
type Exporter interface {
	ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error)
	Extension() string
}

// ExportError reports one page's export failure.
type ExportError struct {
	Page int    // 0-based page index
	Path string // Artifact path, when the failure happened at write time
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("page %d (%s): %v", e.Page, e.Path, e.Err)
	}
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportErrors aggregates per-page failures. Sibling pages are always
// attempted before the aggregate is returned.
type ExportErrors []*ExportError

func (e ExportErrors) Error() string {
	if len(e) == 1 {
		return "1 page export failed: " + e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d page exports failed: %s", len(e), strings.Join(msgs, "; "))
}

// ArtifactName derives the output file name for one page. Single-page
// documents use the template unchanged apart from the extension;
// multi-page documents get the 0-based page index injected before the
// extension so artifacts never collide and sort in page order.
func ArtifactName(template string, pageIndex, pageCount int, ext string) string {
	base := strings.TrimSuffix(template, filepath.Ext(template))
	if pageCount > 1 {
		return base + strconv.Itoa(pageIndex) + ext
	}
	return base + ext
}

// Pages exports every page of the document in order. A page's failure
// never aborts its siblings; all failures are collected and returned as
// an ExportErrors after every page has been attempted. Output for failed
// pages is nil.
func Pages(doc *model.Document, e Exporter, opts Options) ([][]byte, error) {
	out := make([][]byte, doc.PageCount())
	var errs ExportErrors
	for i, page := range doc.Pages {
		data, err := e.ExportPage(doc, page, opts)
		if err != nil {
			errs = append(errs, &ExportError{Page: i, Err: err})
			continue
		}
		out[i] = data
	}
	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// Files exports every page and writes one artifact per page, named from
// the template via ArtifactName. It returns the paths written. Like
// Pages, it attempts every page and aggregates failures.
func Files(doc *model.Document, e Exporter, template string, opts Options) ([]string, error) {
	var written []string
	var errs ExportErrors
	for i, page := range doc.Pages {
		name := ArtifactName(template, page.Index, doc.PageCount(), e.Extension())
		data, err := e.ExportPage(doc, page, opts)
		if err != nil {
			errs = append(errs, &ExportError{Page: i, Err: err})
			continue
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			errs = append(errs, &ExportError{Page: i, Path: name, Err: err})
			continue
		}
		written = append(written, name)
	}
	if len(errs) > 0 {
		return written, errs
	}
	return written, nil
}
