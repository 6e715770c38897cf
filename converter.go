package inkwill

import (
	"fmt"
	"sort"

	"github.com/tsawler/inkwill/export"
	"github.com/tsawler/inkwill/geom"
	"github.com/tsawler/inkwill/model"
	"github.com/tsawler/inkwill/willdoc"
)

// Converter provides a fluent interface for decoding ink containers and
// exporting their strokes. Each configuration method returns a new
// Converter instance, making it safe for concurrent use and allowing
// method chaining.
type Converter struct {
	// Source
	filename string

	// Reader
	reader *willdoc.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		reader:       c.reader,
		ownsReader:   c.ownsReader,
		readerOpened: c.readerOpened,
		options:      c.options.clone(),
		err:          c.err,
		warnings:     append([]Warning(nil), c.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (c *Converter) ensureReader() error {
	if c.readerOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := willdoc.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open container: %w", err)
	}
	c.reader = r
	c.ownsReader = true
	c.readerOpened = true
	return nil
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsReader && c.reader != nil {
		err := c.reader.Close()
		c.reader = nil
		c.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages specifies which pages to convert (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := inkwill.Open("notes.will").Pages(1, 3).Document()
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// PageRange specifies a range of pages to convert (1-indexed, inclusive).
//
// Example:
//
//	doc, _, err := inkwill.Open("notes.will").PageRange(2, 4).Document()
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	for i := start; i <= end; i++ {
		newConv.options.pages = append(newConv.options.pages, i)
	}
	return newConv
}

// Polyline configures exporters to render each stroke as straight line
// segments between its points. This is the default.
func (c *Converter) Polyline() *Converter {
	newConv := c.clone()
	newConv.options.mode = geom.ModePolyline
	return newConv
}

// Smoothed configures exporters to render each stroke as an interpolating
// curve through its points.
//
// Example:
//
//	paths, _, err := inkwill.Open("notes.will").Smoothed().SaveSVG("notes.svg")
func (c *Converter) Smoothed() *Converter {
	newConv := c.clone()
	newConv.options.mode = geom.ModeSmoothed
	return newConv
}

// Precision sets the number of decimal places for serialized coordinates.
// The default is 2.
func (c *Converter) Precision(digits int) *Converter {
	newConv := c.clone()
	newConv.options.precision = digits
	return newConv
}

// FallbackColor sets the stroke color used when a stroke carries no brush
// reference. Any SVG 1.1 color name is accepted. The default is "black".
func (c *Converter) FallbackColor(name string) *Converter {
	newConv := c.clone()
	newConv.options.fallbackColor = name
	return newConv
}

// Lenient configures decoding to drop malformed strokes and report them
// as warnings instead of failing the whole document.
//
// Example:
//
//	doc, warnings, err := inkwill.Open("damaged.will").Lenient().Document()
func (c *Converter) Lenient() *Converter {
	newConv := c.clone()
	newConv.options.lenient = true
	return newConv
}

// Strict configures decoding to fail on the first malformed stroke.
// This is the default.
func (c *Converter) Strict() *Converter {
	newConv := c.clone()
	newConv.options.lenient = false
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document decodes the container into a Document holding the selected
// pages. This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := inkwill.Open("notes.will").Document()
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	if err := c.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer c.Close()

	return c.decode()
}

// PageCount returns the number of pages in the container.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	conv := inkwill.Open("notes.will")
//	defer conv.Close()
//	count, err := conv.PageCount()
func (c *Converter) PageCount() (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	if err := c.ensureReader(); err != nil {
		return 0, err
	}

	return c.reader.SectionCount(), nil
}

// SaveSVG decodes the selected pages and writes one SVG file per page,
// named from the template. Multi-page documents get the 0-based page
// index injected before the extension. It returns the paths written and
// any decode warnings.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	paths, warnings, err := inkwill.Open("notes.will").SaveSVG("out/notes.svg")
func (c *Converter) SaveSVG(template string) ([]string, []Warning, error) {
	return c.Save(export.SVG{}, template)
}

// SaveInkML decodes the selected pages and writes one InkML file per
// page, named from the template. It returns the paths written and any
// decode warnings.
// This is a terminal operation that closes the underlying reader.
func (c *Converter) SaveInkML(template string) ([]string, []Warning, error) {
	return c.Save(export.InkML{}, template)
}

// SaveJSON decodes the selected pages and writes one JSON file per page,
// named from the template. It returns the paths written and any decode
// warnings.
// This is a terminal operation that closes the underlying reader.
func (c *Converter) SaveJSON(template string) ([]string, []Warning, error) {
	return c.Save(export.JSON{}, template)
}

// SavePDF decodes the selected pages and writes one PDF file per page,
// named from the template. It returns the paths written and any decode
// warnings.
// This is a terminal operation that closes the underlying reader.
func (c *Converter) SavePDF(template string) ([]string, []Warning, error) {
	return c.Save(export.PDF{}, template)
}

// Save decodes the selected pages and writes one artifact per page using
// the given exporter. Export failures on one page never abort its
// siblings; all failures are aggregated in the returned error. Decode
// warnings (lenient-mode drops) are returned alongside the paths so
// callers can enumerate them even when every artifact is written.
// This is a terminal operation that closes the underlying reader.
func (c *Converter) Save(e export.Exporter, template string) ([]string, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	if err := c.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer c.Close()

	doc, warnings, err := c.decode()
	if err != nil {
		return nil, warnings, err
	}

	written, err := export.Files(doc, e, template, c.exportOptions())
	return written, warnings, err
}

// Render decodes the selected pages and returns one in-memory artifact
// per page using the given exporter.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	pages, warnings, err := inkwill.Open("notes.will").Render(export.SVG{})
func (c *Converter) Render(e export.Exporter) ([][]byte, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	if err := c.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer c.Close()

	doc, warnings, err := c.decode()
	if err != nil {
		return nil, warnings, err
	}

	out, err := export.Pages(doc, e, c.exportOptions())
	return out, warnings, err
}

// decode builds the document and applies page selection.
func (c *Converter) decode() (*model.Document, []Warning, error) {
	doc, warnings, err := c.reader.DocumentWithOptions(willdoc.BuildOptions{
		Lenient: c.options.lenient,
	})
	warnings = append(append([]Warning(nil), c.warnings...), warnings...)
	if err != nil {
		return nil, warnings, err
	}

	pageIndices, err := c.resolvePages(doc.PageCount())
	if err != nil {
		return nil, warnings, err
	}
	if len(pageIndices) == doc.PageCount() {
		return doc, warnings, nil
	}

	selected := model.NewDocument()
	selected.Brushes = doc.Brushes
	for _, idx := range pageIndices {
		selected.AddPage(doc.Pages[idx])
	}
	return selected, warnings, nil
}

// resolvePages converts the 1-indexed page selection to sorted, unique
// 0-based indices. An empty selection means all pages.
func (c *Converter) resolvePages(pageCount int) ([]int, error) {
	if len(c.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range c.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	sort.Ints(pageIndices)
	return pageIndices, nil
}

func (c *Converter) exportOptions() export.Options {
	return export.Options{
		Mode:          c.options.mode,
		Precision:     c.options.precision,
		FallbackColor: c.options.fallbackColor,
	}
}
