package model

// Document represents a complete decoded capture: an ordered sequence of
// pages plus the shared brush table referenced by stroke brush indexes.
type Document struct {
	Pages   []*Page
	Brushes []Brush
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document, assigning its index and number
func (d *Document) AddPage(page *Page) {
	page.Index = len(d.Pages)
	page.Number = page.Index + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by index (0-indexed)
func (d *Document) GetPage(index int) *Page {
	if index < 0 || index >= len(d.Pages) {
		return nil
	}
	return d.Pages[index]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// StrokeCount returns the total number of strokes across all pages
func (d *Document) StrokeCount() int {
	var n int
	for _, page := range d.Pages {
		n += page.StrokeCount()
	}
	return n
}

// PointCount returns the total number of point samples across all pages
func (d *Document) PointCount() int {
	var n int
	for _, page := range d.Pages {
		n += page.PointCount()
	}
	return n
}

// InternBrush adds a brush to the document's brush table, reusing an
// existing entry when an identical brush is already present, and returns
// its index. This preserves the source format's many-to-one stroke-to-brush
// sharing without duplicating style data per stroke.
func (d *Document) InternBrush(b Brush) int {
	for i, existing := range d.Brushes {
		if existing == b {
			return i
		}
	}
	d.Brushes = append(d.Brushes, b)
	return len(d.Brushes) - 1
}

// Brush returns the brush at the given index, or nil if the index is
// NoBrush or out of range.
func (d *Document) Brush(index int) *Brush {
	if index < 0 || index >= len(d.Brushes) {
		return nil
	}
	return &d.Brushes[index]
}
