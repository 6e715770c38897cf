package model

// Page represents a single page (section) of a capture
type Page struct {
	Index  int      // 0-indexed page position, stable, drives output numbering
	Number int      // 1-indexed page number
	Width  float64  // Page width in device units
	Height float64  // Page height in device units
	Layers []*Layer // Ordered list of ink layers
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Layers: make([]*Layer, 0),
	}
}

// AddLayer adds a layer to the page
func (p *Page) AddLayer(l *Layer) {
	p.Layers = append(p.Layers, l)
}

// StrokeCount returns the number of strokes across all layers
func (p *Page) StrokeCount() int {
	var n int
	for _, l := range p.Layers {
		n += len(l.Strokes)
	}
	return n
}

// PointCount returns the number of point samples across all layers
func (p *Page) PointCount() int {
	var n int
	for _, l := range p.Layers {
		for _, s := range l.Strokes {
			n += len(s.Points)
		}
	}
	return n
}

// Bounds returns the union of all stroke bounding boxes on the page.
// A page with no strokes yields the zero box.
func (p *Page) Bounds() BBox {
	var bounds BBox
	first := true
	for _, l := range p.Layers {
		for _, s := range l.Strokes {
			if first {
				bounds = s.Bounds()
				first = false
				continue
			}
			bounds = bounds.Union(s.Bounds())
		}
	}
	return bounds
}
