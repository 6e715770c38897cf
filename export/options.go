package export

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/tsawler/inkwill/geom"
	"github.com/tsawler/inkwill/model"
)

// Options holds configuration shared by all exporters.
type Options struct {
	// Mode selects polyline or smoothed-curve rendering for targets that
	// draw paths (SVG, PDF).
	Mode geom.Mode

	// Precision is the number of decimal places for serialized
	// coordinates.
	Precision int

	// FallbackColor is the stroke color used when a stroke carries no
	// brush reference. Any SVG 1.1 color name is accepted; unrecognized
	// names fall back to black.
	FallbackColor string
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{
		Mode:          geom.ModePolyline,
		Precision:     2,
		FallbackColor: "black",
	}
}

// strokeColor resolves the color for a stroke: its brush color when the
// stroke references one, the named fallback otherwise.
func (o Options) strokeColor(doc *model.Document, s *model.Stroke) model.Color {
	if b := doc.Brush(s.Brush); b != nil {
		return b.Color
	}
	if c, ok := colornames.Map[strings.ToLower(o.FallbackColor)]; ok {
		return model.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return model.Color{A: 255}
}

// strokeWidth resolves the stroke width: the brush width when referenced,
// the stroke's own average width otherwise.
func strokeWidth(doc *model.Document, s *model.Stroke) float64 {
	if b := doc.Brush(s.Brush); b != nil && b.Width > 0 {
		return b.Width
	}
	if s.AvgWidth > 0 {
		return s.AvgWidth
	}
	return 1
}
