package model

import "fmt"

// Point is a single pen sample in device coordinates.
//
// Pressure is normalized to the 0.0-1.0 range; captures that carry no
// pressure channel store the 0.0 sentinel rather than omitting the field,
// so exporters never have to special-case missing channels. TiltX and
// TiltY follow the same convention. Timestamp is monotonic within the
// owning stroke.
type Point struct {
	X         float64
	Y         float64
	Pressure  float64
	TiltX     float64
	TiltY     float64
	Timestamp float64
}

// Stroke is one continuous pen-down-to-pen-up gesture: an ordered,
// time-sorted sequence of points. A stroke is never empty.
type Stroke struct {
	Points []Point

	// Widths holds the per-sample stroke width in device units. AvgWidth
	// is the arithmetic mean, used where a target format supports only a
	// single width per stroke.
	Widths   []float64
	AvgWidth float64

	// Brush indexes the owning Document's brush table, or NoBrush.
	Brush int

	// Start and End are the path parameter range from the source format
	// (normally 0 and 1).
	Start float64
	End   float64
}

// NoBrush marks a stroke or layer with no brush table reference.
const NoBrush = -1

// PointCount returns the number of samples in the stroke.
func (s *Stroke) PointCount() int {
	return len(s.Points)
}

// Bounds returns the componentwise min/max bounding box over all points.
// A stroke with a single point yields a zero-area box at that point.
func (s *Stroke) Bounds() BBox {
	if len(s.Points) == 0 {
		return BBox{}
	}
	minX, maxX := s.Points[0].X, s.Points[0].X
	minY, maxY := s.Points[0].Y, s.Points[0].Y
	for _, p := range s.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Layer is an ordered sequence of strokes. Brush, when not NoBrush, is a
// default brush reference shared by strokes that carry none of their own.
type Layer struct {
	Strokes []*Stroke
	Brush   int
}

// AddStroke appends a stroke to the layer.
func (l *Layer) AddStroke(s *Stroke) {
	l.Strokes = append(l.Strokes, s)
}

// StrokeCount returns the number of strokes in the layer.
func (l *Layer) StrokeCount() int {
	return len(l.Strokes)
}

// Color is an 8-bit RGBA color as decoded from the stroke color record.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a 0.0-1.0 value.
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Brush holds shared visual attributes referenced by one or more strokes.
// Immutable once parsed.
type Brush struct {
	Color Color
	Width float64
	Style string // Stroke-style identifier from the source format, if any
}
