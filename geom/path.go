package geom

import (
	"errors"

	"github.com/tsawler/inkwill/model"
)

// ErrEmptyStroke is returned when a path is requested for a stroke with no
// points.
var ErrEmptyStroke = errors.New("geom: stroke has no points")

// SmoothingTolerance is the documented bound on the maximum perpendicular
// distance, in device units, between a smoothed curve and the polyline
// through the same points, for strokes sampled at pen speed.
const SmoothingTolerance = 0.5

// Op identifies a drawing command.
type Op int

// Drawing commands.
const (
	// MoveTo starts a subpath at (X, Y).
	MoveTo Op = iota
	// LineTo draws a straight line to (X, Y).
	LineTo
	// CubeTo draws a cubic Bezier to (X, Y) with control points
	// (X1, Y1) and (X2, Y2).
	CubeTo
)

// Segment is one drawing command. Control point fields are meaningful only
// for CubeTo.
type Segment struct {
	Op     Op
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// Mode selects how a stroke's points become path segments.
type Mode int

// Rendering modes.
const (
	// ModePolyline connects consecutive points with straight lines.
	ModePolyline Mode = iota
	// ModeSmoothed fits a smoothed curve through the points.
	ModeSmoothed
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePolyline:
		return "polyline"
	case ModeSmoothed:
		return "smoothed"
	default:
		return "unknown"
	}
}

// Path generates the segment sequence for a stroke in the given mode.
func Path(points []model.Point, mode Mode) ([]Segment, error) {
	if mode == ModeSmoothed {
		return SmoothedCurve(points)
	}
	return Polyline(points)
}

// Polyline converts a point sequence into a move followed by one line
// command per consecutive point pair. The output passes through every
// input point exactly, in order.
func Polyline(points []model.Point) ([]Segment, error) {
	if len(points) == 0 {
		return nil, ErrEmptyStroke
	}
	segs := make([]Segment, 0, len(points))
	segs = append(segs, Segment{Op: MoveTo, X: points[0].X, Y: points[0].Y})
	for _, p := range points[1:] {
		segs = append(segs, Segment{Op: LineTo, X: p.X, Y: p.Y})
	}
	return segs, nil
}
