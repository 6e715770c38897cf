package willdoc

import (
	"fmt"
	"math"

	"github.com/tsawler/inkwill/model"
	"github.com/tsawler/inkwill/wire"
)

// BuildOptions configures model construction.
type BuildOptions struct {
	// Lenient drops strokes that violate structural invariants, recording
	// a warning for each, instead of failing the whole build.
	Lenient bool
}

// Build lifts raw sections into a document model in strict mode: any
// stroke violating a structural invariant aborts the build with a
// ModelError and no document is returned.
func Build(sections []*RawSection) (*model.Document, []Warning, error) {
	return BuildWithOptions(sections, BuildOptions{})
}

// BuildWithOptions lifts raw sections into a document model. Construction
// is all-or-nothing: on error the returned document is nil. In lenient
// mode invalid strokes are dropped and enumerated in the returned
// warnings.
func BuildWithOptions(sections []*RawSection, opts BuildOptions) (*model.Document, []Warning, error) {
	doc := model.NewDocument()
	var warnings []Warning

	for pageIdx, section := range sections {
		page := model.NewPage(section.Width, section.Height)
		layer := &model.Layer{Brush: model.NoBrush}

		for strokeIdx, raw := range section.Paths {
			stroke, err := buildStroke(doc, raw)
			if err != nil {
				merr := &ModelError{Page: pageIdx, Stroke: strokeIdx, Err: err}
				if !opts.Lenient {
					return nil, nil, merr
				}
				warnings = append(warnings, Warning{
					Page:    pageIdx,
					Stroke:  strokeIdx,
					Message: merr.Error(),
				})
				continue
			}
			layer.AddStroke(stroke)
		}

		page.AddLayer(layer)
		doc.AddPage(page)
	}

	return doc, warnings, nil
}

// buildStroke normalizes one raw path record into a model stroke. The
// returned error wraps a model error kind sentinel; the caller adds page
// and stroke context.
func buildStroke(doc *model.Document, raw RawPath) (*model.Stroke, error) {
	if raw.Points == nil {
		return nil, fmt.Errorf("%w: points", ErrMissingRequiredField)
	}
	if raw.Widths == nil {
		return nil, fmt.Errorf("%w: strokeWidths", ErrMissingRequiredField)
	}

	scale := math.Pow(10, float64(raw.Precision))

	points, err := decodePoints(raw.Points, scale)
	if err != nil {
		return nil, err
	}

	widthInts, err := wire.PackedSint32(raw.Widths)
	if err != nil {
		return nil, fmt.Errorf("%w: stroke widths: %v", ErrMissingRequiredField, err)
	}
	widths := wire.DeltaDecode(widthInts, scale)

	stroke := &model.Stroke{
		Points:   points,
		Widths:   widths,
		AvgWidth: mean(widths),
		Brush:    model.NoBrush,
		Start:    float64(raw.Start),
		End:      float64(raw.End),
	}
	if err := validatePoints(stroke.Points); err != nil {
		return nil, err
	}

	stroke.Brush = doc.InternBrush(model.Brush{
		Color: decodeColor(raw.Color),
		Width: stroke.AvgWidth,
	})
	return stroke, nil
}

// decodePoints decodes the packed point payload: interleaved x/y pairs,
// the first pair absolute, every later pair a per-axis delta against the
// previous point, all in fixed point resolved by scale. Pressure and tilt
// have no channel in this format revision and stay at the 0.0 sentinel;
// the timestamp is the sample ordinal.
func decodePoints(payload []byte, scale float64) ([]model.Point, error) {
	ints, err := wire.PackedSint32(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: point data: %v", ErrInvalidPointCount, err)
	}
	if len(ints) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidPointCount)
	}
	if len(ints)%2 != 0 {
		return nil, fmt.Errorf("%w: dangling half pair (%d values)", ErrInvalidPointCount, len(ints))
	}

	points := make([]model.Point, len(ints)/2)
	var x, y int64
	for i := range points {
		x += int64(ints[2*i])
		y += int64(ints[2*i+1])
		points[i] = model.Point{
			X:         float64(x) / scale,
			Y:         float64(y) / scale,
			Timestamp: float64(i),
		}
	}
	return points, nil
}

// validatePoints enforces the stroke invariants: at least one point and
// non-decreasing timestamps.
func validatePoints(points []model.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty stroke", ErrInvalidPointCount)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp < points[i-1].Timestamp {
			return fmt.Errorf("%w: sample %d precedes sample %d", ErrInconsistentTimestamps, i, i-1)
		}
	}
	return nil
}

// decodeColor interprets the stroke color payload as packed sint32 RGBA
// channel values. A missing or malformed payload falls back to opaque
// black, the format's default pen color.
func decodeColor(payload []byte) model.Color {
	black := model.Color{R: 0, G: 0, B: 0, A: 255}
	if payload == nil {
		return black
	}
	vals, err := wire.PackedSint32(payload)
	if err != nil || len(vals) < 3 {
		return black
	}
	c := model.Color{
		R: clampChannel(vals[0]),
		G: clampChannel(vals[1]),
		B: clampChannel(vals[2]),
		A: 255,
	}
	if len(vals) >= 4 {
		c.A = clampChannel(vals[3])
	}
	return c
}

func clampChannel(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
