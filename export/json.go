package export

import (
	"encoding/json"

	"github.com/tsawler/inkwill/model"
)

// JSON exports a direct structural dump of a page plus the document brush
// table. The field names and nesting below are a stability contract:
// downstream tooling diffs this output across versions.
type JSON struct{}

// Extension returns the artifact file extension.
func (JSON) Extension() string { return ".json" }

type jsonPage struct {
	Index   int         `json:"index"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Layers  []jsonLayer `json:"layers"`
	Brushes []jsonBrush `json:"brushes"`
}

type jsonLayer struct {
	Strokes []jsonStroke `json:"strokes"`
}

type jsonStroke struct {
	Brush    int         `json:"brush"`
	Start    float64     `json:"start"`
	End      float64     `json:"end"`
	AvgWidth float64     `json:"avgWidth"`
	Widths   []float64   `json:"widths"`
	Points   []jsonPoint `json:"points"`
}

type jsonPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Pressure  float64 `json:"pressure"`
	TiltX     float64 `json:"tiltX"`
	TiltY     float64 `json:"tiltY"`
	Timestamp float64 `json:"timestamp"`
}

type jsonBrush struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Width   float64 `json:"width"`
	Style   string  `json:"style,omitempty"`
}

// ExportPage serializes one page to indented JSON.
func (JSON) ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error) {
	out := jsonPage{
		Index:   page.Index,
		Width:   page.Width,
		Height:  page.Height,
		Layers:  make([]jsonLayer, 0, len(page.Layers)),
		Brushes: make([]jsonBrush, 0, len(doc.Brushes)),
	}

	for _, layer := range page.Layers {
		jl := jsonLayer{Strokes: make([]jsonStroke, 0, len(layer.Strokes))}
		for _, stroke := range layer.Strokes {
			js := jsonStroke{
				Brush:    stroke.Brush,
				Start:    stroke.Start,
				End:      stroke.End,
				AvgWidth: stroke.AvgWidth,
				Widths:   stroke.Widths,
				Points:   make([]jsonPoint, 0, len(stroke.Points)),
			}
			if js.Widths == nil {
				js.Widths = []float64{}
			}
			for _, p := range stroke.Points {
				js.Points = append(js.Points, jsonPoint{
					X:         p.X,
					Y:         p.Y,
					Pressure:  p.Pressure,
					TiltX:     p.TiltX,
					TiltY:     p.TiltY,
					Timestamp: p.Timestamp,
				})
			}
			jl.Strokes = append(jl.Strokes, js)
		}
		out.Layers = append(out.Layers, jl)
	}

	for _, b := range doc.Brushes {
		out.Brushes = append(out.Brushes, jsonBrush{
			Color:   b.Color.Hex(),
			Opacity: b.Color.Opacity(),
			Width:   b.Width,
			Style:   b.Style,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
