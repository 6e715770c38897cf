package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/inkwill/geom"
	"github.com/tsawler/inkwill/model"
)

// SVG exports one vector-graphics canvas per page. Each stroke becomes a
// polyline element (ModePolyline) or a curved path element (ModeSmoothed).
type SVG struct{}

// Extension returns the artifact file extension.
func (SVG) Extension() string { return ".svg" }

// ExportPage serializes one page to SVG.
func (SVG) ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error) {
	var b bytes.Buffer
	w := fnumFormatter(opts.Precision)

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		w(page.Width), w(page.Height), w(page.Width), w(page.Height))

	for _, layer := range page.Layers {
		for _, stroke := range layer.Strokes {
			if err := writeSVGStroke(&b, doc, stroke, opts, w); err != nil {
				return nil, err
			}
		}
	}

	b.WriteString("</svg>\n")
	return b.Bytes(), nil
}

func writeSVGStroke(b *bytes.Buffer, doc *model.Document, stroke *model.Stroke, opts Options, w func(float64) string) error {
	color := opts.strokeColor(doc, stroke)
	width := strokeWidth(doc, stroke)

	attrs := fmt.Sprintf("fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" stroke-linejoin=\"round\"",
		color.Hex(), w(width))
	if color.A < 255 {
		attrs += fmt.Sprintf(" stroke-opacity=\"%s\"", w(color.Opacity()))
	}

	if opts.Mode == geom.ModePolyline {
		segs, err := geom.Polyline(stroke.Points)
		if err != nil {
			return err
		}
		pts := make([]string, 0, len(segs))
		for _, seg := range segs {
			pts = append(pts, w(seg.X)+","+w(seg.Y))
		}
		fmt.Fprintf(b, "  <polyline %s points=\"%s\"/>\n", attrs, strings.Join(pts, " "))
		return nil
	}

	segs, err := geom.SmoothedCurve(stroke.Points)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, "  <path %s d=\"%s\"/>\n", attrs, pathData(segs, w))
	return nil
}

// pathData renders segments as an SVG path data string.
func pathData(segs []geom.Segment, w func(float64) string) string {
	var d strings.Builder
	for i, seg := range segs {
		if i > 0 {
			d.WriteByte(' ')
		}
		switch seg.Op {
		case geom.MoveTo:
			d.WriteString("M" + w(seg.X) + " " + w(seg.Y))
		case geom.LineTo:
			d.WriteString("L" + w(seg.X) + " " + w(seg.Y))
		case geom.CubeTo:
			d.WriteString("C" + w(seg.X1) + " " + w(seg.Y1) +
				" " + w(seg.X2) + " " + w(seg.Y2) +
				" " + w(seg.X) + " " + w(seg.Y))
		}
	}
	return d.String()
}

// fnumFormatter returns a formatter bounding coordinates to the given
// number of decimal places.
func fnumFormatter(precision int) func(float64) string {
	if precision < 0 {
		precision = 0
	}
	return func(v float64) string {
		s := strconv.FormatFloat(v, 'f', precision, 64)
		// Keep output stable and compact: trim a trailing ".00" style tail.
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
}
