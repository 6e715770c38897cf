package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/inkwill/geom"
	"github.com/tsawler/inkwill/model"
)

// PDF exports one single-page vector PDF per page, drawing each stroke
// with the same path commands the SVG target uses.
type PDF struct{}

// Extension returns the artifact file extension.
func (PDF) Extension() string { return ".pdf" }

// ExportPage serializes one page to PDF.
func (PDF) ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, layer := range page.Layers {
		for _, stroke := range layer.Strokes {
			segs, err := geom.Path(stroke.Points, opts.Mode)
			if err != nil {
				return nil, err
			}

			color := opts.strokeColor(doc, stroke)
			pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
			pdf.SetLineWidth(strokeWidth(doc, stroke))

			for _, seg := range segs {
				switch seg.Op {
				case geom.MoveTo:
					pdf.MoveTo(seg.X, seg.Y)
				case geom.LineTo:
					pdf.LineTo(seg.X, seg.Y)
				case geom.CubeTo:
					pdf.CurveBezierCubicTo(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y)
				}
			}
			pdf.DrawPath("D")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF page %d: %w", page.Index, err)
	}
	return buf.Bytes(), nil
}
