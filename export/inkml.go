package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/inkwill/model"
)

// himetricScale converts device units to himetric for the InkML X and Y
// channels (1 device unit = 26.45833 himetric at the capture resolution).
const himetricScale = 26.45833

// forceScale converts a device-unit stroke width to the InkML F channel's
// integer range.
const forceScale = 1000

// InkML exports one W3C InkML document per page: one trace element per
// stroke, channel definitions for X, Y, and F, and one brush definition
// per document brush referenced by id.
type InkML struct{}

// Extension returns the artifact file extension.
func (InkML) Extension() string { return ".inkml" }

// ExportPage serializes one page to InkML.
func (InkML) ExportPage(doc *model.Document, page *model.Page, opts Options) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(`<inkml:ink xmlns:emma="http://www.w3.org/2003/04/emma" xmlns:msink="http://schemas.microsoft.com/ink/2010/main" xmlns:inkml="http://www.w3.org/2003/InkML">` + "\n")
	writeInkMLDefinitions(&b, doc, opts)

	b.WriteString("  <inkml:traceGroup>\n")
	traceID := 0
	for _, layer := range page.Layers {
		for _, stroke := range layer.Strokes {
			brushRef := "br0"
			if stroke.Brush != model.NoBrush {
				brushRef = "br" + strconv.Itoa(stroke.Brush)
			}
			fmt.Fprintf(&b, "    <inkml:trace xml:id=\"trace_%d\" contextRef=\"#ctxCoordinatesWithPressure\" brushRef=\"#%s\">%s</inkml:trace>\n",
				traceID, brushRef, traceData(stroke))
			traceID++
		}
	}
	b.WriteString("  </inkml:traceGroup>\n")
	b.WriteString("</inkml:ink>\n")
	return b.Bytes(), nil
}

// traceData serializes a stroke's samples as "X Y F" triples separated by
// commas, the sample encoding ink recognizers expect.
func traceData(stroke *model.Stroke) string {
	force := int(math.Round(stroke.AvgWidth * forceScale))
	samples := make([]string, 0, len(stroke.Points))
	for _, p := range stroke.Points {
		samples = append(samples, fmt.Sprintf("%d %d %d",
			int(p.X*himetricScale), int(p.Y*himetricScale), force))
	}
	return strings.Join(samples, ",")
}

func writeInkMLDefinitions(b *bytes.Buffer, doc *model.Document, opts Options) {
	b.WriteString(`  <inkml:definitions>
    <inkml:context xml:id="ctxCoordinatesWithPressure">
      <inkml:inkSource xml:id="inkSrcCoordinatesWithPressure">
        <inkml:traceFormat>
          <inkml:channel name="X" type="integer" max="32767" units="himetric"/>
          <inkml:channel name="Y" type="integer" max="32767" units="himetric"/>
          <inkml:channel name="F" type="integer" max="32767" units="dev"/>
        </inkml:traceFormat>
        <inkml:channelProperties>
          <inkml:channelProperty channel="X" name="resolution" value="1" units="1/himetric"/>
          <inkml:channelProperty channel="Y" name="resolution" value="1" units="1/himetric"/>
          <inkml:channelProperty channel="F" name="resolution" value="1" units="1/dev"/>
        </inkml:channelProperties>
      </inkml:inkSource>
    </inkml:context>
`)

	brushes := doc.Brushes
	if len(brushes) == 0 {
		// Documents without style records still need a referenceable brush.
		brushes = []model.Brush{{Color: opts.strokeColor(doc, &model.Stroke{Brush: model.NoBrush}), Width: 1}}
	}
	for i, brush := range brushes {
		writeInkMLBrush(b, i, brush)
	}
	b.WriteString("  </inkml:definitions>\n")
}

func writeInkMLBrush(b *bytes.Buffer, id int, brush model.Brush) {
	size := int(math.Round(brush.Width * himetricScale))
	if size <= 0 {
		size = 100
	}
	transparency := 255 - int(brush.Color.A)

	fmt.Fprintf(b, "    <inkml:brush xml:id=\"br%d\">\n", id)
	fmt.Fprintf(b, "      <inkml:brushProperty name=\"width\" value=\"%d\" units=\"himetric\"/>\n", size)
	fmt.Fprintf(b, "      <inkml:brushProperty name=\"height\" value=\"%d\" units=\"himetric\"/>\n", size)
	fmt.Fprintf(b, "      <inkml:brushProperty name=\"color\" value=\"%s\"/>\n", brush.Color.Hex())
	fmt.Fprintf(b, "      <inkml:brushProperty name=\"transparency\" value=\"%d\"/>\n", transparency)
	b.WriteString(`      <inkml:brushProperty name="tip" value="ellipse"/>
      <inkml:brushProperty name="rasterOp" value="copyPen"/>
      <inkml:brushProperty name="ignorePressure" value="false"/>
      <inkml:brushProperty name="antiAliased" value="true"/>
      <inkml:brushProperty name="fitToCurve" value="false"/>
`)
	b.WriteString("    </inkml:brush>\n")
}
