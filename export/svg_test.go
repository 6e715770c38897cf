package export

import (
	"strings"
	"testing"

	"github.com/tsawler/inkwill/geom"
)

// ============================================================================
// SVG export
// ============================================================================

// svgElements returns the complete element strings matching the given tag.
func svgElements(t *testing.T, out, tag string) []string {
	t.Helper()

	var elems []string
	rest := out
	for {
		start := strings.Index(rest, "<"+tag+" ")
		if start < 0 {
			return elems
		}
		end := strings.Index(rest[start:], "/>")
		if end < 0 {
			t.Fatalf("unterminated <%s> element in output", tag)
		}
		elems = append(elems, rest[start:start+end+2])
		rest = rest[start+end+2:]
	}
}

// attrValue extracts the value of a quoted attribute from an element string.
func attrValue(t *testing.T, elem, name string) string {
	t.Helper()

	marker := name + "=\""
	start := strings.Index(elem, marker)
	if start < 0 {
		t.Fatalf("attribute %q not found in %q", name, elem)
	}
	start += len(marker)
	end := strings.Index(elem[start:], "\"")
	if end < 0 {
		t.Fatalf("unterminated attribute %q in %q", name, elem)
	}
	return elem[start : start+end]
}

func TestSVGPolylineElements(t *testing.T) {
	doc := testDoc()
	out, err := SVG{}.ExportPage(doc, doc.Pages[0], DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg := string(out)

	if !strings.HasPrefix(svg, "<?xml version=\"1.0\"") {
		t.Error("output should start with an XML declaration")
	}
	if !strings.Contains(svg, "xmlns=\"http://www.w3.org/2000/svg\"") {
		t.Error("svg element missing namespace declaration")
	}
	if !strings.Contains(svg, "viewBox=\"0 0 600 800\"") {
		t.Errorf("viewBox does not match page dimensions:\n%s", svg)
	}

	polylines := svgElements(t, svg, "polyline")
	if len(polylines) != 2 {
		t.Fatalf("expected 2 polyline elements, got %d", len(polylines))
	}

	// One vertex per input point.
	wantVertices := []int{5, 3}
	for i, elem := range polylines {
		pts := attrValue(t, elem, "points")
		got := len(strings.Fields(pts))
		if got != wantVertices[i] {
			t.Errorf("polyline %d: expected %d vertices, got %d (%q)", i, wantVertices[i], got, pts)
		}
	}
}

func TestSVGSmoothedPaths(t *testing.T) {
	doc := testDoc()
	opts := DefaultOptions()
	opts.Mode = geom.ModeSmoothed

	out, err := SVG{}.ExportPage(doc, doc.Pages[0], opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg := string(out)

	paths := svgElements(t, svg, "path")
	if len(paths) != 2 {
		t.Fatalf("expected 2 path elements, got %d", len(paths))
	}
	if len(svgElements(t, svg, "polyline")) != 0 {
		t.Error("smoothed output should not contain polyline elements")
	}

	// Each path begins at the stroke's first point and carries one
	// window per interior step.
	for i, elem := range paths {
		d := attrValue(t, elem, "d")
		if !strings.HasPrefix(d, "M") {
			t.Errorf("path %d: data should start with a move command, got %q", i, d)
		}
		if !strings.Contains(d, "C") && !strings.Contains(d, "L") {
			t.Errorf("path %d: data has no drawing commands: %q", i, d)
		}
	}
}

func TestSVGStrokeStyling(t *testing.T) {
	doc := testDoc()
	out, err := SVG{}.ExportPage(doc, doc.Pages[0], DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	polylines := svgElements(t, string(out), "polyline")
	if len(polylines) != 2 {
		t.Fatalf("expected 2 polyline elements, got %d", len(polylines))
	}

	if got := attrValue(t, polylines[0], "stroke"); got != "#000000" {
		t.Errorf("first stroke color: expected #000000, got %s", got)
	}
	if got := attrValue(t, polylines[1], "stroke"); got != "#ff0000" {
		t.Errorf("second stroke color: expected #ff0000, got %s", got)
	}
	if got := attrValue(t, polylines[0], "stroke-width"); got != "1.5" {
		t.Errorf("first stroke width: expected 1.5, got %s", got)
	}
	for i, elem := range polylines {
		if attrValue(t, elem, "fill") != "none" {
			t.Errorf("polyline %d: fill should be none", i)
		}
		if attrValue(t, elem, "stroke-linecap") != "round" {
			t.Errorf("polyline %d: linecap should be round", i)
		}
	}
}

func TestSVGPrecision(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		want      string
	}{
		{"two decimals", 2, "12.35,10.5"},
		{"zero decimals", 0, "12,10"},
		{"four decimals", 4, "12.345,10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc()
			opts := DefaultOptions()
			opts.Precision = tt.precision

			out, err := SVG{}.ExportPage(doc, doc.Pages[0], opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(string(out), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out)
			}
		})
	}
}

func TestSVGNumberFormatting(t *testing.T) {
	w := fnumFormatter(2)
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{1.25, "1.25"},
		{1.999, "2"},
		{-0.001, "0"},
		{600, "600"},
	}

	for _, tt := range tests {
		if got := w(tt.in); got != tt.want {
			t.Errorf("format(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
