package willdoc

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Default page dimensions in device units, used when a section's SVG stub
// carries no width/height attributes. These match the Bamboo Spark/Slate
// page size.
const (
	defaultPageWidth  = 592
	defaultPageHeight = 864
)

// sectionSVG is the root element of a section's SVG stub. Only the page
// dimensions are read from it; the stroke geometry lives in the protobuf
// media blob the stub's .rels points at.
type sectionSVG struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
}

// parseSectionSize extracts the page dimensions from a section SVG stub.
// Absent or unparseable attributes fall back to the format defaults.
func parseSectionSize(data []byte) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	var svg sectionSVG
	if err := xml.Unmarshal(data, &svg); err != nil {
		return width, height
	}
	if w, ok := parseDimension(svg.Width); ok {
		width = w
	}
	if h, ok := parseDimension(svg.Height); ok {
		height = h
	}
	return width, height
}

// parseDimension parses an SVG length attribute, tolerating a trailing
// unit suffix such as "pt" or "px".
func parseDimension(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
