// Package model provides the intermediate representation (IR) for decoded
// ink content.
//
// This package defines the user-facing data structures that represent the
// structure of a WILL capture. Decoding a container ultimately produces
// these types, making them the primary API for consuming ink data.
//
// # Document Structure
//
// The [Document] type represents a complete capture with pages and a shared
// brush table:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//
// Each [Page] contains dimensions, a 0-based index, and an ordered list of
// [Layer] values. Each Layer holds an ordered list of [Stroke] values, and
// each Stroke an ordered, time-sorted list of [Point] samples.
//
// # Brushes
//
// Visual stroke attributes (color, width) are shared: many strokes may
// reference one [Brush]. The Document owns the brush table and strokes hold
// an index into it, preserving the many-to-one relationship of the source
// format without duplicating style data. Use [Document.InternBrush] when
// building and [Document.Brush] when reading.
//
// # Geometry
//
// Geometric primitives support bounds and viewport calculations:
//
//   - [BBox] - bounding box with union, containment, and emptiness checks
//
// Coordinates follow the device space of the capture: origin top-left,
// Y increasing downward, floating-point device units.
//
// # Immutability
//
// All entities are produced once during decode and are read-only
// thereafter. Exporters never mutate the model; callers that need a
// modified document build a new one.
package model
