// Package export serializes a decoded ink document into its target
// formats.
//
// Each exporter is a pure function of the document and options: it holds
// no state, never mutates the model, and different exporters share
// nothing, so pages and formats may be exported independently or in
// parallel.
//
// # Targets
//
//   - [SVG] - one vector canvas per page; each stroke becomes a polyline
//     or a curved path element depending on the render mode, styled with
//     its brush color and width. Coordinates are bounded to a fixed
//     number of decimal places.
//   - [InkML] - W3C ink markup; one trace element per stroke with channel
//     definitions for X, Y, and F (force), and one brush definition per
//     document brush referenced by id, preserving the many-to-one
//     stroke-to-brush relationship.
//   - [JSON] - a direct structural dump of the page with the document
//     brush table. Field names and nesting are stable across versions so
//     downstream tooling can diff output.
//   - [PDF] - one single-page vector PDF per page, drawn with the same
//     path commands as the SVG target.
//
// # Dispatching
//
// [Files] fans a document out to one artifact per page. Multi-page
// documents get the 0-based page index injected into the file name before
// the extension (name0.svg, name1.svg, ...); single-page documents use
// the name unchanged. One page's failure never aborts its siblings: all
// failures are collected into an [ExportErrors] value returned after
// every page has been attempted.
package export
