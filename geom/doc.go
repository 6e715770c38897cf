// Package geom converts stroke point sequences into renderable vector
// paths.
//
// A decoded stroke is an ordered list of point samples. Renderers want
// drawing commands. This package derives a [Segment] sequence from a
// stroke's points in one of two modes:
//
//   - [Polyline] - one straight line command per consecutive point pair.
//     The rendered geometry passes through every original point exactly.
//   - [SmoothedCurve] - a centripetal Catmull-Rom spline through the
//     points, emitted as cubic Bezier commands. The curve interpolates
//     every input point, so the stroke's start and end are preserved
//     exactly and the deviation from the original polyline stays within
//     [SmoothingTolerance] for pen-speed sample spacing.
//
// Both functions are pure: they never modify the stroke and recompute
// their output on every call. They fail only on an empty point sequence,
// which a well-formed document cannot contain but which is rejected
// explicitly rather than producing degenerate geometry.
//
// Windows with repeated knots make the Catmull-Rom parameterization
// degenerate (zero knot spacing); such a window collapses to a straight
// line command to the window's end point.
package geom
