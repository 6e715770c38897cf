package geom

import (
	"math"

	"github.com/tsawler/inkwill/model"
)

// catmullAlpha is the knot parameterization exponent. 0.5 gives the
// centripetal variant, which never produces loops or cusps between samples.
const catmullAlpha = 0.5

type knot struct {
	x, y float64
}

// SmoothedCurve fits a centripetal Catmull-Rom spline through the point
// sequence and returns it as cubic Bezier segments, one per consecutive
// point pair. The spline interpolates every input point, so the first and
// last points are preserved exactly. Strokes of fewer than three points
// fall back to straight lines.
func SmoothedCurve(points []model.Point) ([]Segment, error) {
	if len(points) == 0 {
		return nil, ErrEmptyStroke
	}
	if len(points) < 3 {
		return Polyline(points)
	}

	// Pad the knot vector by reflecting the end points so the spline spans
	// the full stroke instead of dropping the first and last spans.
	knots := make([]knot, 0, len(points)+2)
	first, second := points[0], points[1]
	knots = append(knots, knot{2*first.X - second.X, 2*first.Y - second.Y})
	for _, p := range points {
		knots = append(knots, knot{p.X, p.Y})
	}
	last, prev := points[len(points)-1], points[len(points)-2]
	knots = append(knots, knot{2*last.X - prev.X, 2*last.Y - prev.Y})

	segs := make([]Segment, 0, len(points))
	segs = append(segs, Segment{Op: MoveTo, X: first.X, Y: first.Y})
	for i := 0; i+3 < len(knots); i++ {
		segs = append(segs, bezierWindow(knots[i], knots[i+1], knots[i+2], knots[i+3]))
	}
	return segs, nil
}

// bezierWindow converts the Catmull-Rom span p1..p2 of one four-knot
// window into a cubic Bezier segment. A degenerate window (repeated
// knots give zero knot spacing) collapses to a line command.
func bezierWindow(p0, p1, p2, p3 knot) Segment {
	t0 := 0.0
	t1 := knotInterval(t0, p0, p1)
	t2 := knotInterval(t1, p1, p2)
	t3 := knotInterval(t2, p2, p3)

	c1 := (t2 - t1) / (t2 - t0)
	c2 := (t1 - t0) / (t2 - t0)
	d1 := (t3 - t2) / (t3 - t1)
	d2 := (t2 - t1) / (t3 - t1)

	m1x := (t2 - t1) * (c1*(p1.x-p0.x)/(t1-t0) + c2*(p2.x-p1.x)/(t2-t1))
	m1y := (t2 - t1) * (c1*(p1.y-p0.y)/(t1-t0) + c2*(p2.y-p1.y)/(t2-t1))
	m2x := (t2 - t1) * (d1*(p2.x-p1.x)/(t2-t1) + d2*(p3.x-p2.x)/(t3-t2))
	m2y := (t2 - t1) * (d1*(p2.y-p1.y)/(t2-t1) + d2*(p3.y-p2.y)/(t3-t2))

	seg := Segment{
		Op: CubeTo,
		X1: p1.x + m1x/3, Y1: p1.y + m1y/3,
		X2: p2.x - m2x/3, Y2: p2.y - m2y/3,
		X: p2.x, Y: p2.y,
	}
	if !finite(seg.X1) || !finite(seg.Y1) || !finite(seg.X2) || !finite(seg.Y2) {
		return Segment{Op: LineTo, X: p2.x, Y: p2.y}
	}
	return seg
}

func knotInterval(t float64, a, b knot) float64 {
	dx := b.x - a.x
	dy := b.y - a.y
	return math.Pow(math.Sqrt(dx*dx+dy*dy), catmullAlpha) + t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MaxDeviation measures the maximum distance from the path to the polyline
// through the original points, sampling each curve segment. It exists so
// callers and tests can verify the smoothing fidelity bound.
func MaxDeviation(segs []Segment, points []model.Point) float64 {
	if len(points) < 2 {
		return 0
	}

	const samples = 16
	var worst float64
	cx, cy := 0.0, 0.0
	for _, seg := range segs {
		switch seg.Op {
		case MoveTo, LineTo:
			cx, cy = seg.X, seg.Y
		case CubeTo:
			for i := 1; i <= samples; i++ {
				t := float64(i) / samples
				x, y := cubicAt(cx, cy, seg, t)
				if d := distToPolyline(x, y, points); d > worst {
					worst = d
				}
			}
			cx, cy = seg.X, seg.Y
		}
	}
	return worst
}

func cubicAt(x0, y0 float64, seg Segment, t float64) (float64, float64) {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	x := a*x0 + b*seg.X1 + c*seg.X2 + d*seg.X
	y := a*y0 + b*seg.Y1 + c*seg.Y2 + d*seg.Y
	return x, y
}

// distToPolyline returns the distance from (x, y) to the nearest edge of
// the polyline through points.
func distToPolyline(x, y float64, points []model.Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		d := distToSegment(x, y, points[i-1].X, points[i-1].Y, points[i].X, points[i].Y)
		if d < best {
			best = d
		}
	}
	return best
}

func distToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	qx := ax + t*dx
	qy := ay + t*dy
	return math.Hypot(px-qx, py-qy)
}
