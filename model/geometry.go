package model

// BBox is an axis-aligned bounding rectangle in device coordinates. The
// origin is the top-left corner of the page; Y grows downward, matching
// the capture coordinate space.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from its top-left corner and extent.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Contains reports whether the sample position (x, y) lies inside the
// box. Edges count as inside.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Union returns the smallest box covering both b and other.
func (b BBox) Union(other BBox) BBox {
	left, top := b.X, b.Y
	if other.X < left {
		left = other.X
	}
	if other.Y < top {
		top = other.Y
	}
	right, bottom := b.Right(), b.Bottom()
	if r := other.Right(); r > right {
		right = r
	}
	if bt := other.Bottom(); bt > bottom {
		bottom = bt
	}
	return BBox{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Expand grows the box by margin on all sides. Renderers use this to pad
// ink bounds by half the stroke width so wide pens are not clipped.
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X:      b.X - margin,
		Y:      b.Y - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// IsEmpty reports whether the box has zero area. A single-point stroke
// has an empty bounding box.
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
