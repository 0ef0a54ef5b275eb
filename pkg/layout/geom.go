package layout

// Point is a position in scene coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Span is the horizontal range reserved for a subtree.
type Span struct {
	Left, Right float64
}

// Width returns the span's extent.
func (s Span) Width() float64 { return s.Right - s.Left }

// Contains reports whether x lies inside the span (inclusive).
func (s Span) Contains(x float64) bool { return x >= s.Left-eps && x <= s.Right+eps }

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Inset grows the rectangle by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{MinX: r.MinX - m, MinY: r.MinY - m, MaxX: r.MaxX + m, MaxY: r.MaxY + m}
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX), MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX), MaxY: max(r.MaxY, o.MaxY),
	}
}

const eps = 1e-9
