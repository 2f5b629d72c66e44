// Package wrapped lays out very large ordered collections as rows of
// horizontally packed items and keeps only the rows near the viewport
// materialized.
package wrapped

// Vec2 represents a 2D vector for positions and offsets.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Size is a width/height pair.
type Size struct {
	W, H float32
}

// Rect represents a rectangle with position and size.
// Y grows downward in content coordinates.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Y + r.H }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.X + r.W }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// IsEmpty reports whether the rectangle covers no area.
// The zero Rect is empty; so is an inverted one.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// IntersectsY reports whether r's vertical span touches the half-open
// span [other.MinY, other.MaxY). A zero-height r counts as the point r.Y.
func (r Rect) IntersectsY(other Rect) bool {
	if other.H <= 0 {
		return false
	}
	if r.H <= 0 {
		return r.Y >= other.Y && r.Y < other.MaxY()
	}
	return r.Y < other.MaxY() && r.MaxY() > other.Y
}

// OverlapY returns the length of the vertical overlap of two rectangles,
// or 0 when their spans are disjoint.
func (r Rect) OverlapY(other Rect) float32 {
	return maxf(0, minf(r.MaxY(), other.MaxY())-maxf(r.Y, other.Y))
}

// InsetY shrinks the rectangle vertically by d on both edges.
// A negative d grows it.
func (r Rect) InsetY(d float32) Rect {
	return Rect{X: r.X, Y: r.Y + d, W: r.W, H: maxf(0, r.H-2*d)}
}

// Union returns the smallest rectangle containing both rectangles.
// Empty operands are ignored.
func (r Rect) Union(other Rect) Rect {
	if r == (Rect{}) {
		return other
	}
	if other == (Rect{}) {
		return r
	}
	x0 := minf(r.X, other.X)
	y0 := minf(r.Y, other.Y)
	x1 := maxf(r.MaxX(), other.MaxX())
	y1 := maxf(r.MaxY(), other.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
