package wrapped

// Convention resolves the visible rect, in content coordinates, from the two
// rectangles a viewport host reports: the fixed viewport frame and the moving
// content frame, both in one shared coordinate space.
type Convention interface {
	Resolve(fixed, moving Rect) Rect
}

// ConventionFunc adapts a plain function to Convention.
type ConventionFunc func(fixed, moving Rect) Rect

// Resolve calls f.
func (f ConventionFunc) Resolve(fixed, moving Rect) Rect {
	return f(fixed, moving)
}

// TopLeft is for hosts whose Y axis grows downward. Scrolling moves the
// content origin up past the viewport origin.
var TopLeft Convention = ConventionFunc(func(fixed, moving Rect) Rect {
	return Rect{
		X: fixed.X - moving.X,
		Y: fixed.Y - moving.Y,
		W: fixed.W,
		H: fixed.H,
	}
})

// BottomLeft is for hosts whose Y axis grows upward. The content's top edge
// is its max Y, so the distance scrolled is measured from the top edges.
var BottomLeft Convention = ConventionFunc(func(fixed, moving Rect) Rect {
	return Rect{
		X: fixed.X - moving.X,
		Y: moving.MaxY() - fixed.MaxY(),
		W: fixed.W,
		H: fixed.H,
	}
})
