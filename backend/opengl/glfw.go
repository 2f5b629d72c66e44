package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/wrapped"
)

// DefaultScrollSpeed is how many pixels one wheel notch scrolls.
const DefaultScrollSpeed = 40

// Host drives a wrapped.Window from a GLFW window: the framebuffer is the
// fixed rect and the scrolled content is the moving rect.
type Host[T any] struct {
	window *glfw.Window
	view   *wrapped.Window[T]

	// BottomLeft reports geometry with a bottom-left origin. The view must
	// have been created with the matching convention.
	BottomLeft  bool
	ScrollSpeed float32

	width, height int
	scrollY       float32
	pending       float32
}

// NewHost installs scroll and key callbacks on window and returns a host
// driving view.
func NewHost[T any](window *glfw.Window, view *wrapped.Window[T]) *Host[T] {
	h := &Host[T]{
		window:      window,
		view:        view,
		ScrollSpeed: DefaultScrollSpeed,
	}
	window.SetScrollCallback(h.scrollCallback)
	window.SetKeyCallback(h.keyCallback)
	return h
}

// View returns the window being driven.
func (h *Host[T]) View() *wrapped.Window[T] {
	return h.view
}

// ScrollY returns the scroll offset in pixels from the top of the content.
func (h *Host[T]) ScrollY() float32 {
	return h.scrollY
}

// Size returns the framebuffer size seen by the last Update.
func (h *Host[T]) Size() (width, height int) {
	return h.width, h.height
}

// Update applies pending scroll, reads the framebuffer size and observes.
// Call it once per frame after glfw.PollEvents. It reports whether the
// materialized rows changed.
func (h *Host[T]) Update() bool {
	h.width, h.height = h.window.GetFramebufferSize()

	maxScroll := h.view.Layout().MaxScroll(float32(h.height))
	h.scrollY = max(0, min(h.scrollY+h.pending, maxScroll))
	h.pending = 0

	fixed, moving := viewportRects(h.BottomLeft, float32(h.width), float32(h.height), h.scrollY, h.view.ContentSize().H)
	return h.view.Observe(fixed, moving)
}

// Draw adds one quad per materialized item to dl, positioned on screen and
// spread across the current framebuffer width.
func (h *Host[T]) Draw(dl *wrapped.DrawList, gap float32, color wrapped.CellColor) {
	dl.PushClipRect(wrapped.Rect{W: float32(h.width), H: float32(h.height)})
	wrapped.AddRows(dl, h.view.Rows(), h.view.Layout().Columns(), wrapped.Vec2{Y: -h.scrollY}, float32(h.width), gap, color)
	dl.PopClipRect()
}

// viewportRects builds the fixed and moving rects for a viewport of width by
// height showing content of contentH scrolled down by scrollY.
func viewportRects(bottomLeft bool, width, height, scrollY, contentH float32) (fixed, moving wrapped.Rect) {
	fixed = wrapped.Rect{W: width, H: height}
	if bottomLeft {
		// Content top sits scrollY above the viewport top.
		moving = wrapped.Rect{Y: height + scrollY - contentH, W: width, H: contentH}
	} else {
		moving = wrapped.Rect{Y: -scrollY, W: width, H: contentH}
	}
	return fixed, moving
}

func (h *Host[T]) scrollCallback(_ *glfw.Window, _, yoff float64) {
	h.pending -= float32(yoff) * h.ScrollSpeed
}

func (h *Host[T]) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	page := float32(h.height)
	switch key {
	case glfw.KeyDown:
		h.pending += h.ScrollSpeed
	case glfw.KeyUp:
		h.pending -= h.ScrollSpeed
	case glfw.KeyPageDown, glfw.KeySpace:
		h.pending += page
	case glfw.KeyPageUp:
		h.pending -= page
	case glfw.KeyHome:
		h.pending = -h.scrollY
	case glfw.KeyEnd:
		h.pending = h.view.ContentSize().H
	case glfw.KeyEscape, glfw.KeyQ:
		w.SetShouldClose(true)
	}
}
