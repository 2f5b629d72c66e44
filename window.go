package wrapped

import "fmt"

// State is the window's position in its observe cycle.
// Re-querying and diffing happen synchronously inside Observe, so callers
// only ever see a window that is idle or stable.
type State uint8

const (
	StateIdle   State = iota // No query issued yet
	StateStable              // Materialized rows reflect the last query
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStable:
		return "stable"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Stats counts what a window has done, for tests and debug overlays.
type Stats struct {
	Observations int // Observe/ObserveVisible calls
	Queries      int // Layout queries issued
	Updates      int // Times the materialized rows were replaced
}

// Window decides which rows of a Layout are materialized as the viewport moves.
//
// Each observation is checked against a cached query rect first; only when
// the cached span no longer covers the visible span plus slack is the layout
// queried. A query whose row IDs match the materialized rows is discarded, so
// renderers keep per-row state across small scrolls.
//
// A Window is owned by one goroutine (the UI thread). Observations must be
// delivered in arrival order.
type Window[T any] struct {
	layout     *Layout[T]
	convention Convention
	buffer     float32
	slackDiv   float32
	coverage   float32

	fixed       Rect // Last fixed viewport bounds
	visible     Rect // Last resolved visible rect
	lastQueried Rect // visible + slack at the last query
	state       State

	rows   []Row[T]
	bounds Rect

	stats Stats
}

// NewWindow creates a window over layout.
//
// Options: WithBuffer (default 0), WithConvention (default TopLeft),
// WithSlackDivisor (default 8), WithCoverage (default 1.2).
func NewWindow[T any](layout *Layout[T], opts ...Option) (*Window[T], error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	o := applyOptions(opts)

	w := &Window[T]{
		layout:     layout,
		convention: getOpt(o, OptConvention),
		buffer:     getOpt(o, OptBuffer),
		slackDiv:   getOpt(o, OptSlackDivisor),
		coverage:   getOpt(o, OptCoverage),
	}
	if !(w.buffer >= 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeBuffer, w.buffer)
	}
	if !(w.slackDiv > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSlack, w.slackDiv)
	}
	if !(w.coverage > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCoverage, w.coverage)
	}
	if w.convention == nil {
		w.convention = TopLeft
	}
	return w, nil
}

// Observe feeds one viewport observation: the fixed viewport frame and the
// moving content frame, in a shared coordinate space. It reports whether the
// materialized rows were replaced.
func (w *Window[T]) Observe(fixed, moving Rect) bool {
	w.stats.Observations++

	boundsDirty := fixed != w.fixed
	if boundsDirty {
		w.fixed = fixed
	}
	return w.observe(w.convention.Resolve(fixed, moving), boundsDirty)
}

// ObserveVisible is Observe for hosts that already know the visible rect in
// content coordinates. A change of visible size counts as a bounds change.
func (w *Window[T]) ObserveVisible(visible Rect) bool {
	w.stats.Observations++

	fixed := Rect{W: visible.W, H: visible.H}
	boundsDirty := fixed != w.fixed
	if boundsDirty {
		w.fixed = fixed
	}
	return w.observe(visible, boundsDirty)
}

func (w *Window[T]) observe(visible Rect, boundsDirty bool) bool {
	w.visible = visible
	queryRect := visible.InsetY(-visible.H / w.slackDiv)

	if !boundsDirty && w.state != StateIdle &&
		w.lastQueried.OverlapY(queryRect) >= w.coverage*visible.H {
		return false
	}

	w.lastQueried = queryRect
	w.state = StateStable
	return w.query(queryRect.InsetY(-w.buffer))
}

// query runs the layout query and replaces the materialized rows only when
// the ordered row IDs differ.
func (w *Window[T]) query(effective Rect) bool {
	w.stats.Queries++

	start, end := w.layout.QueryRange(effective)
	candidate := w.layout.rows[start:end]
	if sameIDs(candidate, w.rows) {
		return false
	}

	w.rows = w.layout.stretch(candidate, effective)
	w.bounds = Rect{}
	if n := len(w.rows); n > 0 {
		w.bounds = w.rows[0].Frame.Union(w.rows[n-1].Frame)
	}
	w.stats.Updates++

	if verbose() {
		log().Debug("window rows replaced",
			"start", start, "end", end,
			"queryY", effective.Y, "queryH", effective.H,
			"updates", w.stats.Updates)
	}
	return true
}

// Refresh re-queries with the last observed visible rect, bypassing the
// hysteresis check. It is a no-op before the first observation.
func (w *Window[T]) Refresh() bool {
	if w.state == StateIdle {
		return false
	}
	return w.observe(w.visible, true)
}

// SetLayout swaps in a layout built from a new item sequence. The
// materialized rows are dropped because ordinal row IDs from the old layout
// say nothing about the new one. If the window has been observed, it
// re-queries immediately and reports whether rows were materialized.
func (w *Window[T]) SetLayout(layout *Layout[T]) (bool, error) {
	if layout == nil {
		return false, ErrNilLayout
	}
	if layout == w.layout {
		return false, nil
	}
	w.layout = layout
	w.rows = nil
	w.bounds = Rect{}
	if w.state == StateIdle {
		return false, nil
	}
	return w.observe(w.visible, true), nil
}

// Rows returns the materialized rows in top-to-bottom order.
// The slice is replaced, never mutated, so holding on to it is safe.
func (w *Window[T]) Rows() []Row[T] {
	return w.rows
}

// Bounds returns the union of the first and last materialized row frames,
// used to position the materialized block inside the content area.
func (w *Window[T]) Bounds() Rect {
	return w.bounds
}

// ContentSize returns the layout's content size.
func (w *Window[T]) ContentSize() Size {
	return w.layout.ContentSize()
}

// Layout returns the layout being windowed.
func (w *Window[T]) Layout() *Layout[T] {
	return w.layout
}

// State returns the window's state.
func (w *Window[T]) State() State {
	return w.state
}

// Visible returns the last resolved visible rect.
func (w *Window[T]) Visible() Rect {
	return w.visible
}

// LastQueried returns the visible-plus-slack rect of the last query.
func (w *Window[T]) LastQueried() Rect {
	return w.lastQueried
}

// Stats returns the window's counters.
func (w *Window[T]) Stats() Stats {
	return w.stats
}
