package wrapped

import (
	"fmt"
	"math"
	"sort"
)

// HeightFunc maps an item to the height of the row it starts.
// It must be pure; it is evaluated once per row, on the row's first item.
type HeightFunc[T any] func(item T) float32

// FixedHeight returns a HeightFunc that gives every row the same height.
func FixedHeight[T any](h float32) HeightFunc[T] {
	return func(T) float32 { return h }
}

// Layout partitions an item sequence into rows of Columns items and stacks
// the rows vertically as full-width bands.
//
// A Layout is immutable once built. A new item sequence, column count or
// height function needs a new Layout. Concurrent reads are safe.
//
// Usage:
//
//	layout, err := wrapped.NewLayout(items, 4, wrapped.FixedHeight[Item](80))
//	for _, row := range layout.Query(wrapped.Rect{Y: scrollY, W: width, H: viewportH}) {
//	    // Draw row.Items inside row.Frame
//	}
type Layout[T any] struct {
	items   []T
	columns int
	rows    []Row[T]
	height  float32 // Sum of row heights
}

// NewLayout builds the row list for items.
//
// Parameters:
//   - items: The source sequence. Rows hold sub-slices of it; it must not be mutated afterwards
//   - columns: Maximum items per row (>= 1)
//   - height: Row height, evaluated on each row's first item
//
// Negative or NaN heights are treated as zero (a collapsed row).
func NewLayout[T any](items []T, columns int, height HeightFunc[T]) (*Layout[T], error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}
	if height == nil {
		return nil, ErrNilHeightFunc
	}

	l := &Layout[T]{
		items:   items,
		columns: columns,
		rows:    make([]Row[T], 0, (len(items)+columns-1)/columns),
	}

	var y float32
	for start := 0; start < len(items); start += columns {
		end := min(start+columns, len(items))
		h := height(items[start])
		if h < 0 || math.IsNaN(float64(h)) {
			if verbose() {
				log().Debug("row height clamped", "row", len(l.rows), "height", h)
			}
			h = 0
		}
		l.rows = append(l.rows, Row[T]{
			Index: len(l.rows),
			Frame: Rect{Y: y, W: 1, H: h},
			Items: items[start:end:end],
			First: start,
		})
		y += h
	}
	l.height = y

	if verbose() {
		log().Debug("layout built", "items", len(items), "columns", columns, "rows", len(l.rows), "height", y)
	}
	return l, nil
}

// ContentSize returns the size of the whole unvirtualized content.
// Width is nominal; renderers stretch rows to the viewport width.
func (l *Layout[T]) ContentSize() Size {
	return Size{W: 1, H: l.height}
}

// Len returns the number of rows.
func (l *Layout[T]) Len() int {
	return len(l.rows)
}

// Columns returns the maximum number of items per row.
func (l *Layout[T]) Columns() int {
	return l.columns
}

// ItemCount returns the number of items in the source sequence.
func (l *Layout[T]) ItemCount() int {
	return len(l.items)
}

// Rows returns every row in ascending Y order.
// The returned slice is shared; do not modify it.
func (l *Layout[T]) Rows() []Row[T] {
	return l.rows
}

// Row returns the row at index i.
func (l *Layout[T]) Row(i int) Row[T] {
	return l.rows[i]
}

// Query returns every row whose vertical span intersects rect, in ascending
// order, with each frame stretched to rect's horizontal extent.
// Cost is O(log n + k) for k returned rows.
func (l *Layout[T]) Query(rect Rect) []Row[T] {
	start, end := l.QueryRange(rect)
	return l.stretch(l.rows[start:end], rect)
}

// QueryRange returns the half-open index range of rows intersecting rect
// without allocating.
func (l *Layout[T]) QueryRange(rect Rect) (start, end int) {
	if rect.H <= 0 || len(l.rows) == 0 {
		return 0, 0
	}
	top, bottom := rect.MinY(), rect.MaxY()

	// Rows are sorted and touch end to end, so "not above the rect" is
	// monotonic in the row index, and so is "below the rect".
	start = sort.Search(len(l.rows), func(i int) bool {
		f := l.rows[i].Frame
		if f.H <= 0 {
			return f.Y >= top
		}
		return f.MaxY() > top
	})
	end = start + sort.Search(len(l.rows)-start, func(i int) bool {
		return l.rows[start+i].Frame.Y >= bottom
	})
	return start, end
}

// QueryLinear is the scanning form of Query. It walks rows from the top and
// stops at the first row below rect. Output is identical to Query.
func (l *Layout[T]) QueryLinear(rect Rect) []Row[T] {
	var out []Row[T]
	for _, row := range l.rows {
		if row.Frame.Y >= rect.MaxY() {
			break
		}
		if row.Frame.IntersectsY(rect) {
			row.Frame.X, row.Frame.W = rect.X, rect.W
			out = append(out, row)
		}
	}
	return out
}

func (l *Layout[T]) stretch(rows []Row[T], rect Rect) []Row[T] {
	if len(rows) == 0 {
		return nil
	}
	out := make([]Row[T], len(rows))
	copy(out, rows)
	for i := range out {
		out[i].Frame.X, out[i].Frame.W = rect.X, rect.W
	}
	return out
}

// RowAt returns the index of the row containing content offset y.
func (l *Layout[T]) RowAt(y float32) (int, bool) {
	i := sort.Search(len(l.rows), func(i int) bool {
		return l.rows[i].Frame.MaxY() > y
	})
	if i == len(l.rows) || l.rows[i].Frame.Y > y {
		return 0, false
	}
	return i, true
}

// RowForItem returns the index of the row holding the item at itemIndex,
// or -1 when the index is out of range.
func (l *Layout[T]) RowForItem(itemIndex int) int {
	if itemIndex < 0 || itemIndex >= len(l.items) {
		return -1
	}
	return itemIndex / l.columns
}

// MaxScroll returns the largest valid scroll offset for a viewport height.
func (l *Layout[T]) MaxScroll(viewportHeight float32) float32 {
	return maxf(0, l.height-viewportHeight)
}

// ScrollOffsetFor returns the scroll offset that brings the row holding
// itemIndex into view. If it is already fully visible, current is returned.
func (l *Layout[T]) ScrollOffsetFor(itemIndex int, current, viewportHeight float32) float32 {
	r := l.RowForItem(itemIndex)
	if r < 0 {
		return current
	}
	f := l.rows[r].Frame

	// Row above the viewport: align its top
	if f.Y < current {
		return clampf(f.Y, 0, l.MaxScroll(viewportHeight))
	}
	// Row below the viewport: align its bottom
	if f.MaxY() > current+viewportHeight {
		return clampf(f.MaxY()-viewportHeight, 0, l.MaxScroll(viewportHeight))
	}
	return current
}
