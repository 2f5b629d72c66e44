package wrapped

// RenderedRow is a materialized row mapped through a caller's item renderer.
type RenderedRow[R any] struct {
	ID    RowID
	Frame Rect
	Cells []R
}

// Render maps every item of rows through fn, which receives the item and its
// absolute index in the source sequence. The core never draws; hosts turn
// the returned descriptions into pixels or terminal cells.
func Render[T, R any](rows []Row[T], fn func(item T, index int) R) []RenderedRow[R] {
	out := make([]RenderedRow[R], len(rows))
	for i, row := range rows {
		cells := make([]R, len(row.Items))
		for j, item := range row.Items {
			cells[j] = fn(item, row.First+j)
		}
		out[i] = RenderedRow[R]{ID: row.ID(), Frame: row.Frame, Cells: cells}
	}
	return out
}

// CellFrames splits a row frame into columns equal-width slots, one per
// item. A short last row still uses the full-row slot width so its cells
// line up with the rows above.
func CellFrames[T any](row Row[T], columns int) []Rect {
	return CellFramesIn(row, columns, row.Frame.X, row.Frame.W)
}

// CellFramesIn is CellFrames over the horizontal span [x, x+width) instead
// of the row's stored X/W. Rows keep the X/W of the query that materialized
// them, so hosts whose width changed lay cells out from their own width.
func CellFramesIn[T any](row Row[T], columns int, x, width float32) []Rect {
	if columns < 1 {
		columns = 1
	}
	w := width / float32(columns)
	frames := make([]Rect, len(row.Items))
	for i := range frames {
		frames[i] = Rect{
			X: x + float32(i)*w,
			Y: row.Frame.Y,
			W: w,
			H: row.Frame.H,
		}
	}
	return frames
}
