package wrapped

// RowID identifies a row by its ordinal position in the layout.
//
// Ordinal identity survives a change of viewport width and makes diffing a
// slice compare, but it is not stable when items are inserted mid-sequence:
// every row after the insertion point shifts content under the same ID.
type RowID int

// Row is a horizontal band of up to Columns consecutive items.
type Row[T any] struct {
	Index int  // Ordinal position, also the row's identity
	Frame Rect // Y/H fixed at layout time; X/W follow the query rect
	Items []T  // View into the caller's slice, never copied
	First int  // Absolute index of Items[0] in the source sequence
}

// ID returns the row's identity.
func (r Row[T]) ID() RowID {
	return RowID(r.Index)
}

// Len returns the number of items packed into the row.
func (r Row[T]) Len() int {
	return len(r.Items)
}

// sameIDs reports ordered identity equality of two row sequences.
func sameIDs[T any](a, b []Row[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Index != b[i].Index {
			return false
		}
	}
	return true
}
