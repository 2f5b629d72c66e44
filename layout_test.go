package wrapped_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/go-theft-auto/wrapped"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func mustLayout(t testing.TB, items []int, columns int, h wrapped.HeightFunc[int]) *wrapped.Layout[int] {
	t.Helper()
	l, err := wrapped.NewLayout(items, columns, h)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return l
}

func ids(rows []wrapped.Row[int]) []wrapped.RowID {
	out := make([]wrapped.RowID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID())
	}
	return out
}

func TestLayoutTenItemsTwoColumns(t *testing.T) {
	l := mustLayout(t, seq(10), 2, wrapped.FixedHeight[int](10))

	if l.Len() != 5 {
		t.Fatalf("expected 5 rows, got %d", l.Len())
	}
	if got := l.ContentSize(); got != (wrapped.Size{W: 1, H: 50}) {
		t.Errorf("content size = %+v, want {1 50}", got)
	}

	rows := l.Query(wrapped.Rect{Y: 0, W: 320, H: 25})
	if got, want := ids(rows), []wrapped.RowID{0, 1, 2}; !slices.Equal(got, want) {
		t.Fatalf("query ids = %v, want %v", got, want)
	}
	for _, r := range rows {
		if r.Frame.W != 320 {
			t.Errorf("row %d width = %v, want 320", r.Index, r.Frame.W)
		}
		if r.Frame.Y != float32(r.Index)*10 || r.Frame.H != 10 {
			t.Errorf("row %d frame = %+v", r.Index, r.Frame)
		}
	}
	if got := rows[2].Items; !slices.Equal(got, []int{4, 5}) {
		t.Errorf("row 2 items = %v, want [4 5]", got)
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := mustLayout(t, nil, 3, wrapped.FixedHeight[int](10))

	if l.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", l.Len())
	}
	if got := l.ContentSize(); got != (wrapped.Size{W: 1, H: 0}) {
		t.Errorf("content size = %+v, want {1 0}", got)
	}
	for _, r := range []wrapped.Rect{{}, {Y: 0, W: 10, H: 100}, {Y: -50, W: 1, H: 1e6}} {
		if got := l.Query(r); len(got) != 0 {
			t.Errorf("Query(%+v) returned %d rows", r, len(got))
		}
	}
}

func TestLayoutRejectsBadInput(t *testing.T) {
	for _, cols := range []int{0, -1, -100} {
		_, err := wrapped.NewLayout(seq(5), cols, wrapped.FixedHeight[int](1))
		if !errors.Is(err, wrapped.ErrInvalidColumns) {
			t.Errorf("columns=%d: err = %v, want ErrInvalidColumns", cols, err)
		}
	}
	if _, err := wrapped.NewLayout(seq(5), 1, nil); !errors.Is(err, wrapped.ErrNilHeightFunc) {
		t.Errorf("nil height: err = %v, want ErrNilHeightFunc", err)
	}
}

func TestLayoutPartition(t *testing.T) {
	tests := []struct {
		n, columns int
	}{
		{0, 1}, {1, 1}, {1, 8}, {7, 3}, {9, 3}, {10, 4}, {100, 7}, {1000, 1000}, {1001, 1000},
	}

	for _, tt := range tests {
		items := seq(tt.n)
		l := mustLayout(t, items, tt.columns, wrapped.FixedHeight[int](4))

		want := (tt.n + tt.columns - 1) / tt.columns
		if l.Len() != want {
			t.Errorf("n=%d cols=%d: rows = %d, want %d", tt.n, tt.columns, l.Len(), want)
		}

		var joined []int
		for i, row := range l.Rows() {
			if row.Index != i {
				t.Errorf("n=%d cols=%d: row %d has index %d", tt.n, tt.columns, i, row.Index)
			}
			if row.Len() == 0 || row.Len() > tt.columns {
				t.Errorf("n=%d cols=%d: row %d holds %d items", tt.n, tt.columns, i, row.Len())
			}
			if row.First != len(joined) {
				t.Errorf("n=%d cols=%d: row %d first = %d, want %d", tt.n, tt.columns, i, row.First, len(joined))
			}
			joined = append(joined, row.Items...)
		}
		if !slices.Equal(joined, items) && !(len(joined) == 0 && len(items) == 0) {
			t.Errorf("n=%d cols=%d: rows do not partition items", tt.n, tt.columns)
		}
	}
}

func TestLayoutRowsDoNotAliasAppends(t *testing.T) {
	items := seq(6)
	l := mustLayout(t, items, 2, wrapped.FixedHeight[int](1))

	row := l.Row(0)
	_ = append(row.Items, 99)
	if items[2] != 2 {
		t.Errorf("appending to a row clobbered the next row's item: %v", items)
	}
}

// varied returns heights that include collapsed rows.
func varied(seed int64) wrapped.HeightFunc[int] {
	r := rand.New(rand.NewSource(seed))
	heights := make([]float32, 4096)
	for i := range heights {
		switch r.Intn(5) {
		case 0:
			heights[i] = 0
		default:
			heights[i] = float32(r.Intn(40) + 1)
		}
	}
	return func(item int) float32 { return heights[item%len(heights)] }
}

func TestLayoutRowsOrderedAndNonOverlapping(t *testing.T) {
	l := mustLayout(t, seq(2000), 3, varied(1))

	var prevMax float32
	var total float32
	for i, row := range l.Rows() {
		f := row.Frame
		if f.H < 0 {
			t.Fatalf("row %d has negative height %v", i, f.H)
		}
		if f.Y != prevMax {
			t.Fatalf("row %d starts at %v, previous ended at %v", i, f.Y, prevMax)
		}
		prevMax = f.MaxY()
		total += f.H
	}
	if l.ContentSize().H != total {
		t.Errorf("content height %v != sum of rows %v", l.ContentSize().H, total)
	}
}

func TestLayoutRowHeightFromFirstItem(t *testing.T) {
	h := func(item int) float32 { return float32(item + 1) }
	l := mustLayout(t, seq(6), 3, h)

	if got := l.Row(0).Frame.H; got != 1 {
		t.Errorf("row 0 height = %v, want 1 (first item)", got)
	}
	if got := l.Row(1).Frame; got.Y != 1 || got.H != 4 {
		t.Errorf("row 1 frame = %+v, want Y=1 H=4", got)
	}
}

func TestLayoutNegativeHeightCollapses(t *testing.T) {
	l := mustLayout(t, seq(4), 1, func(item int) float32 {
		if item == 1 {
			return -5
		}
		return 10
	})

	if got := l.Row(1).Frame.H; got != 0 {
		t.Errorf("negative height row = %v, want 0", got)
	}
	if got := l.ContentSize().H; got != 30 {
		t.Errorf("content height = %v, want 30", got)
	}
}

func bruteForce(l *wrapped.Layout[int], rect wrapped.Rect) []wrapped.RowID {
	var out []wrapped.RowID
	for _, row := range l.Rows() {
		if row.Frame.IntersectsY(rect) {
			out = append(out, row.ID())
		}
	}
	return out
}

func TestQueryMatchesLinearAndBruteForce(t *testing.T) {
	l := mustLayout(t, seq(3000), 4, varied(7))
	r := rand.New(rand.NewSource(42))
	height := l.ContentSize().H

	for i := 0; i < 500; i++ {
		rect := wrapped.Rect{
			Y: r.Float32()*(height+200) - 100,
			W: 200,
			H: r.Float32() * 300,
		}
		want := bruteForce(l, rect)
		fast := ids(l.Query(rect))
		slow := ids(l.QueryLinear(rect))

		if !slices.Equal(fast, want) && !(len(fast) == 0 && len(want) == 0) {
			t.Fatalf("Query(%+v) = %v, want %v", rect, fast, want)
		}
		if !slices.Equal(fast, slow) {
			t.Fatalf("Query(%+v) = %v, QueryLinear = %v", rect, fast, slow)
		}
	}
}

func TestQueryZeroHeightRows(t *testing.T) {
	// Rows: 0:[0,10) 1:[10,10) 2:[10,20)
	l := mustLayout(t, seq(3), 1, func(item int) float32 {
		if item == 1 {
			return 0
		}
		return 10
	})

	tests := []struct {
		name string
		rect wrapped.Rect
		want []wrapped.RowID
	}{
		{"starts at collapsed row", wrapped.Rect{Y: 10, W: 1, H: 5}, []wrapped.RowID{1, 2}},
		{"ends at collapsed row", wrapped.Rect{Y: 0, W: 1, H: 10}, []wrapped.RowID{0}},
		{"spans collapsed row", wrapped.Rect{Y: 5, W: 1, H: 10}, []wrapped.RowID{0, 1, 2}},
		{"zero height rect", wrapped.Rect{Y: 10, W: 1, H: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(l.Query(tt.rect))
			if !slices.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Query = %v, want %v", got, tt.want)
			}
			if lin := ids(l.QueryLinear(tt.rect)); !slices.Equal(got, lin) {
				t.Errorf("QueryLinear = %v, Query = %v", lin, got)
			}
		})
	}
}

func TestQueryMonotonic(t *testing.T) {
	l := mustLayout(t, seq(500), 5, varied(3))
	r := rand.New(rand.NewSource(9))

	for i := 0; i < 200; i++ {
		small := wrapped.Rect{Y: r.Float32() * 1000, W: 50, H: r.Float32() * 100}
		grow := r.Float32() * 80
		big := small.InsetY(-grow)

		have := make(map[wrapped.RowID]bool)
		for _, id := range ids(l.Query(big)) {
			have[id] = true
		}
		for _, id := range ids(l.Query(small)) {
			if !have[id] {
				t.Fatalf("row %d in Query(%+v) missing from Query(%+v)", id, small, big)
			}
		}
	}
}

func TestQueryLargeCollection(t *testing.T) {
	l := mustLayout(t, seq(50_000), 8, wrapped.FixedHeight[int](10))

	if l.Len() != 6250 {
		t.Fatalf("expected 6250 rows, got %d", l.Len())
	}

	start, end := l.QueryRange(wrapped.Rect{Y: 30_000, W: 800, H: 200})
	if start != 3000 || end != 3020 {
		t.Errorf("QueryRange = [%d, %d), want [3000, 3020)", start, end)
	}
	rows := l.Query(wrapped.Rect{Y: 30_000, W: 800, H: 200})
	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}
	if rows[0].Items[0] != 24_000 {
		t.Errorf("first item = %d, want 24000", rows[0].Items[0])
	}
}

func TestRowLookups(t *testing.T) {
	l := mustLayout(t, seq(25), 4, wrapped.FixedHeight[int](20))

	if i, ok := l.RowAt(45); !ok || i != 2 {
		t.Errorf("RowAt(45) = %d, %v; want 2, true", i, ok)
	}
	if _, ok := l.RowAt(-1); ok {
		t.Error("RowAt(-1) should miss")
	}
	if _, ok := l.RowAt(140); ok {
		t.Error("RowAt past content should miss")
	}

	if got := l.RowForItem(24); got != 6 {
		t.Errorf("RowForItem(24) = %d, want 6", got)
	}
	if got := l.RowForItem(25); got != -1 {
		t.Errorf("RowForItem(25) = %d, want -1", got)
	}
}

func TestScrollOffsetFor(t *testing.T) {
	// 10 rows of 20, content 200, viewport 60
	l := mustLayout(t, seq(30), 3, wrapped.FixedHeight[int](20))

	tests := []struct {
		name    string
		item    int
		current float32
		want    float32
	}{
		{"already visible", 4, 0, 0},
		{"below viewport", 15, 0, 60},
		{"above viewport", 3, 80, 20},
		{"last row clamps", 29, 0, 140},
		{"out of range", 99, 33, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ScrollOffsetFor(tt.item, tt.current, 60); got != tt.want {
				t.Errorf("ScrollOffsetFor(%d, %v) = %v, want %v", tt.item, tt.current, got, tt.want)
			}
		})
	}

	if got := l.MaxScroll(60); got != 140 {
		t.Errorf("MaxScroll = %v, want 140", got)
	}
}

func BenchmarkQuery(b *testing.B) {
	l := mustLayout(b, seq(50_000), 8, wrapped.FixedHeight[int](10))
	rect := wrapped.Rect{Y: 31_000, W: 800, H: 200}

	b.Run("binary", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Query(rect)
		}
	})
	b.Run("linear", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.QueryLinear(rect)
		}
	})
}

func BenchmarkNewLayout(b *testing.B) {
	items := seq(50_000)
	h := wrapped.FixedHeight[int](10)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = wrapped.NewLayout(items, 8, h)
	}
}
