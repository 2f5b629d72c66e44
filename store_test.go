package wrapped_test

import (
	"testing"

	"github.com/go-theft-auto/wrapped"
)

func TestStorePersistsWindowsAcrossFrames(t *testing.T) {
	store := wrapped.NewStore[int]()
	l := mustLayout(t, seq(50), 5, wrapped.FixedHeight[int](10))
	id := wrapped.IDFor("grid")

	w1, err := store.Window(id, l, wrapped.WithBuffer(20))
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	w1.ObserveVisible(wrapped.Rect{W: 100, H: 40})

	store.NextFrame()
	w2, err := store.Window(id, l)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w1 != w2 {
		t.Fatal("expected the same window on the next frame")
	}
	if w2.Stats().Observations != 1 {
		t.Errorf("window state was not kept: %+v", w2.Stats())
	}
}

func TestStoreDropsUnusedWindows(t *testing.T) {
	store := wrapped.NewStore[int]()
	l := mustLayout(t, seq(10), 1, wrapped.FixedHeight[int](10))

	if _, err := store.Window(wrapped.IDFor("a"), l); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Window(wrapped.IDFor("b"), l); err != nil {
		t.Fatal(err)
	}

	// Frame 1: only "a" is drawn
	store.NextFrame()
	if _, err := store.Window(wrapped.IDFor("a"), l); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2 before cleanup", store.Len())
	}

	store.NextFrame()
	if store.Len() != 1 {
		t.Fatalf("len = %d, want 1 after cleanup", store.Len())
	}
	if _, ok := store.Lookup(wrapped.IDFor("b")); ok {
		t.Error("window b should have been dropped")
	}
	if store.Frame() != 2 {
		t.Errorf("frame = %d, want 2", store.Frame())
	}
}

func TestStoreSwapsLayout(t *testing.T) {
	store := wrapped.NewStore[int]()
	id := wrapped.IDFor("grid")

	w, err := store.Window(id, mustLayout(t, seq(10), 2, wrapped.FixedHeight[int](10)))
	if err != nil {
		t.Fatal(err)
	}
	w.ObserveVisible(wrapped.Rect{W: 100, H: 100})

	next := mustLayout(t, seq(40), 2, wrapped.FixedHeight[int](10))
	w, err = store.Window(id, next)
	if err != nil {
		t.Fatal(err)
	}
	if w.Layout() != next {
		t.Error("store did not hand the new layout to the window")
	}
	if got := len(w.Rows()); got != 12 {
		t.Errorf("rows = %d, want 12 after re-query", got)
	}
}

func TestStoreRejectsBadOptions(t *testing.T) {
	store := wrapped.NewStore[int]()
	l := mustLayout(t, seq(10), 1, wrapped.FixedHeight[int](10))

	if _, err := store.Window(wrapped.IDFor("x"), l, wrapped.WithBuffer(-3)); err == nil {
		t.Fatal("expected an error for a negative buffer")
	}
	if store.Len() != 0 {
		t.Errorf("failed window was stored")
	}

	store.Window(wrapped.IDFor("y"), l)
	store.Delete(wrapped.IDFor("y"))
	store.Window(wrapped.IDFor("z"), l)
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("len = %d after Clear", store.Len())
	}
}

func TestIDs(t *testing.T) {
	if wrapped.IDFor("files") != wrapped.IDFor("files") {
		t.Error("IDFor is not stable")
	}
	if wrapped.IDFor("files") == wrapped.IDFor("photos") {
		t.Error("distinct labels collided")
	}
	parent := wrapped.IDFor("tabs")
	if parent.Child("a") == parent.Child("b") || parent.Child("a") == wrapped.IDFor("a") {
		t.Error("child IDs should depend on parent and label")
	}
}

func TestStoreKeepsOneWindowPerChildID(t *testing.T) {
	store := wrapped.NewStore[int]()
	root := wrapped.IDFor("screenshots")
	l := mustLayout(t, seq(100), 4, wrapped.FixedHeight[int](10))

	for _, name := range []string{"top", "middle", "bottom"} {
		var first *wrapped.Window[int]
		for frame := 0; frame < 3; frame++ {
			store.NextFrame()
			w, err := store.Window(root.Child(name), l)
			if err != nil {
				t.Fatal(err)
			}
			w.ObserveVisible(wrapped.Rect{W: 100, H: 50})
			if first == nil {
				first = w
			} else if w != first {
				t.Fatalf("%s: frame %d got a new window", name, frame)
			}
		}
		if got := first.Stats(); got.Observations != 3 || got.Updates != 1 {
			t.Errorf("%s: stats = %+v, want 3 observations and 1 update", name, got)
		}
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want only the last window alive", store.Len())
	}
}
