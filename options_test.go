package wrapped_test

import (
	"testing"

	"github.com/go-theft-auto/wrapped"
)

func TestApplyAndGetCustomKey(t *testing.T) {
	optPrefetchRows := wrapped.NewOptKey("prefetchRows", 2)

	if got := wrapped.ApplyAndGet(nil, optPrefetchRows); got != 2 {
		t.Errorf("unset = %d, want default 2", got)
	}
	opts := []wrapped.Option{nil, wrapped.WithBuffer(5), wrapped.WithOpt(optPrefetchRows, 7)}
	if got := wrapped.ApplyAndGet(opts, optPrefetchRows); got != 7 {
		t.Errorf("set = %d, want 7", got)
	}
	if got := wrapped.ApplyAndGet(opts, wrapped.OptBuffer); got != 5 {
		t.Errorf("buffer = %v, want 5", got)
	}
	if optPrefetchRows.Name() != "prefetchRows" || optPrefetchRows.Default() != 2 {
		t.Errorf("key = %q/%d", optPrefetchRows.Name(), optPrefetchRows.Default())
	}

	// Custom keys ride along without disturbing window construction.
	l := mustLayout(t, seq(10), 1, wrapped.FixedHeight[int](10))
	if _, err := wrapped.NewWindow(l, opts...); err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
}
