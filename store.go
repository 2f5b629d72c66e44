package wrapped

import "sync"

// storeEntry wraps a window with frame tracking for staleness detection.
type storeEntry[T any] struct {
	window    *Window[T]
	lastFrame uint64
}

// Store keeps windows alive across frames for immediate-mode hosts, which
// redraw every frame and cannot hold a *Window themselves.
//
// Usage:
//
//	var grids = wrapped.NewStore[File]()
//
//	// Each frame
//	grids.NextFrame()
//	w, err := grids.Window(wrapped.IDFor("files"), layout, wrapped.WithBuffer(200))
//	w.Observe(viewport, content)
//	for _, row := range w.Rows() { ... }
//
// Windows not requested during the previous frame are dropped on NextFrame.
// Store is safe for concurrent use; the windows it hands out are not.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[ID]*storeEntry[T]
	frame   uint64
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[ID]*storeEntry[T])}
}

// Window returns the window stored under id, creating it over layout with
// opts if absent. If the stored window windows a different layout, the new
// layout is swapped in. Options only apply on creation.
func (s *Store[T]) Window(id ID, layout *Layout[T], opts ...Option) (*Window[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[id]; ok {
		entry.lastFrame = s.frame
		if _, err := entry.window.SetLayout(layout); err != nil {
			return nil, err
		}
		return entry.window, nil
	}

	w, err := NewWindow(layout, opts...)
	if err != nil {
		return nil, err
	}
	s.entries[id] = &storeEntry[T]{window: w, lastFrame: s.frame}
	return w, nil
}

// Lookup returns the window stored under id without marking it used.
func (s *Store[T]) Lookup(id ID) (*Window[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return entry.window, true
}

// NextFrame advances the frame counter and drops windows that were not
// requested in the frame that just ended.
func (s *Store[T]) NextFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame++
	threshold := s.frame - 1
	for id, entry := range s.entries {
		if entry.lastFrame < threshold {
			delete(s.entries, id)
		}
	}
}

// Frame returns the current frame counter.
func (s *Store[T]) Frame() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Delete removes the window stored under id.
func (s *Store[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of stored windows.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear removes all windows.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	s.entries = make(map[ID]*storeEntry[T])
	s.mu.Unlock()
}
