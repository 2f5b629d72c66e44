package wrapped

import "hash/fnv"

// ID names a window in a Store. IDs are stable across frames for the same label.
type ID uint64

// IDFor generates a stable ID from a string label.
func IDFor(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// Child derives an ID for a nested window, e.g. one grid per tab.
func (id ID) Child(label string) ID {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(id >> (8 * i))
	}
	h.Write(b[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}
