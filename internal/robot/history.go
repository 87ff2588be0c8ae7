package robot

import "fmt"

// History is a fixed-capacity ring buffer of pose snapshots. Push is
// O(1) and evicts the oldest snapshot once the buffer is full, so
// memory stays constant regardless of run length.
type History struct {
	buf   []Vec3
	head  int // index of the next write
	count int
}

// NewHistory creates a ring buffer holding at most capacity snapshots.
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: history capacity must be positive, got %d", ErrInvalidConfig, capacity)
	}
	return &History{buf: make([]Vec3, capacity)}, nil
}

// Push records a snapshot by value, overwriting the oldest entry when
// the buffer is at capacity.
func (h *History) Push(p Vec3) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

func (h *History) Len() int { return h.count }

func (h *History) Cap() int { return len(h.buf) }

// Snapshot returns the retained window ordered oldest to newest. The
// returned slice is a copy; mutating it does not affect the buffer.
func (h *History) Snapshot() []Vec3 {
	out := make([]Vec3, h.count)
	start := h.head - h.count
	if start < 0 {
		start += len(h.buf)
	}
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}

// Latest returns the most recent snapshot, or false when empty.
func (h *History) Latest() (Vec3, bool) {
	if h.count == 0 {
		return Vec3{}, false
	}
	idx := h.head - 1
	if idx < 0 {
		idx += len(h.buf)
	}
	return h.buf[idx], true
}
