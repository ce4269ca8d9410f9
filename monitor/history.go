package monitor

// History is a fixed-capacity ring of the most recent samples,
// insertion-ordered, oldest evicted first.
type History struct {
	buf   []Sample
	head  int // next write position
	count int // number of valid samples
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic("monitor: history capacity must be positive")
	}
	return &History{buf: make([]Sample, capacity)}
}

// Push appends a sample, overwriting the oldest one at capacity.
func (h *History) Push(s Sample) {
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

func (h *History) Len() int { return h.count }
func (h *History) Cap() int { return len(h.buf) }

// Samples returns the held samples in arrival order (oldest first).
func (h *History) Samples() []Sample {
	if h.count == 0 {
		return nil
	}
	out := make([]Sample, h.count)
	start := (h.head - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}

// Average returns the unweighted mean over the held samples, still in
// Celsius. ok is false when the buffer is empty.
func (h *History) Average() (avg Sample, ok bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	start := (h.head - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		s := h.buf[(start+i)%len(h.buf)]
		avg.Celsius += s.Celsius
		avg.Humidity += s.Humidity
	}
	avg.Celsius /= float64(h.count)
	avg.Humidity /= float64(h.count)
	return avg, true
}
