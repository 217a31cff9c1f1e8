package sample

// Averager is a sliding-window mean over the last N raw values.
type Averager struct {
	window []uint16
	next   int
	filled int
	sum    uint32
}

// NewAverager creates an averager over windowSize values. Sizes below one
// disable averaging.
func NewAverager(windowSize int) *Averager {
	if windowSize <= 0 {
		windowSize = 1 // No averaging if invalid
	}
	return &Averager{window: make([]uint16, windowSize)}
}

// Add pushes v and returns the rounded mean of the window.
func (a *Averager) Add(v uint16) uint16 {
	if a.filled == len(a.window) {
		a.sum -= uint32(a.window[a.next])
	} else {
		a.filled++
	}
	a.window[a.next] = v
	a.sum += uint32(v)
	a.next = (a.next + 1) % len(a.window)

	n := uint32(a.filled)
	return uint16((a.sum + n/2) / n) // Round to nearest
}

// Reset empties the window.
func (a *Averager) Reset() {
	a.next = 0
	a.filled = 0
	a.sum = 0
}

// NewAveragingConverter creates a stage that replaces every RawSample value
// with the mean of the last windowSize values. Timestamps are kept.
func NewAveragingConverter(windowSize int, bufSize int) func(in <-chan RawSample) <-chan RawSample {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	return func(in <-chan RawSample) <-chan RawSample {
		out := make(chan RawSample, bufSize)

		go func() {
			defer close(out)

			avg := NewAverager(windowSize)
			for raw := range in {
				raw.Value = avg.Add(raw.Value)
				out <- raw
			}
		}()

		return out
	}
}
