// Package scanner multiplexes a 4-digit 7-segment display.
package scanner

import (
	"context"

	"github.com/itohio/ledthermo/pkg/segment"
)

// Port drives the digit transistors and the shared segment lines.
type Port interface {
	Select(mask byte)
	Segments(pattern byte)
}

// Timing controls how long each digit is lit.
type Timing struct {
	Frames          int    // frames shown per buffer snapshot
	DigitDelay      uint16 // ticks a digit stays lit
	TransistorDelay uint16 // ticks all digits stay dark before switching
}

// DefaultTiming is tuned for a 200 µs tick.
var DefaultTiming = Timing{
	Frames:          30,
	DigitDelay:      44,
	TransistorDelay: 1,
}

// Scanner refreshes the display from a shared buffer.
type Scanner struct {
	port     Port
	delay    Delayer
	buf      *segment.Shared
	polarity Polarity
	timing   Timing

	snapshot segment.Buffer
}

// New creates a scanner. Frames below one are raised to one.
func New(port Port, delay Delayer, buf *segment.Shared, polarity Polarity, timing Timing) *Scanner {
	if timing.Frames < 1 {
		timing.Frames = 1
	}
	return &Scanner{
		port:     port,
		delay:    delay,
		buf:      buf,
		polarity: polarity,
		timing:   timing,
	}
}

// Off switches every digit off.
func (s *Scanner) Off() {
	s.port.Select(s.polarity.Off())
}

// Show lights a single digit with pattern.
// All digits go dark for TransistorDelay first so the previous pattern does
// not bleed into the next digit.
func (s *Scanner) Show(digit int, pattern byte) {
	s.port.Select(s.polarity.Off())
	s.delay.Delay(s.timing.TransistorDelay)

	s.port.Select(s.polarity.Select(digit))
	s.port.Segments(pattern)
	s.delay.Delay(s.timing.DigitDelay)
}

// Frame lights every digit once, left to right.
func (s *Scanner) Frame() {
	for d, p := range s.snapshot {
		s.Show(d, p)
	}
}

// Cycle takes a fresh snapshot of the shared buffer and shows it for
// Timing.Frames frames.
func (s *Scanner) Cycle() {
	s.snapshot = s.buf.Snapshot()
	for i := 0; i < s.timing.Frames; i++ {
		s.Frame()
	}
}

// Run cycles until ctx is done. Cancellation is observed between frames, so
// Run returns within one frame of ctx being cancelled.
func (s *Scanner) Run(ctx context.Context) error {
	defer s.Off()
	for {
		s.snapshot = s.buf.Snapshot()
		for i := 0; i < s.timing.Frames; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s.Frame()
		}
	}
}

// Snapshot returns the buffer taken by the last Cycle.
func (s *Scanner) Snapshot() segment.Buffer {
	return s.snapshot
}

// Timing returns the effective timing.
func (s *Scanner) Timing() Timing {
	return s.timing
}
