package sim

import (
	"testing"

	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/stretchr/testify/assert"
)

func TestPort_LatchesSelectedDigit(t *testing.T) {
	for _, pol := range []scanner.Polarity{scanner.ActiveHigh, scanner.ActiveLow} {
		t.Run(pol.String(), func(t *testing.T) {
			p := NewPort(pol)
			assert.True(t, p.Dark())

			// Segments written while dark go nowhere
			p.Segments(0xFF)
			assert.Equal(t, segment.Buffer{}, p.Lit())

			p.Select(pol.Select(1))
			assert.False(t, p.Dark())
			p.Segments(0x60)
			assert.Equal(t, segment.Buffer{0, 0x60, 0, 0}, p.Lit())

			p.Select(pol.Off())
			assert.Equal(t, segment.Buffer{0, 0x60, 0, 0}, p.Lit(), "off keeps what was shown")
		})
	}
}

func TestPort_WithScanner(t *testing.T) {
	buf := segment.NewShared(nil)
	want := segment.Buffer{0x01, 0x02, 0x03, 0x04}
	buf.Store(want)

	p := NewPort(scanner.ActiveLow)
	var frames []segment.Buffer
	p.OnFrame(func(lit segment.Buffer) {
		frames = append(frames, lit)
	})

	s := scanner.New(p, scanner.DelayFunc(func(uint16) {}), buf, scanner.ActiveLow, scanner.Timing{Frames: 3})
	s.Cycle()

	assert.Equal(t, want, p.Lit())
	assert.Equal(t, uint64(3), p.Frames())
	assert.Len(t, frames, 3)
	for _, f := range frames {
		assert.Equal(t, want, f)
	}
}
