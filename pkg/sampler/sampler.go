// Package sampler turns ADC conversion results into display buffers.
//
// Convert is the body of the ADC-complete interrupt: it must not block and
// does not allocate.
package sampler

import (
	"strconv"

	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/itohio/ledthermo/pkg/thermo"
)

// Trigger starts the next ADC conversion. Completion is reported by calling
// Convert again.
type Trigger interface {
	StartConversion()
}

// Config holds the conversion parameters.
type Config struct {
	Scale    thermo.Scale
	Overflow Overflow
	Table    *segment.Table
}

// Sampler converts raw samples and publishes them to a shared buffer.
type Sampler struct {
	cfg Config
	out *segment.Shared
	adc Trigger

	last int32
}

// New creates a sampler writing to out and re-arming adc. A nil table selects
// segment.DefaultTable; a nil adc disables re-triggering.
func New(cfg Config, out *segment.Shared, adc Trigger) *Sampler {
	if cfg.Table == nil {
		cfg.Table = segment.DefaultTable
	}
	return &Sampler{cfg: cfg, out: out, adc: adc}
}

// Convert handles one finished conversion.
func (s *Sampler) Convert(raw uint16) {
	s.out.Store(s.Render(raw))
	if s.adc != nil {
		s.adc.StartConversion()
	}
}

// Render converts a raw sample to a display buffer without publishing it.
func (s *Sampler) Render(raw uint16) segment.Buffer {
	var text [16]byte
	s.last = s.cfg.Scale.FromRaw(raw)
	return segment.Layout(s.Text(text[:0], s.last), s.cfg.Table)
}

// Text appends the decimal representation of temp to dst, honouring the
// overflow policy.
func (s *Sampler) Text(dst []byte, temp int32) []byte {
	switch s.cfg.Overflow {
	case Clamp:
		if temp < MinDisplay {
			temp = MinDisplay
		} else if temp > MaxDisplay {
			temp = MaxDisplay
		}
	case Dashes:
		if temp < MinDisplay || temp > MaxDisplay {
			return append(dst, "----"...)
		}
	}
	// Truncate leaves the text as is; Layout keeps the rightmost characters.
	return strconv.AppendInt(dst, int64(temp), 10)
}

// Last returns the most recent temperature in tenths of a degree.
func (s *Sampler) Last() int32 {
	return s.last
}
