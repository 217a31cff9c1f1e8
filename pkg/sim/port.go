package sim

import (
	"sync"

	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/segment"
)

var _ scanner.Port = (*Port)(nil)

// Port is a virtual display. Each digit keeps the last pattern written while
// it was selected, which is what a persistent eye would see.
type Port struct {
	polarity scanner.Polarity

	mu       sync.Mutex
	selected byte
	lit      segment.Buffer
	frames   uint64
	onFrame  func(lit segment.Buffer)
}

// NewPort creates a virtual port with the transistor polarity p.
func NewPort(p scanner.Polarity) *Port {
	return &Port{polarity: p, selected: p.Off()}
}

// Select drives the digit transistor lines.
func (p *Port) Select(mask byte) {
	p.mu.Lock()
	p.selected = mask
	p.mu.Unlock()
}

// Segments drives the segment lines and latches pattern into every selected
// digit. Writing the last digit completes a frame.
func (p *Port) Segments(pattern byte) {
	p.mu.Lock()
	frame := false
	for d := range segment.Width {
		if p.polarity.Active(p.selected, d) {
			p.lit[d] = pattern
			frame = frame || d == segment.Width-1
		}
	}
	if frame {
		p.frames++
	}
	lit, cb := p.lit, p.onFrame
	p.mu.Unlock()

	if frame && cb != nil {
		cb(lit)
	}
}

// Lit returns the pattern each digit shows.
func (p *Port) Lit() segment.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lit
}

// Frames returns the number of completed frames.
func (p *Port) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Dark reports whether no digit is currently selected.
func (p *Port) Dark() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected == p.polarity.Off()
}

// OnFrame registers cb to be called after every completed frame. The callback
// runs on the scanning goroutine and must not block.
func (p *Port) OnFrame(cb func(lit segment.Buffer)) {
	p.mu.Lock()
	p.onFrame = cb
	p.mu.Unlock()
}
