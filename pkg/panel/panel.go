// Package panel draws a 4-digit 7-segment display as a Fyne widget.
package panel

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/ledthermo/pkg/segment"
)

var (
	// OnColor is the colour of a lit segment.
	OnColor = color.RGBA{R: 255, G: 40, B: 20, A: 255}
	// OffColor is the colour of a dark segment.
	OffColor = color.RGBA{R: 55, G: 12, B: 10, A: 255}
	// Background fills the area behind the digits.
	Background = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// Panel is a Fyne widget that shows a segment.Buffer.
type Panel struct {
	widget.BaseWidget

	mu  sync.RWMutex
	buf segment.Buffer
}

// New creates a panel with every segment dark.
func New() *Panel {
	p := &Panel{}
	p.ExtendBaseWidget(p)
	return p
}

// SetBuffer updates the shown patterns.
// Call it from the UI goroutine, e.g. inside fyne.Do.
func (p *Panel) SetBuffer(b segment.Buffer) {
	p.mu.Lock()
	changed := p.buf != b
	p.buf = b
	p.mu.Unlock()

	if changed {
		p.Refresh()
	}
}

// Buffer returns the shown patterns.
func (p *Panel) Buffer() segment.Buffer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.buf
}

// CreateRenderer creates the widget renderer.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	r := &panelRenderer{
		panel:      p,
		background: canvas.NewRectangle(Background),
	}
	r.objects = append(r.objects, r.background)
	for d := range r.digits {
		for s := range r.digits[d] {
			var obj fyne.CanvasObject
			if segmentBits[s] == segment.SegDP {
				c := canvas.NewCircle(OffColor)
				r.dots[d] = c
				obj = c
			} else {
				seg := canvas.NewRectangle(OffColor)
				seg.CornerRadius = 2
				r.digits[d][s] = seg
				obj = seg
			}
			r.objects = append(r.objects, obj)
		}
	}
	r.Refresh()
	return r
}
