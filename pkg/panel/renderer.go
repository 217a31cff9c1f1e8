package panel

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/itohio/ledthermo/pkg/segment"
)

// segmentBits lists the segments in drawing order.
var segmentBits = [8]byte{
	segment.SegA, segment.SegB, segment.SegC, segment.SegD,
	segment.SegE, segment.SegF, segment.SegG, segment.SegDP,
}

// rect is a position and size relative to a digit cell.
type rect struct {
	X, Y, W, H float32
}

// digitAspect is width over height of one digit cell, gap included.
const digitAspect = 0.6

// panelRenderer renders the panel widget.
type panelRenderer struct {
	panel *Panel

	background *canvas.Rectangle
	digits     [segment.Width][8]*canvas.Rectangle
	dots       [segment.Width]*canvas.Circle

	objects []fyne.CanvasObject
}

// MinSize returns the minimum size of the widget.
func (r *panelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(240, 100)
}

// Layout places every segment of every digit.
func (r *panelRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	cellH := size.Height * 0.8
	cellW := cellH * digitAspect
	if total := cellW * segment.Width; total > size.Width*0.9 {
		cellW = size.Width * 0.9 / segment.Width
		cellH = cellW / digitAspect
	}
	originX := (size.Width - cellW*segment.Width) / 2
	originY := (size.Height - cellH) / 2

	shapes := segmentRects(cellW*0.75, cellH)
	for d := range r.digits {
		x := originX + float32(d)*cellW
		for s := range shapes {
			var obj fyne.CanvasObject
			if segmentBits[s] == segment.SegDP {
				obj = r.dots[d]
			} else {
				obj = r.digits[d][s]
			}
			obj.Move(fyne.NewPos(x+shapes[s].X, originY+shapes[s].Y))
			obj.Resize(fyne.NewSize(shapes[s].W, shapes[s].H))
		}
	}
}

// segmentRects returns the segment shapes of a digit w wide and h high, in
// segmentBits order. The decimal point sits to the right of the digit.
func segmentRects(w, h float32) [8]rect {
	t := w * 0.16
	half := h / 2
	vert := half - t*1.5
	return [8]rect{
		{X: t, Y: 0, W: w - 2*t, H: t},           // a
		{X: w - t, Y: t, W: t, H: vert},          // b
		{X: w - t, Y: half + t/2, W: t, H: vert}, // c
		{X: t, Y: h - t, W: w - 2*t, H: t},       // d
		{X: 0, Y: half + t/2, W: t, H: vert},     // e
		{X: 0, Y: t, W: t, H: vert},              // f
		{X: t, Y: half - t/2, W: w - 2*t, H: t},  // g
		{X: w + t/2, Y: h - t, W: t, H: t},       // dp
	}
}

// Refresh colours the segments from the panel buffer.
func (r *panelRenderer) Refresh() {
	buf := r.panel.Buffer()

	for d := range r.digits {
		for s, bit := range segmentBits {
			c := colorOf(buf[d], bit)
			if bit == segment.SegDP {
				r.dots[d].FillColor = c
				r.dots[d].Refresh()
				continue
			}
			r.digits[d][s].FillColor = c
			r.digits[d][s].Refresh()
		}
	}
	r.background.Refresh()
}

func colorOf(pattern, bit byte) color.Color {
	if pattern&bit != 0 {
		return OnColor
	}
	return OffColor
}

// Objects returns all canvas objects for rendering.
func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *panelRenderer) Destroy() {
	// Cleanup handled by Fyne
}
