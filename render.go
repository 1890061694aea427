package canopy

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shading applied to interactable widget fills.
const (
	hoverTint   = 1.15
	pressedTint = 0.8
)

// whitePixel is a 1x1 white image scaled and tinted to fill rectangles.
// Created on first draw so that building a tree needs no graphics context.
var whitePixel *ebiten.Image

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Draw renders the tree onto screen in painter order: parents before
// children, siblings in child order.
func (v *View) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}

	if v.ClearColor.A > 0 {
		screen.Fill(v.ClearColor.toRGBA())
	}

	v.paintBuf = collectVisible(v.root, v.paintBuf[:0])
	draws := 0
	for _, w := range v.paintBuf {
		draws += drawWidget(screen, w)
	}
	n := len(v.paintBuf)
	clear(v.paintBuf)

	v.flushScreenshots(screen)

	if v.debug {
		debugLogDraw(v, n, draws, time.Since(t0))
	}
}

// drawWidget draws one widget's fill and text and returns the number of draw
// calls issued.
func drawWidget(screen *ebiten.Image, w *Widget) int {
	b := w.Bounds()
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	calls := 0
	if fill := fillColor(w); fill.A > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.Width, b.Height)
		op.GeoM.Translate(b.X, b.Y)
		op.ColorScale.ScaleWithColor(fill.toRGBA())
		screen.DrawImage(solidImage(), op)
		calls++
	}
	if w.text != "" {
		drawText(screen, w, b)
		calls++
	}
	return calls
}

// fillColor returns the widget's color, shaded while an interactable widget
// is hovered or pressed.
func fillColor(w *Widget) Color {
	c := w.color
	if !w.interactable {
		return c
	}
	switch {
	case w.pressed:
		c.R, c.G, c.B = c.R*pressedTint, c.G*pressedTint, c.B*pressedTint
	case w.hovered:
		c.R, c.G, c.B = clamp01(c.R*hoverTint), clamp01(c.G*hoverTint), clamp01(c.B*hoverTint)
	}
	return c
}

// textOrigin returns the top-left corner for the widget's text: aligned
// horizontally per the widget's TextAlign and centered vertically.
func textOrigin(w *Widget, b Rect) (x, y float64) {
	ts := w.textSize
	switch w.align {
	case TextAlignCenter:
		x = b.X + (b.Width-ts.X)/2
	case TextAlignRight:
		x = b.X + b.Width - ts.X
	default:
		x = b.X
	}
	y = b.Y + (b.Height-ts.Y)/2
	return x, y
}

func drawText(screen *ebiten.Image, w *Widget, b Rect) {
	x, y := textOrigin(w, b)
	f := w.font
	if f == nil {
		f = DebugFont{}
	}
	f.DrawString(screen, w.text, x, y, w.textColor)
}
