package canopy

// Layout is pull-based: every query walks the current parent chain, so
// values always reflect the attributes as they are at the time of the call.

// TrueSize returns the effective extent: size, with each axis replaced by
// the parent's true size times autoSize when autoSize is non-zero on that
// axis, minus the border insets. A widget with no parent ignores autoSize.
func (w *Widget) TrueSize() Vec2 {
	s := w.size
	if w.parent != nil && (w.autoSize.X != 0 || w.autoSize.Y != 0) {
		pt := w.parent.TrueSize()
		if w.autoSize.X != 0 {
			s.X = pt.X * w.autoSize.X
		}
		if w.autoSize.Y != 0 {
			s.Y = pt.Y * w.autoSize.Y
		}
	}
	s.X -= w.border.Horizontal()
	s.Y -= w.border.Vertical()
	return s
}

// Local returns the widget's offset from its parent's origin:
//
//	[border.Left, border.Top] + translation + parentTrueSize*anchor - trueSize*pivot
//
// A widget with no parent resolves its anchor against a zero-sized parent.
func (w *Widget) Local() Vec2 {
	var parentSize Vec2
	if w.parent != nil {
		parentSize = w.parent.TrueSize()
	}
	anchorPoint := parentSize.Mul(w.anchor)
	pivotPoint := w.TrueSize().Mul(w.pivot)
	return Vec2{w.border.Left, w.border.Top}.
		Add(w.translation).
		Add(anchorPoint).
		Sub(pivotPoint)
}

// Global returns the widget's absolute position: the sum of Local over the
// widget and all of its ancestors.
func (w *Widget) Global() Vec2 {
	g := w.Local()
	for p := w.parent; p != nil; p = p.parent {
		g = g.Add(p.Local())
	}
	return g
}

// Depth returns the number of ancestors. A root widget has depth 0.
func (w *Widget) Depth() int {
	d := 0
	for p := w.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Bounds returns the widget's resolved rectangle in global coordinates.
func (w *Widget) Bounds() Rect {
	g := w.Global()
	s := w.TrueSize()
	return Rect{X: g.X, Y: g.Y, Width: s.X, Height: s.Y}
}

// Contains reports whether the global point (x, y) lies within Bounds.
func (w *Widget) Contains(x, y float64) bool {
	return w.Bounds().Contains(x, y)
}

// GlobalToLocal converts a global point to coordinates relative to the
// widget's top-left corner.
func (w *Widget) GlobalToLocal(x, y float64) (lx, ly float64) {
	g := w.Global()
	return x - g.X, y - g.Y
}
