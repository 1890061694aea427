package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float components of one widget attribute.
// Create one via TweenTranslation, TweenSize, TweenAnchor, or TweenColor and
// call Update(dt) each frame. Values are written through Widget.Set, so
// attribute hooks fire as usual. If the target widget is destroyed, the
// group stops immediately.
//
// There is no global animation manager: users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	target *Widget
	apply  func(vals [4]float64) Options
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. A Set error (for example a destroyed target) ends the group.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.IsDestroyed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if err := g.target.Set(g.apply(vals)); err != nil {
		g.Done = true
	}
}

func newVec2Tween(w *Widget, attr Attr, from, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	g.apply = func(vals [4]float64) Options {
		return Options{attr: Vec2{vals[0], vals[1]}}
	}
	return g
}

// TweenTranslation animates the widget's translation to the given offset.
func TweenTranslation(w *Widget, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(w, AttrTranslation, w.translation, to, duration, fn)
}

// TweenSize animates the widget's explicit size.
func TweenSize(w *Widget, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(w, AttrSize, w.size, to, duration, fn)
}

// TweenAnchor animates the widget's anchor, sliding it across its parent.
func TweenAnchor(w *Widget, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newVec2Tween(w, AttrAnchor, w.anchor, to, duration, fn)
}

// TweenColor animates all four components of the widget's color.
func TweenColor(w *Widget, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := w.color
	g := &TweenGroup{count: 4, target: w}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	g.apply = func(vals [4]float64) Options {
		return Options{AttrColor: Color{vals[0], vals[1], vals[2], vals[3]}}
	}
	return g
}
