package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often the FPS widget re-reads the counters, in seconds.
const fpsRefresh = 0.5

// NewFPSWidget creates a text widget in the top-right corner of parent that
// displays the current FPS and TPS. The text is refreshed every half second.
func NewFPSWidget(v *View, parent *Widget) (*Widget, error) {
	w, err := New(v, KindText, Options{
		AttrName:   "fps",
		AttrParent: parent,
		AttrSize:   Vec2{100, 36},
		AttrAnchor: Vec2{1, 0},
		AttrPivot:  Vec2{1, 0},
		AttrColor:  Color{0, 0, 0, 0.5},
		AttrText:   "FPS: --\nTPS: --",
	})
	if err != nil {
		return nil, err
	}

	var elapsed float64
	w.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < fpsRefresh {
			return
		}
		elapsed = 0
		_ = w.SetText(fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return w, nil
}
