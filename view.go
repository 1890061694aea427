package canopy

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a View, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// View is the host context for a widget tree. It owns the root widget, hands
// out widget IDs, drives per-frame updates and input, and draws the tree.
// View implements ebiten.Game.
type View struct {
	root   *Widget
	width  int
	height int
	store  EntityStore
	debug  bool

	// ClearColor fills the screen before widgets are drawn. Zero alpha skips
	// the fill.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	idCounter  uint32
	live       int
	updateFunc func() error

	// Traversal buffers reused across frames.
	paintBuf  []*Widget
	updateBuf []*Widget
	hitBuf    []*Widget

	// Input
	handlers handlerRegistry
	pointer  pointerState

	// Test automation
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewView creates a view whose root panel covers a width x height screen.
func NewView(width, height int) *View {
	v := &View{
		width:         width,
		height:        height,
		ScreenshotDir: "screenshots",
	}
	v.root = MustNew(v, KindPanel, Options{
		AttrName: "root",
		AttrSize: Vec2{float64(width), float64(height)},
	})
	return v
}

// Root returns the view's root panel.
func (v *View) Root() *Widget {
	return v.root
}

// Widgets returns the number of live (created and not destroyed) widgets
// owned by the view, including the root.
func (v *View) Widgets() int {
	return v.live
}

// ScreenSize returns the current logical screen size.
func (v *View) ScreenSize() (width, height int) {
	return v.width, v.height
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error from fn is returned from Update, which stops the ebiten loop.
func (v *View) SetUpdateFunc(fn func() error) {
	v.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (v *View) SetEntityStore(store EntityStore) {
	v.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, unknown
// attributes, deep trees, and crowded parents produce warnings, and per-frame
// stats are logged to stderr.
func (v *View) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// Update runs one frame: widget OnUpdate callbacks, the test runner, input,
// then the update function.
func (v *View) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	var t0 time.Time
	if v.debug {
		t0 = time.Now()
	}

	// Snapshot first: callbacks may create or destroy widgets.
	v.updateBuf = collectVisible(v.root, v.updateBuf[:0])
	for _, w := range v.updateBuf {
		if w.destroyed || w.OnUpdate == nil {
			continue
		}
		w.OnUpdate(dt)
	}
	clear(v.updateBuf)

	if v.testRunner != nil {
		v.testRunner.step(v)
	}
	v.processInput()

	if v.debug {
		debugLogUpdate(v, time.Since(t0))
	}

	if v.updateFunc != nil {
		return v.updateFunc()
	}
	return nil
}

// Layout resizes the root panel to the outside size and reports it back as
// the logical screen size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		if !v.root.destroyed {
			_ = v.root.SetSize(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return v.width, v.height
}

func (v *View) nextID() uint32 {
	v.idCounter++
	return v.idCounter
}

// forget drops every reference the view holds to a destroyed widget.
func (v *View) forget(w *Widget) {
	v.live--
	if v.pointer.hover == w {
		v.pointer.hover = nil
	}
	if v.pointer.target == w {
		v.pointer.target = nil
	}
}

// collectVisible appends w and its visible descendants to buf in painter
// order (depth-first, child order). Hidden subtrees are skipped.
func collectVisible(w *Widget, buf []*Widget) []*Widget {
	if w == nil || w.destroyed || !w.visible {
		return buf
	}
	buf = append(buf, w)
	for _, c := range w.children {
		buf = collectVisible(c, buf)
	}
	return buf
}
