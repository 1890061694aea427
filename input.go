package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the mouse pointer across frames.
type pointerState struct {
	hover  *Widget // widget under the pointer
	target *Widget // widget the current press started on
	down   bool
	button MouseButton
	x, y   float64
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	click        []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered view-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if list := h.reg.list(h.event); list != nil {
		*list = removePointerHandler(*list, h.id)
	}
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventClick:
		return &r.click
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	}
	return nil
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	list := r.list(event)
	*list = append(*list, pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// removePointerHandler returns a new slice without the handler. The old
// backing array is left intact so a dispatch already ranging over it sees
// every handler exactly once.
func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i, h := range s {
		if h.id == id {
			out := make([]pointerHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// OnPointerDown registers a view-level callback for pointer presses on any
// interactable widget.
func (v *View) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return v.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a view-level callback for pointer releases.
func (v *View) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return v.handlers.add(EventPointerUp, fn)
}

// OnClick registers a view-level callback for clicks.
func (v *View) OnClick(fn func(PointerContext)) CallbackHandle {
	return v.handlers.add(EventClick, fn)
}

// OnPointerEnter registers a view-level callback fired when the pointer
// enters an interactable widget.
func (v *View) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return v.handlers.add(EventPointerEnter, fn)
}

// OnPointerLeave registers a view-level callback fired when the pointer
// leaves an interactable widget.
func (v *View) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return v.handlers.add(EventPointerLeave, fn)
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order, appending visible
// interactable widgets to buf. Hidden subtrees are skipped; a
// non-interactable parent does not block its children.
func collectInteractable(w *Widget, buf []*Widget) []*Widget {
	if w.destroyed || !w.visible {
		return buf
	}
	if w.interactable {
		buf = append(buf, w)
	}
	for _, c := range w.children {
		buf = collectInteractable(c, buf)
	}
	return buf
}

// WidgetAt returns the topmost interactable widget whose bounds contain the
// global point (x, y), or nil.
func (v *View) WidgetAt(x, y float64) *Widget {
	if v.root.destroyed {
		return nil
	}
	v.hitBuf = collectInteractable(v.root, v.hitBuf[:0])
	var hit *Widget
	// Reverse painter order: topmost first.
	for i := len(v.hitBuf) - 1; i >= 0; i-- {
		if v.hitBuf[i].Contains(x, y) {
			hit = v.hitBuf[i]
			break
		}
	}
	clear(v.hitBuf)
	return hit
}

// --- Input processing ---

// processInput is called from View.Update. Injected events take priority
// over the real mouse.
func (v *View) processInput() {
	if v.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()

	// Keep the button that started an interaction until it ends.
	var pressed bool
	button := v.pointer.button
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if !v.pointer.down {
			switch {
			case left:
				button = MouseButtonLeft
			case right:
				button = MouseButtonRight
			default:
				button = MouseButtonMiddle
			}
		}
	}
	v.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer advances the pointer state machine with one sample.
func (v *View) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &v.pointer
	hit := v.WidgetAt(x, y)

	if hit != ps.hover {
		if prev := ps.hover; prev != nil {
			prev.hovered = false
			v.fire(EventPointerLeave, prev, x, y, button)
		}
		// A leave callback may have destroyed the widget under the pointer.
		if hit != nil && hit.destroyed {
			hit = nil
		}
		ps.hover = hit
		if hit != nil {
			hit.hovered = true
			v.fire(EventPointerEnter, hit, x, y, button)
		}
	}
	if hit != nil && hit.destroyed {
		hit = nil
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.target = hit
		if hit != nil {
			hit.pressed = true
			v.fire(EventPointerDown, hit, x, y, button)
		}
	case !pressed && ps.down:
		ps.down = false
		target := ps.target
		ps.target = nil
		if target != nil {
			target.pressed = false
		}
		if hit != nil {
			v.fire(EventPointerUp, hit, x, y, ps.button)
		}
		// Callbacks above may have destroyed the target.
		if hit != nil && hit == target && !hit.destroyed {
			v.fire(EventClick, hit, x, y, ps.button)
		}
	}
	ps.x, ps.y = x, y
}

// fire delivers an event to the widget's own callback, then to view-level
// handlers, then to the entity store.
func (v *View) fire(event EventType, w *Widget, x, y float64, button MouseButton) {
	lx, ly := w.GlobalToLocal(x, y)
	ctx := PointerContext{
		Widget:   w,
		EntityID: w.EntityID,
		UserData: w.UserData,
		GlobalX:  x,
		GlobalY:  y,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	}

	var own func(PointerContext)
	switch event {
	case EventPointerDown:
		own = w.OnPointerDown
	case EventPointerUp:
		own = w.OnPointerUp
	case EventClick:
		own = w.OnClick
	case EventPointerEnter:
		own = w.OnPointerEnter
	case EventPointerLeave:
		own = w.OnPointerLeave
	}
	if own != nil {
		own(ctx)
	}
	if list := v.handlers.list(event); list != nil {
		for _, h := range *list {
			h.fn(ctx)
		}
	}
	if v.store != nil {
		v.store.EmitEvent(InteractionEvent{
			Type:     event,
			EntityID: w.EntityID,
			GlobalX:  x,
			GlobalY:  y,
			LocalX:   lx,
			LocalY:   ly,
			Button:   button,
		})
	}
}
