package canopy

// syntheticPointerEvent is a single injected pointer sample in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a left-button press at (x, y). The event is consumed
// on the next Update.
func (v *View) InjectPress(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to (x, y) with the button held down.
// Use this between InjectPress and InjectRelease.
func (v *View) InjectMove(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectHover queues a pointer move to (x, y) with no button held.
func (v *View) InjectHover(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at (x, y).
func (v *View) InjectRelease(x, y float64) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{
		x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (v *View) InjectClick(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (v *View) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	v.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
