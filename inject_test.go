package canopy

import "testing"

func TestInjectClick(t *testing.T) {
	v := NewView(200, 200)
	btn := newButton(t, v, v.Root(), 0, 0, 100, 100)

	var clicked bool
	v.OnClick(func(ctx PointerContext) {
		clicked = true
		if ctx.Widget != btn {
			t.Error("expected button widget")
		}
	})

	v.InjectClick(50, 50)
	if len(v.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(v.injectQueue))
	}

	// Frame 1: press
	v.processInput()
	if len(v.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(v.injectQueue))
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release → click fires
	v.processInput()
	if len(v.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", len(v.injectQueue))
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectPressMoveRelease(t *testing.T) {
	v := NewView(300, 300)
	a := newButton(t, v, v.Root(), 0, 0, 100, 100)
	b := newButton(t, v, v.Root(), 200, 0, 100, 100)

	var events []string
	a.OnPointerLeave = func(PointerContext) { events = append(events, "leave-a") }
	b.OnPointerEnter = func(PointerContext) { events = append(events, "enter-b") }
	b.OnPointerUp = func(PointerContext) { events = append(events, "up-b") }
	a.OnClick = func(PointerContext) { events = append(events, "click-a") }

	v.InjectPress(10, 10)
	v.InjectMove(250, 10)
	v.InjectRelease(250, 10)
	for range 3 {
		v.processInput()
	}

	want := []string{"leave-a", "enter-b", "up-b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestInjectHoverDoesNotPress(t *testing.T) {
	v := NewView(200, 200)
	btn := newButton(t, v, v.Root(), 0, 0, 100, 100)

	v.InjectHover(20, 20)
	v.processInput()
	if !btn.Hovered() {
		t.Error("button should be hovered")
	}
	if btn.Pressed() {
		t.Error("hover must not press")
	}
}
