package canopy

import (
	"fmt"
	"maps"
	"slices"
)

// PointerContext carries pointer event data.
type PointerContext struct {
	Widget   *Widget
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// Widget is one rectangular region in a UI hierarchy. Layout attributes are
// written only through Set (or the typed setters that wrap it); positions and
// sizes are resolved on demand from the current parent chain.
type Widget struct {
	// Identity
	ID   uint32
	kind *Kind
	view *View

	// Hierarchy
	parent   *Widget
	children []*Widget

	// Attribute slots
	name         string
	size         Vec2
	autoSize     Vec2
	border       Insets
	translation  Vec2
	anchor       Vec2
	pivot        Vec2
	color        Color
	interactable bool
	visible      bool
	extra        map[Attr]any

	// Text slots (text and button kinds)
	text      string
	font      Font
	align     TextAlign
	textColor Color
	textSize  Vec2

	// Pointer state, maintained by the owning View.
	hovered bool
	pressed bool

	// Metadata
	UserData any
	EntityID uint32

	// Per-widget callbacks (nil by default)
	OnUpdate       func(dt float64)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnDestroy      func(*Widget)

	destroyed bool
}

// New creates a widget of the given kind owned by v. The kind's defaults are
// merged under opts and the result is applied through Set, so a parent in
// opts registers the widget as its child. A nil kind means KindPanel.
func New(v *View, kind *Kind, opts Options) (*Widget, error) {
	if v == nil {
		panic("canopy: cannot create widget without a view")
	}
	if kind == nil {
		kind = KindPanel
	}
	w := &Widget{
		ID:        v.nextID(),
		kind:      kind,
		view:      v,
		visible:   true,
		textColor: ColorWhite,
	}
	merged := maps.Clone(kind.defaults)
	if merged == nil {
		merged = make(Options, len(opts))
	}
	maps.Copy(merged, opts)
	if err := w.Set(merged); err != nil {
		return nil, err
	}
	v.live++
	return w, nil
}

// MustNew is like New but panics on error. Intended for static UI setup.
func MustNew(v *View, kind *Kind, opts Options) *Widget {
	w, err := New(v, kind, opts)
	if err != nil {
		panic(err)
	}
	return w
}

// --- Attribute protocol ---

// Set applies opts in ascending attribute-name order. For each entry the
// value is stored, the previous value retained, and the kind's hook for that
// attribute (if any) is called with both. All values are validated before
// any is applied; on error the widget is unchanged.
//
// Attributes without a typed slot are stored as extras and have no effect.
func (w *Widget) Set(opts Options) error {
	if w.destroyed {
		return fmt.Errorf("canopy: set on %q: %w", w.name, ErrDestroyed)
	}
	keys := slices.Sorted(maps.Keys(opts))
	values := make([]any, len(keys))
	for i, k := range keys {
		v, err := coerce(k, opts[k])
		if err != nil {
			return fmt.Errorf("canopy: set on %q: %w", w.name, err)
		}
		if k == AttrParent {
			if err := w.checkParent(v.(*Widget)); err != nil {
				return err
			}
		}
		values[i] = v
	}
	for i, k := range keys {
		if !isKnownAttr(k) && w.view.debug {
			debugWarnUnknownAttr(w, k)
		}
		old := w.swap(k, values[i])
		if k == AttrParent {
			parentSet(w, values[i], old)
		}
		if hook := w.kind.hook(k); hook != nil {
			hook(w, values[i], old)
		}
	}
	return nil
}

func (w *Widget) checkParent(p *Widget) error {
	if p == nil {
		return nil
	}
	if p.destroyed {
		return fmt.Errorf("canopy: parent %q of %q: %w", p.name, w.name, ErrDestroyed)
	}
	if p.view != w.view {
		return fmt.Errorf("canopy: parent %q of %q: %w", p.name, w.name, ErrForeignView)
	}
	if isAncestor(w, p) {
		return fmt.Errorf("canopy: parent %q of %q: %w", p.name, w.name, ErrCycle)
	}
	return nil
}

// swap stores v in the slot for a and returns the previous value.
func (w *Widget) swap(a Attr, v any) (old any) {
	switch a {
	case AttrName:
		old, w.name = w.name, v.(string)
	case AttrParent:
		old, w.parent = w.parent, v.(*Widget)
	case AttrSize:
		old, w.size = w.size, v.(Vec2)
	case AttrAutoSize:
		old, w.autoSize = w.autoSize, v.(Vec2)
	case AttrBorder:
		old, w.border = w.border, v.(Insets)
	case AttrTranslation:
		old, w.translation = w.translation, v.(Vec2)
	case AttrAnchor:
		old, w.anchor = w.anchor, v.(Vec2)
	case AttrPivot:
		old, w.pivot = w.pivot, v.(Vec2)
	case AttrColor:
		old, w.color = w.color, v.(Color)
	case AttrInteractable:
		old, w.interactable = w.interactable, v.(bool)
	case AttrVisible:
		old, w.visible = w.visible, v.(bool)
	case AttrText:
		old, w.text = w.text, v.(string)
	case AttrFont:
		f, _ := v.(Font)
		old, w.font = w.font, f
	case AttrAlign:
		old, w.align = w.align, v.(TextAlign)
	case AttrTextColor:
		old, w.textColor = w.textColor, v.(Color)
	default:
		if w.extra == nil {
			w.extra = make(map[Attr]any)
		}
		old = w.extra[a]
		w.extra[a] = v
	}
	return old
}

// Attr returns the current value of attribute a and whether it has been set
// or has a typed slot.
func (w *Widget) Attr(a Attr) (any, bool) {
	switch a {
	case AttrName:
		return w.name, true
	case AttrParent:
		return w.parent, true
	case AttrSize:
		return w.size, true
	case AttrAutoSize:
		return w.autoSize, true
	case AttrBorder:
		return w.border, true
	case AttrTranslation:
		return w.translation, true
	case AttrAnchor:
		return w.anchor, true
	case AttrPivot:
		return w.pivot, true
	case AttrColor:
		return w.color, true
	case AttrInteractable:
		return w.interactable, true
	case AttrVisible:
		return w.visible, true
	case AttrText:
		return w.text, true
	case AttrFont:
		return w.font, true
	case AttrAlign:
		return w.align, true
	case AttrTextColor:
		return w.textColor, true
	}
	v, ok := w.extra[a]
	return v, ok
}

// parentSet keeps the parent's child list in step with the parent slot. Set
// runs it for every kind before any parent hook the kind registers.
func parentSet(w *Widget, newValue, oldValue any) {
	oldParent, _ := oldValue.(*Widget)
	newParent, _ := newValue.(*Widget)
	if oldParent == newParent {
		return
	}
	if oldParent != nil {
		oldParent.removeChildByPtr(w)
	}
	if newParent != nil {
		newParent.children = append(newParent.children, w)
		if w.view.debug {
			debugCheckTreeDepth(w)
			debugCheckChildCount(newParent)
		}
	}
}

// --- Typed setters ---

// SetName sets the widget's name.
func (w *Widget) SetName(name string) error { return w.Set(Options{AttrName: name}) }

// SetParent reparents the widget. A nil parent detaches it.
func (w *Widget) SetParent(p *Widget) error { return w.Set(Options{AttrParent: p}) }

// SetSize sets the explicit extent.
func (w *Widget) SetSize(width, height float64) error {
	return w.Set(Options{AttrSize: Vec2{width, height}})
}

// SetAutoSize sets the per-axis fraction of the parent's true size.
func (w *Widget) SetAutoSize(fx, fy float64) error {
	return w.Set(Options{AttrAutoSize: Vec2{fx, fy}})
}

// SetBorder sets the border inset.
func (w *Widget) SetBorder(left, top, right, bottom float64) error {
	return w.Set(Options{AttrBorder: Insets{left, top, right, bottom}})
}

// SetTranslation sets the offset applied after anchor and pivot resolution.
func (w *Widget) SetTranslation(x, y float64) error {
	return w.Set(Options{AttrTranslation: Vec2{x, y}})
}

// SetAnchor sets the fractional reference point in the parent's rectangle.
func (w *Widget) SetAnchor(ax, ay float64) error {
	return w.Set(Options{AttrAnchor: Vec2{ax, ay}})
}

// SetPivot sets the fractional reference point in the widget's own rectangle.
func (w *Widget) SetPivot(px, py float64) error {
	return w.Set(Options{AttrPivot: Vec2{px, py}})
}

// SetColor sets the fill color.
func (w *Widget) SetColor(c Color) error { return w.Set(Options{AttrColor: c}) }

// SetText sets the text content.
func (w *Widget) SetText(s string) error { return w.Set(Options{AttrText: s}) }

// SetVisible shows or hides the widget and its subtree.
func (w *Widget) SetVisible(visible bool) error { return w.Set(Options{AttrVisible: visible}) }

// --- Accessors ---

// Kind returns the widget's kind.
func (w *Widget) Kind() *Kind { return w.kind }

// View returns the view that owns the widget.
func (w *Widget) View() *View { return w.view }

// Name returns the widget's name.
func (w *Widget) Name() string { return w.name }

// Parent returns the widget's parent, or nil for a root.
func (w *Widget) Parent() *Widget { return w.parent }

// Size returns the explicit extent.
func (w *Widget) Size() Vec2 { return w.size }

// AutoSize returns the per-axis parent fraction.
func (w *Widget) AutoSize() Vec2 { return w.autoSize }

// Border returns the border inset.
func (w *Widget) Border() Insets { return w.border }

// Translation returns the post-anchor offset.
func (w *Widget) Translation() Vec2 { return w.translation }

// Anchor returns the anchor point.
func (w *Widget) Anchor() Vec2 { return w.anchor }

// Pivot returns the pivot point.
func (w *Widget) Pivot() Vec2 { return w.pivot }

// Color returns the fill color.
func (w *Widget) Color() Color { return w.color }

// TextColor returns the color used to draw text content.
func (w *Widget) TextColor() Color { return w.textColor }

// Interactable reports whether the widget takes part in hit testing.
func (w *Widget) Interactable() bool { return w.interactable }

// Visible reports whether the widget is drawn.
func (w *Widget) Visible() bool { return w.visible }

// Text returns the text content.
func (w *Widget) Text() string { return w.text }

// TextSize returns the measured size of the text content.
func (w *Widget) TextSize() Vec2 { return w.textSize }

// Hovered reports whether the pointer is over the widget.
func (w *Widget) Hovered() bool { return w.hovered }

// Pressed reports whether a pointer press started on the widget and has not
// been released yet.
func (w *Widget) Pressed() bool { return w.pressed }

// --- Children ---

// AddChild parents child to w. Equivalent to child.SetParent(w).
// Panics if child is nil.
func (w *Widget) AddChild(child *Widget) error {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	return child.SetParent(w)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Later
// siblings draw on top.
func (w *Widget) SetChildIndex(child *Widget, index int) {
	if child.parent != w {
		panic("canopy: child's parent is not this widget")
	}
	nc := len(w.children)
	if index < 0 || index >= nc {
		panic("canopy: child index out of range")
	}
	oldIndex := slices.Index(w.children, child)
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(w.children[oldIndex:], w.children[oldIndex+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:oldIndex])
	}
	w.children[index] = child
}

// FindChild returns the first descendant with the given name, searching
// depth-first in child order, or nil.
func (w *Widget) FindChild(name string) *Widget {
	for _, c := range w.children {
		if c.name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Lifecycle ---

// Destroy destroys every descendant depth-first, then detaches the widget
// from its parent. Calling Destroy again is a no-op.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	for _, child := range slices.Clone(w.children) {
		child.Destroy()
	}
	if w.parent != nil {
		w.parent.removeChildByPtr(w)
		w.parent = nil
	}
	w.destroyed = true
	w.children = nil
	w.view.forget(w)
	if w.OnDestroy != nil {
		w.OnDestroy(w)
	}
	w.OnUpdate = nil
	w.OnPointerDown = nil
	w.OnPointerUp = nil
	w.OnClick = nil
	w.OnPointerEnter = nil
	w.OnPointerLeave = nil
	w.OnDestroy = nil
	w.UserData = nil
}

// IsDestroyed reports whether Destroy has been called.
func (w *Widget) IsDestroyed() bool {
	return w.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without touching
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}
