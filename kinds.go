package canopy

// Built-in widget kinds.
var (
	// KindPanel is the base kind. It has no hooks of its own; the parent
	// link is maintained by Set for every kind.
	KindPanel = NewKind("panel", nil, nil)

	// KindText adds text content. Setting text or font re-measures the
	// content; the measurement is available from TextSize.
	KindText = KindPanel.Extend("text", nil, map[Attr]Hook{
		AttrText: textSet,
		AttrFont: textSet,
	})

	// KindButton is a text widget that is interactable and center-aligned
	// by default.
	KindButton = KindText.Extend("button", Options{
		AttrInteractable: true,
		AttrAlign:        TextAlignCenter,
	}, nil)
)

// kinds is the LoadLayout registry. No locking: register kinds during setup.
var kinds = map[string]*Kind{
	KindPanel.name:  KindPanel,
	KindText.name:   KindText,
	KindButton.name: KindButton,
}

// RegisterKind makes k available to LoadLayout under its name. Registering a
// name twice replaces the earlier kind.
func RegisterKind(k *Kind) {
	kinds[k.name] = k
}

// LookupKind returns the registered kind with the given name.
func LookupKind(name string) (*Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

func textSet(w *Widget, _, _ any) {
	w.measureText()
}

func (w *Widget) measureText() {
	if w.text == "" {
		w.textSize = Vec2{}
		return
	}
	f := w.font
	if f == nil {
		f = DebugFont{}
	}
	tw, th := f.MeasureString(w.text)
	w.textSize = Vec2{tw, th}
}
