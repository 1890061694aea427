package canopy

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

var (
	// ErrAttrType is returned when a known attribute receives a value of the
	// wrong shape.
	ErrAttrType = errors.New("canopy: attribute value has wrong type")

	// ErrCycle is returned when a parent assignment would make a widget its
	// own ancestor.
	ErrCycle = errors.New("canopy: parent assignment would create a cycle")

	// ErrDestroyed is returned when a destroyed widget is mutated or used as a
	// parent.
	ErrDestroyed = errors.New("canopy: widget is destroyed")

	// ErrForeignView is returned when a widget is parented to a widget owned
	// by a different View.
	ErrForeignView = errors.New("canopy: parent belongs to another view")

	// ErrUnknownKind is returned by LoadLayout for an unregistered kind name.
	ErrUnknownKind = errors.New("canopy: unknown widget kind")
)

// Options maps attribute names to values. It is the argument to New and
// Widget.Set.
type Options map[Attr]any

// Hook runs after an attribute has been stored. newValue is the coerced value
// now held by the widget; oldValue is what it replaced.
type Hook func(w *Widget, newValue, oldValue any)

// Kind is a widget kind: a name, default options, and a table of attribute
// hooks. Kinds are immutable once built; use Extend to derive a new one.
type Kind struct {
	name     string
	defaults Options
	hooks    map[Attr]Hook
}

// NewKind builds a kind from scratch. Most callers want KindPanel.Extend.
func NewKind(name string, defaults Options, hooks map[Attr]Hook) *Kind {
	return &Kind{
		name:     name,
		defaults: maps.Clone(defaults),
		hooks:    maps.Clone(hooks),
	}
}

// Extend returns a new kind that inherits k's defaults and hooks, with the
// given ones layered on top. A hook registered here replaces the inherited
// hook for the same attribute. A parent hook never replaces the built-in
// child-list maintenance, which runs first.
func (k *Kind) Extend(name string, defaults Options, hooks map[Attr]Hook) *Kind {
	d := maps.Clone(k.defaults)
	if d == nil {
		d = make(Options, len(defaults))
	}
	maps.Copy(d, defaults)
	h := maps.Clone(k.hooks)
	if h == nil {
		h = make(map[Attr]Hook, len(hooks))
	}
	maps.Copy(h, hooks)
	return &Kind{name: name, defaults: d, hooks: h}
}

// Name returns the kind's name.
func (k *Kind) Name() string {
	return k.name
}

// HasHook reports whether the kind reacts to attribute a. Every kind reacts
// to the parent attribute.
func (k *Kind) HasHook(a Attr) bool {
	if a == AttrParent {
		return true
	}
	_, ok := k.hooks[a]
	return ok
}

func (k *Kind) hook(a Attr) Hook {
	return k.hooks[a]
}

// isKnownAttr reports whether a has a typed slot on Widget.
func isKnownAttr(a Attr) bool {
	switch a {
	case AttrAnchor, AttrAutoSize, AttrBorder, AttrColor, AttrName, AttrParent,
		AttrPivot, AttrSize, AttrTranslation, AttrText, AttrFont, AttrAlign,
		AttrTextColor, AttrInteractable, AttrVisible:
		return true
	}
	return false
}

// coerce normalizes v into the type held by the slot for a. Unknown
// attributes are passed through untouched.
func coerce(a Attr, v any) (any, error) {
	switch a {
	case AttrAnchor, AttrAutoSize, AttrPivot, AttrSize, AttrTranslation:
		return coerceVec2(a, v)
	case AttrBorder:
		return coerceInsets(v)
	case AttrColor, AttrTextColor:
		return coerceColor(a, v)
	case AttrName, AttrText:
		s, ok := v.(string)
		if !ok {
			return nil, attrTypeError(a, v, "string")
		}
		return s, nil
	case AttrParent:
		switch p := v.(type) {
		case nil:
			return (*Widget)(nil), nil
		case *Widget:
			return p, nil
		}
		return nil, attrTypeError(a, v, "*Widget")
	case AttrFont:
		switch f := v.(type) {
		case nil:
			return Font(nil), nil
		case Font:
			return f, nil
		}
		return nil, attrTypeError(a, v, "Font")
	case AttrAlign:
		return coerceAlign(v)
	case AttrInteractable, AttrVisible:
		b, ok := v.(bool)
		if !ok {
			return nil, attrTypeError(a, v, "bool")
		}
		return b, nil
	}
	return v, nil
}

func attrTypeError(a Attr, v any, want string) error {
	return fmt.Errorf("%w: %s wants %s, got %T", ErrAttrType, a, want, v)
}

// floatList accepts a []float64, or a []any of numbers as produced by YAML
// and JSON decoders.
func floatList(v any) ([]float64, bool) {
	switch t := v.(type) {
	case []float64:
		return t, true
	case []any:
		out := make([]float64, len(t))
		for i, e := range t {
			switch n := e.(type) {
			case float64:
				out[i] = n
			case float32:
				out[i] = float64(n)
			case int:
				out[i] = float64(n)
			case int64:
				out[i] = float64(n)
			case uint64:
				out[i] = float64(n)
			default:
				return nil, false
			}
		}
		return out, true
	}
	return nil, false
}

func coerceVec2(a Attr, v any) (Vec2, error) {
	switch t := v.(type) {
	case Vec2:
		return t, nil
	case [2]float64:
		return Vec2{t[0], t[1]}, nil
	}
	if t, ok := floatList(v); ok && len(t) == 2 {
		return Vec2{t[0], t[1]}, nil
	}
	return Vec2{}, attrTypeError(a, v, "Vec2")
}

func coerceInsets(v any) (Insets, error) {
	switch t := v.(type) {
	case Insets:
		return t, nil
	case [4]float64:
		return Insets{t[0], t[1], t[2], t[3]}, nil
	}
	if t, ok := floatList(v); ok && len(t) == 4 {
		return Insets{t[0], t[1], t[2], t[3]}, nil
	}
	return Insets{}, attrTypeError(AttrBorder, v, "Insets")
}

// coerceColor accepts an RGB triple (opaque) or an RGBA quad.
func coerceColor(a Attr, v any) (Color, error) {
	switch t := v.(type) {
	case Color:
		return t, nil
	case [3]float64:
		return Color{t[0], t[1], t[2], 1}, nil
	case [4]float64:
		return Color{t[0], t[1], t[2], t[3]}, nil
	}
	if t, ok := floatList(v); ok {
		switch len(t) {
		case 3:
			return Color{t[0], t[1], t[2], 1}, nil
		case 4:
			return Color{t[0], t[1], t[2], t[3]}, nil
		}
	}
	return Color{}, attrTypeError(a, v, "Color")
}

func coerceAlign(v any) (TextAlign, error) {
	switch t := v.(type) {
	case TextAlign:
		return t, nil
	case string:
		switch strings.ToLower(t) {
		case "", "left":
			return TextAlignLeft, nil
		case "center":
			return TextAlignCenter, nil
		case "right":
			return TextAlignRight, nil
		}
	}
	return TextAlignLeft, attrTypeError(AttrAlign, v, "TextAlign")
}
