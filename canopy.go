package canopy

import "image/color"

// Vec2 is a 2D vector used for sizes, offsets, and fractional anchor points.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the elementwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Insets is a border inset in left, top, right, bottom order.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Color is an RGB color with an alpha channel, components in [0, 1].
// Layout code only carries it; it is consumed at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default widget color.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The origin is the top-left, with Y
// increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Attr names a widget attribute. Attribute names are plain strings so that
// declarative layouts and forward-compatible extra attributes share one path.
type Attr string

const (
	AttrAnchor       Attr = "anchor"       // fractional point in the parent's rectangle
	AttrAutoSize     Attr = "autoSize"     // per-axis fraction of the parent's true size
	AttrBorder       Attr = "border"       // left, top, right, bottom inset
	AttrColor        Attr = "color"        // fill color
	AttrName         Attr = "name"         // identifier
	AttrParent       Attr = "parent"       // owning widget or nil
	AttrPivot        Attr = "pivot"        // fractional point in the widget's own rectangle
	AttrSize         Attr = "size"         // explicit extent
	AttrTranslation  Attr = "translation"  // offset applied after anchor and pivot
	AttrText         Attr = "text"         // text content (text and button kinds)
	AttrFont         Attr = "font"         // Font used for text content
	AttrAlign        Attr = "align"        // TextAlign for text content
	AttrTextColor    Attr = "textColor"    // text fill color
	AttrInteractable Attr = "interactable" // participates in hit testing
	AttrVisible      Attr = "visible"      // drawn and hit-tested when true
)

// TextAlign controls horizontal placement of text within a widget.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when a pointer button is pressed
	EventPointerUp                     // fires when a pointer button is released
	EventClick                         // fires on press then release over the same widget
	EventPointerEnter                  // fires when the pointer enters a widget's bounds
	EventPointerLeave                  // fires when the pointer leaves a widget's bounds
)
