package canopy

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- TrueSize ---

func TestTrueSizeExplicit(t *testing.T) {
	v := NewView(100, 100)
	w := newPanel(t, v, Options{AttrSize: Vec2{40, 30}})
	assertVec(t, "TrueSize", w.TrueSize(), Vec2{40, 30})
}

func TestTrueSizeBorderInset(t *testing.T) {
	v := NewView(100, 100)
	w := newPanel(t, v, Options{AttrSize: Vec2{40, 30}, AttrBorder: Insets{1, 2, 3, 4}})
	assertVec(t, "TrueSize", w.TrueSize(), Vec2{36, 24})
}

func TestTrueSizeAutoSizeWithBorder(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{100, 100}})
	c := newPanel(t, v, Options{
		AttrParent:   r,
		AttrAutoSize: Vec2{1, 1},
		AttrBorder:   Insets{5, 5, 5, 5},
	})
	assertVec(t, "TrueSize", c.TrueSize(), Vec2{90, 90})
}

func TestTrueSizeAutoSizeSingleAxis(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{200, 80}})
	c := newPanel(t, v, Options{
		AttrParent:   r,
		AttrSize:     Vec2{10, 20},
		AttrAutoSize: Vec2{0.5, 0},
	})
	assertVec(t, "TrueSize", c.TrueSize(), Vec2{100, 20})
}

func TestTrueSizeAutoSizeUsesParentTrueSize(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{100, 100}, AttrBorder: Insets{10, 10, 10, 10}})
	c := newPanel(t, v, Options{AttrParent: r, AttrAutoSize: Vec2{0.5, 0.25}})
	assertVec(t, "TrueSize", c.TrueSize(), Vec2{40, 20})
}

func TestTrueSizeRootIgnoresAutoSize(t *testing.T) {
	v := NewView(100, 100)
	w := newPanel(t, v, Options{AttrSize: Vec2{30, 40}, AttrAutoSize: Vec2{1, 1}})
	assertVec(t, "TrueSize", w.TrueSize(), Vec2{30, 40})
}

func TestTrueSizeFollowsParentResize(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{100, 100}})
	c := newPanel(t, v, Options{AttrParent: r, AttrAutoSize: Vec2{0.5, 0.5}})
	if err := r.SetSize(300, 50); err != nil {
		t.Fatal(err)
	}
	assertVec(t, "TrueSize", c.TrueSize(), Vec2{150, 25})
}

// --- Local / Global ---

func TestLocalAnchorPivotTranslation(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{200, 100}})
	c := newPanel(t, v, Options{
		AttrParent:      r,
		AttrAnchor:      Vec2{0.5, 0},
		AttrPivot:       Vec2{0.5, 0},
		AttrTranslation: Vec2{0, 10},
	})
	assertVec(t, "Local", c.Local(), Vec2{100, 10})
	assertVec(t, "Global", c.Global(), r.Global().Add(Vec2{100, 10}))
}

func TestLocalPivotUsesOwnTrueSize(t *testing.T) {
	v := NewView(100, 100)
	r := newPanel(t, v, Options{AttrSize: Vec2{200, 100}})
	c := newPanel(t, v, Options{
		AttrParent: r,
		AttrSize:   Vec2{50, 20},
		AttrAnchor: Vec2{0.5, 0.5},
		AttrPivot:  Vec2{0.5, 0.5},
	})
	// Centered: 100-25, 50-10.
	assertVec(t, "Local", c.Local(), Vec2{75, 40})
}

func TestLocalBorderOffset(t *testing.T) {
	v := NewView(100, 100)
	w := newPanel(t, v, Options{
		AttrSize:        Vec2{20, 20},
		AttrBorder:      Insets{3, 4, 0, 0},
		AttrTranslation: Vec2{10, 10},
	})
	assertVec(t, "Local", w.Local(), Vec2{13, 14})
}

func TestRootGlobalEqualsLocal(t *testing.T) {
	v := NewView(100, 100)
	w := newPanel(t, v, Options{
		AttrSize:        Vec2{20, 20},
		AttrTranslation: Vec2{7, 9},
		AttrAnchor:      Vec2{1, 1},
		AttrPivot:       Vec2{0.5, 0.5},
	})
	// No parent: anchor resolves against a zero-sized rectangle.
	assertVec(t, "Local", w.Local(), Vec2{-3, -1})
	assertVec(t, "Global", w.Global(), w.Local())
}

func TestGlobalSumsChain(t *testing.T) {
	v := NewView(100, 100)
	a := newPanel(t, v, Options{AttrSize: Vec2{400, 400}, AttrTranslation: Vec2{5, 5}})
	b := newPanel(t, v, Options{AttrParent: a, AttrSize: Vec2{100, 100}, AttrAnchor: Vec2{0.5, 0.5}})
	c := newPanel(t, v, Options{AttrParent: b, AttrTranslation: Vec2{3, 4}})

	assertVec(t, "b.Global", b.Global(), a.Global().Add(b.Local()))
	assertVec(t, "c.Global", c.Global(), b.Global().Add(c.Local()))
	assertVec(t, "c.Global", c.Global(), Vec2{5 + 200 + 3, 5 + 200 + 4})
}

func TestGlobalAfterReparent(t *testing.T) {
	v := NewView(100, 100)
	p1 := newPanel(t, v, Options{AttrTranslation: Vec2{10, 0}})
	p2 := newPanel(t, v, Options{AttrTranslation: Vec2{0, 50}})
	c := newPanel(t, v, Options{AttrParent: p1, AttrTranslation: Vec2{1, 1}})

	assertVec(t, "before", c.Global(), Vec2{11, 1})
	if err := c.SetParent(p2); err != nil {
		t.Fatal(err)
	}
	assertVec(t, "after", c.Global(), Vec2{1, 51})
}

// --- Depth / Bounds ---

func TestDepth(t *testing.T) {
	v := NewView(100, 100)
	a := newPanel(t, v, Options{AttrParent: v.Root()})
	b := newPanel(t, v, Options{AttrParent: a})

	if d := v.Root().Depth(); d != 0 {
		t.Errorf("root depth = %d, want 0", d)
	}
	if d := a.Depth(); d != 1 {
		t.Errorf("a depth = %d, want 1", d)
	}
	if d := b.Depth(); d != 2 {
		t.Errorf("b depth = %d, want 2", d)
	}
}

func TestBoundsAndContains(t *testing.T) {
	v := NewView(200, 200)
	w := newPanel(t, v, Options{
		AttrParent:      v.Root(),
		AttrSize:        Vec2{50, 20},
		AttrTranslation: Vec2{10, 30},
	})
	b := w.Bounds()
	assertNear(t, "X", b.X, 10)
	assertNear(t, "Y", b.Y, 30)
	assertNear(t, "Width", b.Width, 50)
	assertNear(t, "Height", b.Height, 20)

	if !w.Contains(10, 30) || !w.Contains(60, 50) {
		t.Error("edges should be inside")
	}
	if w.Contains(9, 30) || w.Contains(61, 40) {
		t.Error("points outside should not be contained")
	}

	lx, ly := w.GlobalToLocal(15, 35)
	assertNear(t, "lx", lx, 5)
	assertNear(t, "ly", ly, 5)
}
