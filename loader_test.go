package canopy

import (
	"errors"
	"testing"
)

const dialogLayout = `
widgets:
  - name: dialog
    anchor: [0.5, 0.5]
    pivot: [0.5, 0.5]
    size: [300, 200]
    border: [10, 10, 10, 10]
    color: [0.1, 0.1, 0.15]
    children:
      - name: title
        kind: text
        text: Settings
        autoSize: [1, 0]
        size: [0, 24]
      - name: ok
        kind: button
        text: OK
        size: [80, 30]
        anchor: [1, 1]
        pivot: [1, 1]
        attrs:
          tooltip: Save changes
      - kind: panel
        size: [1, 1]
`

func TestLoadLayoutBuildsTree(t *testing.T) {
	v := NewView(800, 600)
	index, err := LoadLayout(v, []byte(dialogLayout), v.Root())
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(index) != 3 {
		t.Fatalf("index size = %d, want 3", len(index))
	}

	dialog := index["dialog"]
	if dialog.Parent() != v.Root() {
		t.Error("dialog should be under root")
	}
	if dialog.NumChildren() != 3 {
		t.Errorf("dialog children = %d, want 3", dialog.NumChildren())
	}
	assertVec(t, "dialog TrueSize", dialog.TrueSize(), Vec2{280, 180})
	// 10 + 400 - 140, 10 + 300 - 90
	assertVec(t, "dialog Global", dialog.Global(), Vec2{270, 220})
	if dialog.Color() != (Color{0.1, 0.1, 0.15, 1}) {
		t.Errorf("dialog color = %v", dialog.Color())
	}

	title := index["title"]
	if title.Kind() != KindText || title.Text() != "Settings" {
		t.Errorf("title = %s %q", title.Kind().Name(), title.Text())
	}
	assertVec(t, "title TrueSize", title.TrueSize(), Vec2{280, 24})

	ok := index["ok"]
	if !ok.Interactable() {
		t.Error("button from layout should keep the interactable default")
	}
	assertVec(t, "ok Local", ok.Local(), Vec2{200, 150})
	if tip, _ := ok.Attr("tooltip"); tip != "Save changes" {
		t.Errorf("tooltip = %v", tip)
	}
}

func TestLoadLayoutUnknownKind(t *testing.T) {
	v := NewView(100, 100)
	_, err := LoadLayout(v, []byte("widgets:\n  - name: x\n    kind: slider\n"), v.Root())
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestLoadLayoutRollsBackOnError(t *testing.T) {
	v := NewView(100, 100)
	doc := `
widgets:
  - name: a
    children:
      - name: b
  - name: c
    size: [1, 2, 3]
`
	before := v.Widgets()
	_, err := LoadLayout(v, []byte(doc), v.Root())
	if !errors.Is(err, ErrAttrType) {
		t.Fatalf("err = %v, want ErrAttrType", err)
	}
	if v.Root().NumChildren() != 0 {
		t.Errorf("root children = %d, want 0 after rollback", v.Root().NumChildren())
	}
	if v.Widgets() != before {
		t.Errorf("Widgets = %d, want %d", v.Widgets(), before)
	}
}

func TestLoadLayoutDuplicateName(t *testing.T) {
	v := NewView(100, 100)
	_, err := LoadLayout(v, []byte("widgets:\n  - name: a\n  - name: a\n"), nil)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
}

func TestLoadLayoutInvalidYAML(t *testing.T) {
	v := NewView(100, 100)
	if _, err := LoadLayout(v, []byte("widgets: [oops"), nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadLayoutTypedAttrsBlock(t *testing.T) {
	v := NewView(200, 100)
	doc := `
widgets:
  - name: box
    size: [20, 10]
    attrs:
      anchor: [0.5, 1]
      border: [1, 2, 3, 4]
      textColor: [1, 0, 0]
`
	index, err := LoadLayout(v, []byte(doc), v.Root())
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	box := index["box"]
	assertVec(t, "Anchor", box.Anchor(), Vec2{0.5, 1})
	if box.Border() != (Insets{1, 2, 3, 4}) {
		t.Errorf("Border = %v", box.Border())
	}
	if box.TextColor() != (Color{1, 0, 0, 1}) {
		t.Errorf("TextColor = %v", box.TextColor())
	}
}
