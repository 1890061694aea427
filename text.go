package canopy

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font measures and draws text. Layout places text using MeasureString, so
// DrawString must render with the same metrics.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
	// DrawString renders s with its top-left corner at (x, y).
	DrawString(dst *ebiten.Image, s string, x, y float64, clr Color)
}

// --- DebugFont ---

// Glyph metrics of Ebitengine's built-in debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// DebugFont draws with ebitenutil's built-in bitmap font. It needs no assets
// and is used when a text widget has no font set.
type DebugFont struct{}

// MeasureString returns the extent of s in the fixed-width debug font.
func (DebugFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	maxRunes := 0
	for _, l := range lines {
		maxRunes = max(maxRunes, utf8.RuneCountInString(l))
	}
	return float64(maxRunes * debugGlyphW), float64(len(lines) * debugGlyphH)
}

// LineHeight returns the debug font's line height.
func (DebugFont) LineHeight() float64 {
	return debugGlyphH
}

// DrawString prints s with the debug font. The debug font is always white;
// clr is ignored.
func (DebugFont) DrawString(dst *ebiten.Image, s string, x, y float64, _ Color) {
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("canopy: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// DrawString renders s through text/v2 tinted with clr.
func (f *TTFFont) DrawString(dst *ebiten.Image, s string, x, y float64, clr Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
