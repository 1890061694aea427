package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
}

// DefaultRunConfig returns a 640x480 window titled "canopy".
func DefaultRunConfig() RunConfig {
	return RunConfig{Title: "canopy", Width: 640, Height: 480}
}

// Run opens a window and drives v as the ebiten game until the window is
// closed or the update function returns an error.
func Run(v *View, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultRunConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	v.SetDebugMode(cfg.Debug)
	v.Layout(cfg.Width, cfg.Height)
	if cfg.ShowFPS {
		if _, err := NewFPSWidget(v, v.Root()); err != nil {
			return fmt.Errorf("canopy: fps widget: %w", err)
		}
	}
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("canopy: run: %w", err)
	}
	return nil
}
