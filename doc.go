// Package canopy is a retained-mode UI layout tree for [Ebitengine].
//
// A [Widget] is one rectangle in a hierarchy. Its on-screen rectangle is
// resolved on demand from the parent's rectangle and its own layout
// attributes: size, autoSize, border, anchor, pivot, and translation.
// Widgets are created inside a [View], which owns the root, hands out IDs,
// processes input, and draws the tree.
//
// # Quick start
//
//	view := canopy.NewView(640, 480)
//	panel := canopy.MustNew(view, canopy.KindPanel, canopy.Options{
//		canopy.AttrParent: view.Root(),
//		canopy.AttrSize:   canopy.Vec2{X: 320, Y: 200},
//		canopy.AttrAnchor: canopy.Vec2{X: 0.5, Y: 0.5},
//		canopy.AttrPivot:  canopy.Vec2{X: 0.5, Y: 0.5},
//		canopy.AttrColor:  [3]float64{0.1, 0.1, 0.15},
//	})
//	canopy.Run(view, canopy.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// View implements [ebiten.Game], so it can also be passed to
// [ebiten.RunGame] directly or wrapped by a game's own loop.
//
// # Attributes
//
// All widget attributes are written through [Widget.Set], which takes an
// [Options] map. Entries apply in ascending name order; each write stores
// the value and then calls the hook the widget's [Kind] registers for that
// attribute. The parent hook keeps parent and children consistent, so
// setting the parent attribute is how widgets are attached, moved, and
// detached. New kinds add behavior by extending a kind's hook table with
// [Kind.Extend], not by branching in Set.
//
// # Layout
//
// For a widget W with parent P:
//
//	TrueSize = (autoSize != 0 ? P.TrueSize*autoSize : size) - border
//	Local    = [border.Left, border.Top] + translation + P.TrueSize*anchor - TrueSize*pivot
//	Global   = P.Global + Local
//
// Nothing is cached: every query walks the current parent chain.
//
// # Lifecycle
//
// [Widget.Destroy] destroys all descendants depth-first, then detaches the
// widget from its parent. It is idempotent.
//
// Layout documents can be loaded from YAML with [LoadLayout]; tweens over
// widget attributes are provided by [TweenGroup] (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package canopy
