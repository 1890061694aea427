package canopy

import (
	"fmt"
	"os"
	"time"
)

// debugLogUpdate prints update timing and the live widget count to stderr.
func debugLogUpdate(v *View, elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[canopy] update: %v | widgets: %d\n", elapsed, v.live)
}

// debugLogDraw prints draw timing and counts to stderr.
func debugLogDraw(v *View, visible, draws int, elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[canopy] draw: %v | visible: %d | draw calls: %d\n",
		elapsed, visible, draws)
}

// debugWarnUnknownAttr reports an attribute with no slot. Such attributes
// are stored but have no effect, which is usually a typo.
func debugWarnUnknownAttr(w *Widget, a Attr) {
	_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: unknown attribute %q on %s %q\n",
		a, w.kind.name, w.name)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	if d := w.Depth(); d > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: tree depth %d exceeds %d (widget %q)\n",
			d, debugMaxTreeDepth, w.name)
	}
}

// debugCheckChildCount warns on stderr if a widget has too many children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[canopy] warning: widget %q has %d children (threshold %d)\n",
			w.name, len(w.children), debugMaxChildCount)
	}
}

// DumpTree returns an indented outline of w's subtree with resolved bounds.
// Useful when a layout does not land where expected.
func DumpTree(w *Widget) string {
	var out []byte
	var walk func(n *Widget, depth int)
	walk = func(n *Widget, depth int) {
		b := n.Bounds()
		for range depth {
			out = append(out, "  "...)
		}
		out = fmt.Appendf(out, "%s %q [%g,%g %gx%g]\n", n.kind.name, n.name, b.X, b.Y, b.Width, b.Height)
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(w, 0)
	return string(out)
}
