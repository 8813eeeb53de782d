// Package canvas registers the filled-background snake icon used by the
// browser extension: light green snake on a green tile, with a one pixel
// gutter between cells.
package canvas

import (
	"github.com/vovakirdan/snake-icons/internal/core"
	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/registry"
)

func init() {
	registry.Register("canvas", New)
}

// New returns the canvas style.
func New() icon.Style {
	bg := core.MustHex("#4CAF50")
	return icon.Style{
		ID:         "canvas",
		Title:      "Canvas (filled tile)",
		Background: &bg,
		SnakeColor: core.MustHex("#81C784"),
		FoodColor:  core.MustHex("#F44336"),
		Segments:   icon.DefaultSegments(),
		FoodCell:   icon.DefaultFood,
		Inset:      1,
	}
}
