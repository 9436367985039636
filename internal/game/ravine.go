package game

import (
	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
)

// Ravine is the static scenery along the bottom of the screen: solid ground
// split by a winding chasm. It has no mutable state; it is drawn once per
// screen entry and never simulated.
type Ravine struct {
	Top int // First screen row occupied by the ravine

	w, h int
}

// NewRavine sizes the ravine for the given screen, taking roughly the
// bottom quarter.
func NewRavine(screenW, screenH int) *Ravine {
	h := screenH / 4
	if h < 3 {
		h = 3
	}
	return &Ravine{Top: screenH - h, w: screenW, h: h}
}

// Draw paints the ravine. The chasm meanders deterministically with depth so
// the scenery is identical every frame without storing any state.
func (r *Ravine) Draw(dst *core.Screen) {
	gapW := core.Max(r.w/6, 4)

	for depth := 0; depth < r.h; depth++ {
		y := r.Top + depth
		gapC := r.w/2 + (depth*5)%7 - 3
		gapLo := gapC - gapW/2
		gapHi := gapC + gapW/2

		for x := 0; x < r.w; x++ {
			switch {
			case x >= gapLo && x < gapHi:
				if depth == 0 {
					dst.SetCell(x, y, '░', core.ColorGray)
				} else {
					dst.SetCell(x, y, ' ', core.ColorDefault)
				}
			case depth == 0:
				dst.SetCell(x, y, '▄', core.ColorOrange)
			default:
				dst.SetCell(x, y, '▓', core.ColorOrange)
			}
		}
	}
}
