package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
)

// KeyMapper translates key messages into per-tick input frames. Terminals
// deliver key repeats rather than key-up events, so each press latches its
// button for a short hold window; repeats keep refreshing the window and
// the button reads as held.
type KeyMapper struct {
	holdTicks int
	remaining map[core.Button]int
}

// NewKeyMapper creates a mapper tuned to the tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	hold := tickRate / 6
	if hold < 3 {
		hold = 3
	}
	return &KeyMapper{
		holdTicks: hold,
		remaining: make(map[core.Button]int),
	}
}

// KeyDown latches the button for a key message. Returns true for a quit
// request.
func (km *KeyMapper) KeyDown(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "left", "h":
		km.remaining[core.ButtonLeft] = km.holdTicks
	case "right", "l":
		km.remaining[core.ButtonRight] = km.holdTicks
	case " ", "enter", "z", "a":
		km.remaining[core.ButtonA] = km.holdTicks
	case "x", "b":
		km.remaining[core.ButtonB] = km.holdTicks
	}
	return false
}

// Frame builds the input frame for this tick and ages the hold windows.
func (km *KeyMapper) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for b, n := range km.remaining {
		if n <= 0 {
			delete(km.remaining, b)
			continue
		}
		f.Set(b)
		km.remaining[b] = n - 1
	}
	return f
}
