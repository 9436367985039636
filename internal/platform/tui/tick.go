// Package tui provides the Bubble Tea integration: the frame driver, input
// mapping, rendering, and the SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one logical simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers tick messages at the given rate.
// This is the frame gate: exactly one tick runs per message, and rendering
// happens between messages.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
