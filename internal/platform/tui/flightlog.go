package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/storage"
)

const maxFlights = 100

// FlightLogKeyMap defines key bindings for the flight log view.
type FlightLogKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns bindings for the short help line.
func (k FlightLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k FlightLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultFlightLogKeyMap returns the default bindings.
func DefaultFlightLogKeyMap() FlightLogKeyMap {
	return FlightLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FlightLogModel is the Bubble Tea model for browsing recorded flights.
type FlightLogModel struct {
	table    table.Model
	help     help.Model
	keys     FlightLogKeyMap
	stats    storage.Stats
	width    int
	height   int
	quitting bool
}

// NewFlightLogModel loads flights and stats and builds the view.
func NewFlightLogModel(store *storage.Store, width, height int) (FlightLogModel, error) {
	flights, err := store.RecentFlights(maxFlights)
	if err != nil {
		return FlightLogModel{}, err
	}
	stats, err := store.TotalStats()
	if err != nil {
		return FlightLogModel{}, err
	}

	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Passes", Width: 8},
		{Title: "Time", Width: 10},
	}

	rows := make([]table.Row, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, table.Row{
			f.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", f.Passes),
			formatTicks(f.Ticks),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Max(core.Min(height-6, len(rows)+1), 1)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderBottom(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("15")).Bold(true)
	t.SetStyles(st)

	return FlightLogModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultFlightLogKeyMap(),
		stats:  stats,
		width:  width,
		height: height,
	}, nil
}

// formatTicks renders a tick count as a duration at the nominal 60/s rate.
func formatTicks(ticks int) string {
	return (time.Duration(ticks) * time.Second / 60).Round(time.Second).String()
}

// Init implements tea.Model.
func (m FlightLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flight log view.
func (m FlightLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the flight log.
func (m FlightLogModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Flight Log")
	summary := fmt.Sprintf("%d flights · best %d passes · %s in the air",
		m.stats.Flights, m.stats.BestPasses, formatTicks(int(m.stats.TotalTicks)))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		"",
		m.table.View(),
		"",
		m.help.View(m.keys),
	)
}

// RunFlightLog shows the flight log viewer.
func RunFlightLog(store *storage.Store, width, height int) error {
	model, err := NewFlightLogModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
