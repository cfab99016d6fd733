package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Statistics layout constants
const (
	maxRounds     = 50 // Max rounds to load into the table
	barMaxWidth   = 30 // Width of the longest distribution bar
	minTableWidth = 40
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel renders the player's statistics for this process lifetime.
type StatsModel struct {
	store  *storage.Store
	player string
	stats  storage.Stats
	rounds []storage.Round
	err    error

	table table.Model
	help  help.Model
	keys  StatsKeyMap

	width  int
	height int
}

// NewStatsModel creates a statistics view and loads the player's rounds.
func NewStatsModel(store *storage.Store, player string, width, height int) StatsModel {
	m := StatsModel{
		store:  store,
		player: player,
		stats:  storage.Stats{Player: player},
		help:   help.New(),
		keys:   DefaultStatsKeyMap(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load fetches stats and recent rounds from the store.
func (m *StatsModel) load() {
	if m.store == nil {
		return
	}

	stats, err := m.store.Stats(m.player)
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats

	rounds, err := m.store.RecentRounds(m.player, maxRounds)
	if err != nil {
		m.err = err
		return
	}
	m.rounds = rounds
}

// createTable creates the recent rounds table.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 14},
	}

	height := m.height - 20 // Leave room for summary, bars and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded rounds.
func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		result := "X/6"
		if r.Won {
			result = fmt.Sprintf("%d/%d", r.Guesses, wordle.MaxGuesses)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.rounds)-i),
			strings.ToUpper(r.Secret),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Resize rebuilds the layout for a new terminal size.
func (m StatsModel) Resize(width, height int) StatsModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// Update handles scrolling.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down) {
			m.table, cmd = m.table.Update(msg)
		}
	}
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	parts := []string{titleStyle.Render("STATISTICS")}

	if m.err != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	parts = append(parts,
		m.renderSummary(),
		"",
		"GUESS DISTRIBUTION",
		m.renderDistribution(),
		"",
		m.renderTableContent(),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

// renderSummary draws played, win % and streaks side by side.
func (m StatsModel) renderSummary() string {
	cell := lipgloss.NewStyle().Width(10).Align(lipgloss.Center)
	number := cell.Bold(true)

	values := []int{m.stats.Played, m.stats.WinPercent(), m.stats.CurrentStreak, m.stats.MaxStreak}
	labels := []string{"Played", "Win %", "Streak", "Max"}

	cols := make([]string, len(values))
	for i := range values {
		cols[i] = lipgloss.JoinVertical(lipgloss.Center,
			number.Render(fmt.Sprintf("%d", values[i])),
			cell.Render(labels[i]),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderDistribution draws one bar per guess count, scaled to the largest.
func (m StatsModel) renderDistribution() string {
	most := 0
	for _, n := range m.stats.Distribution {
		if n > most {
			most = n
		}
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("239"))
	best := bar.Background(lipgloss.Color("28"))

	lines := make([]string, len(m.stats.Distribution))
	for i, n := range m.stats.Distribution {
		width := 1
		if most > 0 {
			width = 1 + n*(barMaxWidth-1)/most
		}
		label := fmt.Sprintf("%d", n)
		style := bar
		if n > 0 && n == most {
			style = best
		}
		padded := strings.Repeat(" ", max(0, width-len(label))) + label
		lines[i] = fmt.Sprintf("%d %s", i+1, style.Render(padded))
	}

	return lipgloss.NewStyle().Width(barMaxWidth + 4).Render(strings.Join(lines, "\n"))
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Width(minTableWidth).
			Align(lipgloss.Center)
		return tableStyle.Render(emptyStyle.Render("No rounds finished yet.\nStatistics reset when the program exits."))
	}

	return tableStyle.Render(m.table.View())
}

// Played returns the number of rounds loaded into the view.
func (m StatsModel) Played() int {
	return m.stats.Played
}
