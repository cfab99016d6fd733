package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Messages shown to the player.
const (
	msgTooShort    = "Not enough letters"
	msgNotInList   = "Not in word list"
	msgRoundClosed = "Round over. Press enter for a new game"
)

// winMessages is indexed by the number of guesses used.
var winMessages = [wordle.MaxGuesses]string{
	"Genius", "Magnificent", "Impressive", "Splendid", "Great", "Phew",
}

// Model is the Bubble Tea model for one player's game.
// It owns the Game exclusively and calls it synchronously from Update.
type Model struct {
	game   *wordle.Game
	store  *storage.Store // nil disables statistics
	player string
	logger *log.Logger // nil disables logging

	keys KeyMap
	help help.Model

	input     string
	flash     string
	flashID   int
	recorded  bool // Whether the finished round has been stored
	showStats bool
	stats     StatsModel

	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *wordle.Game, store *storage.Store, player string, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		store:  store,
		player: player,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showStats {
			m.stats = m.stats.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case clearFlashMsg:
		if msg.ID == m.flashID {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.showStats {
			return m.handleStatsKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stats):
		m.showStats = true
		m.stats = NewStatsModel(m.store, m.player, m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		return m.newGame(), nil

	case key.Matches(msg, m.keys.Submit):
		if m.game.IsGameOver() {
			return m.newGame(), nil
		}
		return m.submit()

	case key.Matches(msg, m.keys.Delete):
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case key.Matches(msg, m.keys.Type):
		if !m.game.IsGameOver() && len(m.input) < wordle.WordLength {
			m.input += strings.ToLower(msg.String())
		}
		return m, nil
	}

	return m, nil
}

// handleStatsKey processes keyboard input on the statistics screen.
func (m Model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Stats), key.Matches(msg, m.stats.keys.Back):
		m.showStats = false
		return m, nil
	case key.Matches(msg, m.stats.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)
	return m, cmd
}

// submit sends the typed word to the game.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if len(m.input) < wordle.WordLength {
		return m.setFlash(msgTooShort)
	}

	_, outcome := m.game.Submit(m.input)
	switch outcome {
	case wordle.OutcomeInvalidWord:
		// Keep the letters so the player can edit them.
		return m.setFlash(msgNotInList)
	case wordle.OutcomeGameOver:
		return m.setFlash(msgRoundClosed)
	}

	m.input = ""
	if m.game.IsGameOver() {
		m.recordRound()
	}
	return m, nil
}

// recordRound stores the finished round once.
func (m *Model) recordRound() {
	if m.recorded {
		return
	}
	m.recorded = true

	if m.logger != nil {
		m.logger.Info("round finished",
			"player", m.player,
			"secret", m.game.Secret(),
			"won", m.game.HasWon(),
			"guesses", m.game.GuessCount(),
		)
	}

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordRound(m.player, m.game.Secret(), m.game.HasWon(), m.game.GuessCount()); err != nil && m.logger != nil {
		m.logger.Warn("could not record round", "player", m.player, "error", err)
	}
}

// newGame starts a new round.
func (m Model) newGame() Model {
	// An abandoned round in progress still counts once a guess was made.
	if !m.game.IsGameOver() && m.game.GuessCount() > 0 {
		m.recordAbandoned()
	}
	m.game.Reset()
	m.input = ""
	m.flash = ""
	m.recorded = false
	return m
}

// recordAbandoned stores an unfinished round as a loss.
func (m *Model) recordAbandoned() {
	if m.store == nil {
		return
	}
	if _, err := m.store.RecordRound(m.player, m.game.Secret(), false, m.game.GuessCount()); err != nil && m.logger != nil {
		m.logger.Warn("could not record round", "player", m.player, "error", err)
	}
}

// setFlash shows a transient message.
func (m Model) setFlash(text string) (tea.Model, tea.Cmd) {
	m.flashID++
	m.flash = text
	return m, clearFlashCmd(m.flashID)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showStats {
		return m.stats.View()
	}

	snap := m.game.Snapshot()
	over := snap.State != wordle.StatePlaying

	parts := []string{
		titleStyle.Render("W O R D L E"),
		renderBoard(snap.Results, m.input, over),
		"",
	}

	switch {
	case m.flash != "":
		parts = append(parts, flashStyle.Render(m.flash))
	case over:
		parts = append(parts, renderGameOver(snap))
	default:
		parts = append(parts, fmt.Sprintf("Guess %d of %d", snap.Guesses+1, wordle.MaxGuesses))
	}

	parts = append(parts, "", renderKeyboard(wordle.Hints(snap.Results)), "", helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

// renderGameOver shows the result, the secret and the share text.
func renderGameOver(snap wordle.Snapshot) string {
	var headline string
	if snap.State == wordle.StateWon {
		headline = winMessages[snap.Guesses-1]
	} else {
		headline = "The word was " + strings.ToUpper(snap.Secret)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(headline),
		"",
		wordle.ShareText(snap.Results, snap.Won),
		"",
		"enter: new game  tab: stats",
	)
	return panelStyle.Render(body)
}

// Input returns the letters typed for the current row.
func (m Model) Input() string {
	return m.input
}

// Flash returns the transient message, if any.
func (m Model) Flash() string {
	return m.flash
}

// Game returns the game driven by this model.
func (m Model) Game() *wordle.Game {
	return m.game
}

// WithSize returns a copy of the model pre-sized to the given terminal.
func (m Model) WithSize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// Run starts the Bubble Tea program for a local game.
// width and height seed the layout until the first resize message arrives.
func Run(game *wordle.Game, store *storage.Store, player string, width, height int) error {
	model := NewModel(game, store, player, nil).WithSize(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
