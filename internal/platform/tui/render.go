package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// keyboardRows is the on-screen keyboard layout.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

var (
	tileBase = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginRight(1)

	// verdictStyles maps wordle.Verdict to tile backgrounds.
	verdictStyles = map[wordle.Verdict]lipgloss.Style{
		wordle.Correct: tileBase.Background(lipgloss.Color("28")),
		wordle.Present: tileBase.Background(lipgloss.Color("178")),
		wordle.Absent:  tileBase.Background(lipgloss.Color("239")),
	}

	typedStyle = tileBase.Background(lipgloss.Color("236"))
	emptyStyle = tileBase.Foreground(lipgloss.Color("240")).Background(lipgloss.Color("234"))

	keyBase = lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("244"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderTile draws one letter tile; empty letters render as a dot.
func renderTile(letter byte, style lipgloss.Style) string {
	if letter == 0 {
		return style.Render("·")
	}
	return style.Render(strings.ToUpper(string(letter)))
}

// renderBoard draws all rows: scored guesses, the row being typed, then empty rows.
func renderBoard(results []wordle.GuessResult, input string, gameOver bool) string {
	rows := make([]string, 0, wordle.MaxGuesses)

	for _, r := range results {
		letters, colors := r.Letters(), r.Colors()
		tiles := make([]string, wordle.WordLength)
		for i := range tiles {
			tiles[i] = renderTile(letters[i], verdictStyles[colors[i]])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	if !gameOver && len(rows) < wordle.MaxGuesses {
		tiles := make([]string, wordle.WordLength)
		for i := range tiles {
			if i < len(input) {
				tiles[i] = renderTile(input[i], typedStyle)
			} else {
				tiles[i] = renderTile(0, emptyStyle)
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	for len(rows) < wordle.MaxGuesses {
		tiles := make([]string, wordle.WordLength)
		for i := range tiles {
			tiles[i] = renderTile(0, emptyStyle)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return strings.Join(rows, "\n\n")
}

// renderKeyboard draws the letter keys coloured by the best verdict seen so far.
func renderKeyboard(hints map[byte]wordle.Verdict) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			style := keyBase
			if v, ok := hints[row[j]]; ok {
				style = style.Background(verdictStyles[v].GetBackground())
			}
			keys[j] = style.Render(strings.ToUpper(string(row[j])))
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
