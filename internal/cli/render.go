package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/game"
	"trivia/internal/leaderboard"
)

// renderSummary renders the one-line session recap.
func renderSummary(result game.Result, color bool) string {
	line := fmt.Sprintf("Played %d round(s): %d correct, %d wrong, %d skipped",
		result.Scored, result.Correct, result.Incorrect, result.Skipped)
	return stylize(line, color, lipgloss.Color("242"))
}

// renderStandings renders the leaderboard as a table, or as plain lines
// without colour.
func renderStandings(players []leaderboard.Player, color bool) string {
	if !color {
		lines := make([]string, 0, len(players)+1)
		lines = append(lines, "Leaderboard:")
		for i, player := range players {
			lines = append(lines, fmt.Sprintf("  %d. %s %d", i+1, player.Name, player.Score))
		}
		return strings.Join(lines, "\n")
	}

	nameWidth := len("Player")
	rows := make([]table.Row, 0, len(players))
	for i, player := range players {
		nameWidth = max(nameWidth, lipgloss.Width(player.Name))
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			player.Name,
			strconv.FormatInt(int64(player.Score), 10),
		})
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Player", Width: nameWidth},
			{Title: "Score", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
		table.WithWidth(nameWidth+17), // columns plus one cell of padding each side
	)
	t.SetStyles(tableStyles())
	title := stylize("Leaderboard", color, lipgloss.Color("33"))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.View())
}

// tableStyles returns table styles without a highlighted cursor row.
func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// stylize applies optional color styling.
func stylize(text string, color bool, fg lipgloss.Color) string {
	if !color {
		return text
	}
	return lipgloss.NewStyle().Foreground(fg).Render(text)
}
