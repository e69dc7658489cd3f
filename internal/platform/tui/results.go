package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	resultsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)

	resultsTableStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	resultsSummaryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// RenderResults formats simulated rounds as a table followed by a summary
// line. Rounds still in progress are listed as "running".
func RenderResults(title string, rounds []core.GameState) string {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 9},
		{Title: "Outcome", Width: 9},
	}

	rows := make([]table.Row, len(rounds))
	best, total := 0, 0
	for i, r := range rounds {
		outcome := "crashed"
		if !r.GameOver {
			outcome = "running"
		}
		rows[i] = table.Row{
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			outcome,
		}
		best = max(best, r.Score)
		total += r.Score
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	mean := 0.0
	if len(rounds) > 0 {
		mean = float64(total) / float64(len(rounds))
	}
	summary := fmt.Sprintf("%d rounds, best %d, mean %.2f", len(rounds), best, mean)

	return lipgloss.JoinVertical(lipgloss.Left,
		resultsTitleStyle.Render(title),
		resultsTableStyle.Render(t.View()),
		resultsSummaryStyle.Render(summary),
	)
}
