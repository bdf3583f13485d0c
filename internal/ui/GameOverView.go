package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/toroboros/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data for the game over and leaderboard screens.
type GameOverState struct {
	PlayerName   string
	FinalScore   int
	Best         int
	ScreenWidth  int
	ScreenHeight int
}

var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				Padding(1, 5).
				Align(lipgloss.Center)

	newBestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))

	overlayHintStyle = lipgloss.NewStyle().Faint(true).Margin(1, 0)
)

// RenderGameOverScreen draws the death message and final stats.
func (g *GameOverState) RenderGameOverScreen() string {
	title := gameOverTitleStyle.Render("💀 G A M E   O V E R 💀")

	stats := fmt.Sprintf("\n%s\nScore: %d\nBest:  %d\n", g.PlayerName, g.FinalScore, g.Best)
	if g.FinalScore > 0 && g.FinalScore == g.Best {
		stats += newBestStyle.Render("New best score!") + "\n"
	}

	hint := overlayHintStyle.Render("R: restart · L: leaderboard · Q: quit")

	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, hint)

	return g.place(lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content))
}

// RenderLeaderboardScreen draws the persisted top runs as a table.
func (g *GameOverState) RenderLeaderboardScreen(runs []game.RunScore) string {
	nameWidth := 15
	scoreWidth := 7
	dateWidth := 12

	var table strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(3).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(dateWidth).Render("When"),
	)
	table.WriteString(header + "\n")

	for i, run := range runs {
		when := ""
		if !run.CreatedAt.IsZero() {
			when = run.CreatedAt.Format("2006-01-02")
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(3).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(run.PlayerName),
			leaderboardRowStyle.Width(scoreWidth).Render(strconv.Itoa(run.Score)),
			leaderboardRowStyle.Width(dateWidth).Render(when),
		)
		table.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	if len(runs) == 0 {
		table.WriteString(leaderboardRowStyle.Render("No finished runs yet.") + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("👑 LEADERBOARD 👑")
	hint := overlayHintStyle.Render("L or ESC: back · R: restart · Q: quit")

	content := lipgloss.JoinVertical(lipgloss.Center, title, table.String(), hint)

	return g.place(lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content))
}

func (g *GameOverState) place(content string) string {
	if g.ScreenWidth <= 0 || g.ScreenHeight <= 0 {
		return content
	}
	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
