package main

import (
	"fmt"
	"os"

	"github.com/Mshel/toroboros/internal/game"
	"github.com/Mshel/toroboros/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	scores := game.NewScoreService(game.EnvOr("TOROBOROS_DB_PATH", "toroboros.db"))
	defer scores.Close()

	p := tea.NewProgram(ui.NewControllerModel(scores, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
