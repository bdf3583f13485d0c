package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/toroboros/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Styling Definitions ---

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	snakeHeadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	snakeBodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	foodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	voidStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))

	pausedBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11"))

	// Head runes based on the active direction
	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

const (
	snakeBodyRune = "○"
	foodRune      = "●"
	voidRune      = "·"

	leaderboardSize = 10

	// The frame callback runs at display rate; the simulation clock
	// decides which frames actually advance the game.
	frameInterval = time.Second / 60
)

// FrameMsg is one render-rate callback carrying its timestamp.
type FrameMsg time.Time

// KeyMap binds the input events the game understands.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
}

var DefaultKeyMap = KeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
	Left:        key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
	Right:       key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
	Pause:       key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
	Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Leaderboard: key.NewBinding(key.WithKeys("l", "esc"), key.WithHelp("l", "leaderboard")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// GameModel renders one run of the game and feeds input into the engine.
type GameModel struct {
	engine *game.Engine
	clock  *game.Clock
	scores *game.ScoreService
	keys   KeyMap

	PlayerName   string
	ScreenWidth  int
	ScreenHeight int

	showLeaderboard bool
	leaderboard     []game.RunScore
	runRecorded     bool
	quitting        bool
}

func NewGameModel(scores *game.ScoreService, playerName string, screenWidth int, screenHeight int) GameModel {
	return GameModel{
		engine:       game.NewEngine(scores, nil),
		clock:        game.NewClock(game.TickInterval, time.Now()),
		scores:       scores,
		keys:         DefaultKeyMap,
		PlayerName:   playerName,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameModel) Init() tea.Cmd {
	return scheduleFrame()
}

func scheduleFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		if m.quitting {
			// Torn down: do not re-arm the frame callback.
			return m, nil
		}
		if m.clock.Advance(time.Time(msg)) {
			m.engine.Step()
			if snap := m.engine.Snapshot(); snap.State == game.GameOver && !m.runRecorded {
				m.runRecorded = true
				if err := m.scores.RecordRun(m.PlayerName, snap.Score); err != nil {
					log.Warn("Could not record finished run", "player", m.PlayerName, "error", err)
				}
			}
		}
		// Redraw happens every frame, paused and game over included.
		return m, scheduleFrame()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.clock.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.engine.Enqueue(game.Up)
	case key.Matches(msg, m.keys.Down):
		m.engine.Enqueue(game.Down)
	case key.Matches(msg, m.keys.Left):
		m.engine.Enqueue(game.Left)
	case key.Matches(msg, m.keys.Right):
		m.engine.Enqueue(game.Right)

	case key.Matches(msg, m.keys.Pause):
		m.engine.TogglePause()

	case key.Matches(msg, m.keys.Restart):
		m.engine.Restart()
		m.showLeaderboard = false
		m.runRecorded = false

	case key.Matches(msg, m.keys.Leaderboard):
		if m.engine.Snapshot().State != game.GameOver {
			break
		}
		if !m.showLeaderboard {
			runs, err := m.scores.TopRuns(leaderboardSize)
			if err != nil {
				log.Warn("Could not load leaderboard", "error", err)
			}
			m.leaderboard = runs
		}
		m.showLeaderboard = !m.showLeaderboard
	}

	return m, nil
}

func (m GameModel) View() string {
	snap := m.engine.Snapshot()

	if snap.State == game.GameOver {
		overlay := GameOverState{
			PlayerName:   m.PlayerName,
			FinalScore:   snap.Score,
			Best:         snap.Best,
			ScreenWidth:  m.ScreenWidth,
			ScreenHeight: m.ScreenHeight,
		}
		if m.showLeaderboard {
			return overlay.RenderLeaderboardScreen(m.leaderboard)
		}
		return overlay.RenderGameOverScreen()
	}

	board := boardStyle.Render(renderBoard(snap))
	panel := statusPanelStyle.Render(m.renderStatusPanel(snap))
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)

	if m.ScreenWidth <= 0 || m.ScreenHeight <= 0 {
		return view
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		view,
	)
}

// renderBoard draws the full grid from a snapshot; it never touches the
// engine itself.
func renderBoard(snap game.Snapshot) string {
	body := make(map[game.Point]bool, len(snap.Snake))
	for _, segment := range snap.Snake[1:] {
		body[segment] = true
	}
	head := snap.Snake[0]

	var board strings.Builder
	for y := 0; y < game.GridRowCount; y++ {
		for x := 0; x < game.GridColCount; x++ {
			cell := game.Point{X: x, Y: y}
			switch {
			case cell == head:
				board.WriteString(snakeHeadStyle.Render(headRunes[snap.ActiveDirection]))
			case body[cell]:
				board.WriteString(snakeBodyStyle.Render(snakeBodyRune))
			case cell == snap.Food:
				board.WriteString(foodStyle.Render(foodRune))
			default:
				board.WriteString(voidStyle.Render(voidRune))
			}
		}
		if y < game.GridRowCount-1 {
			board.WriteString("\n")
		}
	}

	return board.String()
}

func (m GameModel) renderStatusPanel(snap game.Snapshot) string {
	var panel strings.Builder

	panel.WriteString(lipgloss.NewStyle().Bold(true).Render("--- "+m.PlayerName+" ---") + "\n")
	panel.WriteString(fmt.Sprintf("Score: %d\n", snap.Score))
	panel.WriteString(fmt.Sprintf("Best:  %d\n", snap.Best))
	panel.WriteString(fmt.Sprintf("Length: %d\n", len(snap.Snake)))

	if snap.State == game.Paused {
		panel.WriteString("\n" + pausedBannerStyle.Render("⏸  PAUSED") + "\n")
	}

	panel.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	for _, binding := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Pause, m.keys.Restart, m.keys.Quit} {
		help := binding.Help()
		panel.WriteString(fmt.Sprintf("%s: %s\n", help.Key, help.Desc))
	}

	panel.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("Toroboros v0.1"))

	return panel.String()
}
