package ui

import (
	"github.com/Mshel/toroboros/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	SetupScreen Screen = iota
	GameScreen
)

// SetupSubmitMsg carries the chosen player name out of the setup screen.
type SetupSubmitMsg struct {
	Name string
}

// ControllerModel switches between the setup and game screens, delegating
// every other message to whichever one is active.
type ControllerModel struct {
	CurrentScreen Screen

	SetupModel tea.Model
	GameModel  tea.Model

	scores *game.ScoreService

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(scores *game.ScoreService, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: SetupScreen,
		SetupModel:    NewSetupModel(screenWidth, screenHeight),
		scores:        scores,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.SetupModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game loading..."
	default:
		return "Unknown screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Remember the size for models created later, then fall through
		// to the active model so it can re-lay itself out.
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height

	case SetupSubmitMsg:
		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(m.scores, msg.Name, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()
	}

	switch m.CurrentScreen {
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		cmds = append(cmds, cmd)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}
