package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultPlayerName = "anonymous"

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	helpStyle    = lipgloss.NewStyle().Foreground(blurredColor)

	setupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Padding(1, 0)

	setupBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focusedColor).
			Padding(1, 3)
)

// SetupModel asks for a player name before the game starts.
type SetupModel struct {
	nameInput textinput.Model
	width     int
	height    int
}

func NewSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = defaultPlayerName
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput: ti,
		width:     w,
		height:    h,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				name = defaultPlayerName
			}
			return m, func() tea.Msg { return SetupSubmitMsg{Name: name} }
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SetupModel) View() string {
	title := setupTitleStyle.Render("T O R O B O R O S")
	prompt := "Who is playing?"
	help := helpStyle.Render("Enter to start · Ctrl+C to quit")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		prompt,
		m.nameInput.View(),
		"",
		help,
	)

	box := setupBoxStyle.Render(content)
	if m.width <= 0 || m.height <= 0 {
		return box
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
