package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/platform/host"
	"github.com/vovakirdan/colorswitch/internal/render"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceSolo
	ChoiceVersus
	ChoiceScores
	ChoiceQuit
)

// Mode returns the match mode a choice starts, if it starts one.
func (c MenuChoice) Mode() (match.Mode, bool) {
	switch c {
	case ChoiceSolo:
		return match.ModeSolo, true
	case ChoiceVersus:
		return match.ModeVersus, true
	default:
		return match.ModeSolo, false
	}
}

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Detail string
}

const menuTitle = "COLOR SWITCH"

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. Best scores come from
// svc.HighScores when it is set.
func NewMenuModel(svc host.Services, cfg core.RuntimeConfig) MenuModel {
	best := func(mode match.Mode) string {
		if svc.HighScores == nil {
			return ""
		}
		score, err := svc.HighScores.HighScore(mode.String())
		if err != nil || score == 0 {
			return ""
		}
		return fmt.Sprintf("best %d", score)
	}

	return MenuModel{
		items: []MenuItem{
			{Choice: ChoiceSolo, Title: "Solo", Detail: best(match.ModeSolo)},
			{Choice: ChoiceVersus, Title: "Versus", Detail: best(match.ModeVersus)},
			{Choice: ChoiceScores, Title: "High Scores"},
			{Choice: ChoiceQuit, Title: "Quit"},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionScoreboard:
		m.selected = ChoiceScores
		return m, tea.Quit

	case MenuActionSelect:
		m.selected = m.items[m.cursor].Choice
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(rainbowTitle(menuTitle), len(menuTitle), m.width))
	b.WriteString("\n\n")

	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = "> " + item.Title
		}
		width := len(line)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		if item.Detail != "" {
			width += len(item.Detail) + 2
			line += "  " + detailStyle.Render(item.Detail)
		}
		b.WriteString(centerStyled(line, width, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// rainbowTitle colors each letter with the next ring segment color.
func rainbowTitle(title string) string {
	var b strings.Builder
	i := 0
	for _, r := range title {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(styleFor(render.PaletteColor(i)).Bold(true).Render(string(r)))
		i++
	}
	return b.String()
}

// Selected returns the chosen menu entry, ChoiceNone if none yet.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len([]rune(text)), width)
}

// centerStyled centers already styled text whose visible width is known.
func centerStyled(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
