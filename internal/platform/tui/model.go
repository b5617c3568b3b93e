package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/platform/host"
	"github.com/vovakirdan/colorswitch/internal/render"
)

const (
	soloHint   = "SPACE: jump  P: pause  R: restart  ESC: back  Q: quit"
	versusHint = "P1: SPACE  P2: UP  P: pause  ESC: back  Q: quit"
)

// GameModel is the Bubble Tea model for one running match.
type GameModel struct {
	session    *host.Session
	svc        host.Services
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      core.MultiInputFrame
	standalone bool // quit the program on Esc instead of going back
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model running a fresh match in the given mode.
func NewGameModel(mode match.Mode, svc host.Services, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	session, err := host.NewSession(mode, svc, cfg.Seed, cfg.TickRate)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}

	return GameModel{
		session:   session,
		svc:       svc,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewMultiInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the match
		// keeps running at the new size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToMultiFrame(msg, m.session.Mode(), &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick hands the input gathered since the last tick to the session.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	leave := m.session.Step(m.input)
	m.input.Clear()

	if leave {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) hud() render.HUD {
	hud := m.session.HUD()
	hud.Hint = soloHint
	if m.session.Mode() == match.ModeVersus {
		hud.Hint = versusHint
	}
	return hud
}

// saveScreenshot writes the current screen as plain text under
// ~/.colorswitch/screenshots.
func (m *GameModel) saveScreenshot() {
	logger := m.svc.Log()
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".colorswitch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	render.Draw(m.screen, m.session.Controller().Views(), m.hud())
	name := fmt.Sprintf("%s_%s.txt", m.session.Mode(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("cannot save screenshot", "err", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	render.Draw(m.screen, m.session.Controller().Views(), m.hud())
	return RenderScreen(m.screen)
}

// Session returns the host session driven by the model.
func (m GameModel) Session() *host.Session { return m.session }

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user asked to leave the match.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays a single match mode until the user quits or presses Esc.
func Run(mode match.Mode, svc host.Services, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(mode, svc, cfg)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
