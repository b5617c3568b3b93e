package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/match"
)

// NoWorld is the world index reported for actions that are not jumps.
const NoWorld = -1

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message for a match in the given mode. Jumps
// carry the world they belong to: Space is player 1, Up is player 2 in
// versus and a second jump key in solo. Other actions report NoWorld.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode match.Mode) (world int, action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return NoWorld, core.ActionQuit, true
	case " ":
		return 0, core.ActionJump, false
	case "up":
		if mode == match.ModeVersus {
			return 1, core.ActionJump, false
		}
		return 0, core.ActionJump, false
	case "enter":
		return NoWorld, core.ActionConfirm, false
	case "b", "esc":
		return NoWorld, core.ActionBack, false
	case "p":
		return NoWorld, core.ActionPause, false
	case "r":
		return NoWorld, core.ActionRestart, false
	}
	return NoWorld, core.ActionNone, false
}

// MapKeyToMultiFrame records a key message in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, mode match.Mode, frame *core.MultiInputFrame) bool {
	world, action, isQuit := km.MapKey(msg, mode)
	switch {
	case action == core.ActionNone:
	case world != NoWorld:
		frame.SetWorld(world, action)
	default:
		frame.Global.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
