package game

import (
	"maze-friend/internal/menu"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested action while the maze is on screen.
type Action uint8

const (
	ActionNone Action = iota
	ActionType
	ActionBackspace
	ActionSubmit
	ActionMenu
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a chat-screen action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionSubmit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBackspace
	case tcell.KeyEscape:
		return ActionMenu
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		return ActionType
	}
	return ActionNone
}

// endAction maps a key on the end screen.
func endAction(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}
	switch ev.Rune() {
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// keyToMenu maps a tcell key event to a menu navigation key.
func keyToMenu(ev *tcell.EventKey) menu.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return menu.KeyUp
	case tcell.KeyDown:
		return menu.KeyDown
	case tcell.KeyLeft:
		return menu.KeyLeft
	case tcell.KeyRight:
		return menu.KeyRight
	case tcell.KeyEnter:
		return menu.KeySelect
	case tcell.KeyEscape:
		return menu.KeyBack
	}
	switch ev.Rune() {
	case 'k', 'K':
		return menu.KeyUp
	case 'j', 'J':
		return menu.KeyDown
	case 'h', 'H':
		return menu.KeyLeft
	case 'l', 'L':
		return menu.KeyRight
	case ' ':
		return menu.KeySelect
	}
	return menu.KeyNone
}
