package game

import (
	"testing"

	"maze-friend/internal/menu"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{key(tcell.KeyEnter), ActionSubmit},
		{key(tcell.KeyBackspace), ActionBackspace},
		{key(tcell.KeyBackspace2), ActionBackspace},
		{key(tcell.KeyEscape), ActionMenu},
		{key(tcell.KeyCtrlC), ActionQuit},
		{runeKey('q'), ActionType},
		{runeKey('3'), ActionType},
		{key(tcell.KeyF1), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestEndAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{runeKey('r'), ActionRestart},
		{runeKey('R'), ActionRestart},
		{runeKey('q'), ActionQuit},
		{key(tcell.KeyEscape), ActionQuit},
		{runeKey('x'), ActionNone},
	}
	for _, tc := range cases {
		if got := endAction(tc.ev); got != tc.want {
			t.Errorf("endAction(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestKeyToMenu(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want menu.Key
	}{
		{key(tcell.KeyUp), menu.KeyUp},
		{runeKey('j'), menu.KeyDown},
		{key(tcell.KeyLeft), menu.KeyLeft},
		{runeKey('l'), menu.KeyRight},
		{key(tcell.KeyEnter), menu.KeySelect},
		{key(tcell.KeyEscape), menu.KeyBack},
		{runeKey('z'), menu.KeyNone},
	}
	for _, tc := range cases {
		if got := keyToMenu(tc.ev); got != tc.want {
			t.Errorf("keyToMenu(%v) = %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}
