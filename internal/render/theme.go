package render

import "github.com/gdamore/tcell/v2"

// Glyphs used to draw the maze.
const (
	GlyphWall         = "🧱"
	GlyphFloor        = "·"
	GlyphExit         = "🚪"
	GlyphFriend       = "🤖"
	GlyphChaser       = "👻"
	GlyphChaserAsleep = "💤"
)

// Text styles.
var (
	styleMaze     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLocked   = tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
	styleFriend   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorNavy)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMenuItem = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMenuSel  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleWin      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLose     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)
