package render

import (
	"fmt"

	"maze-friend/internal/chat"
	"maze-friend/internal/menu"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the separator, the status line, and the chat prompt below
// the maze viewport.
func (r *Renderer) drawHUD(v View, hudY int) {
	r.drawHLine(hudY, styleBorder)

	status := fmt.Sprintf("Steps: %d", v.Steps)
	if v.ChaserAwake {
		status += "  " + GlyphChaser + " is coming!"
	}
	r.drawText(0, hudY+1, status, styleStatus)
	w, _ := r.screen.Size()
	hint := "[Enter] Send  [Esc] Menu"
	r.drawText(w-runewidth.StringWidth(hint)-1, hudY+1, hint, styleHint)

	if v.InputLocked {
		r.drawText(0, hudY+2, "Your friend is talking...", styleLocked)
		return
	}
	prompt := "Say: "
	r.drawText(0, hudY+2, prompt, stylePrompt)
	r.drawText(runewidth.StringWidth(prompt), hudY+2, v.Input+"_", styleStatus)
}

// drawChat renders the newest bubbles bottom-up so the latest line sits just
// above the HUD.
func (r *Renderer) drawChat(bubbles []chat.Bubble, x, width, height int) {
	if width < 4 || height < 2 {
		return
	}
	r.drawText(x+1, 0, "Chat", styleHeader)
	inner := width - 2

	y := height - 1
	for i := len(bubbles) - 1; i >= 0 && y >= 1; i-- {
		b := bubbles[i]
		style, indent := styleFriend, 0
		if b.Sender == chat.Player {
			style = stylePlayer
		}
		lines := chat.Wrap(b.Text, inner-2)
		for j := len(lines) - 1; j >= 0 && y >= 1; j-- {
			line := lines[j]
			if b.Sender == chat.Player {
				// Player bubbles hug the right edge.
				indent = inner - runewidth.StringWidth(line) - 2
			}
			r.drawText(x+1+indent, y, " "+line+" ", style)
			y--
		}
		y-- // gap between bubbles
	}
}

// drawMenu renders the pause or options page in a centered box.
func (r *Renderer) drawMenu(m *menu.Menu) {
	title := "Paused"
	if m.Page() == menu.PageOptions {
		title = "Options"
	}
	items := m.Items()
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = m.Label(it)
	}
	x, y, bw := r.drawBox(title, len(lines)+3, lines)
	for i, line := range lines {
		style := styleMenuItem
		prefix := "  "
		if i == m.Cursor() {
			style = styleMenuSel
			prefix = "► "
		}
		text := prefix + line
		pad := bw - 2 - runewidth.StringWidth(text)
		if pad > 0 {
			text += fmt.Sprintf("%*s", pad, "")
		}
		r.drawText(x+1, y+2+i, text, style)
	}
	r.drawText(x+2, y+len(lines)+3, "↑/↓ move  ←/→ adjust", styleHint)
}

// drawEnding renders the end-of-run box.
func (r *Renderer) drawEnding(e Ending, steps int) {
	headline, style := "You made it out!", styleWin
	if e == EndingCaught {
		headline, style = "Caught by the ghost...", styleLose
	}
	body := []string{
		fmt.Sprintf("Steps taken: %d", steps),
		"",
		"[R] Try Again   [Q] Quit",
	}
	x, y, _ := r.drawBox("", len(body)+2, append([]string{headline}, body...))
	r.drawText(x+2, y+1, headline, style)
	for i, line := range body {
		r.drawText(x+2, y+2+i, line, styleStatus)
	}
}

// drawBox clears and frames a box sized to fit lines, centered on screen.
// It returns the box's top-left corner and width.
func (r *Renderer) drawBox(title string, innerH int, lines []string) (x, y, bw int) {
	w, h := r.screen.Size()
	bw = runewidth.StringWidth(title) + 4
	for _, l := range lines {
		bw = max(bw, runewidth.StringWidth(l)+6)
	}
	bw = max(bw, 26)
	bh := innerH + 2
	x = max((w-bw)/2, 0)
	y = max((h-bh)/2, 0)

	for row := y; row < y+bh; row++ {
		for col := x; col < x+bw; col++ {
			ch := ' '
			switch {
			case row == y && col == x:
				ch = '┌'
			case row == y && col == x+bw-1:
				ch = '┐'
			case row == y+bh-1 && col == x:
				ch = '└'
			case row == y+bh-1 && col == x+bw-1:
				ch = '┘'
			case row == y || row == y+bh-1:
				ch = '─'
			case col == x || col == x+bw-1:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, nil, styleBorder)
		}
	}
	if title != "" {
		r.drawText(x+2, y, " "+title+" ", styleHeader)
	}
	return x, y, bw
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at (x, y), advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
