// Package render draws the maze, the chat panel, and the menus onto a tcell
// screen.
package render

import (
	"maze-friend/internal/chat"
	"maze-friend/internal/component"
	"maze-friend/internal/gamemap"
	"maze-friend/internal/menu"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Layout constants.
const (
	hudRows      = 3  // separator, status line, input prompt
	minChatWidth = 24 // chat panel never gets narrower than this
	maxChatWidth = 44
)

// Ending selects the end-of-run overlay.
type Ending uint8

const (
	EndingNone Ending = iota
	EndingEscaped
	EndingCaught
)

// View is everything one frame shows.
type View struct {
	Map         *gamemap.GameMap
	Friend      component.Position
	Chaser      component.Position
	ChaserAwake bool
	Bubbles     []chat.Bubble
	Input       string
	InputLocked bool
	Steps       int
	Menu        *menu.Menu // nil or closed: no overlay
	Ending      Ending
}

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0, 0, 0)}
	r.layout()
	return r
}

// layout recomputes viewport sizes after a resize.
func (r *Renderer) layout() (mazeW, chatX, chatW, viewH int) {
	w, h := r.screen.Size()
	chatW = min(max(w/3, minChatWidth), maxChatWidth)
	if chatW > w {
		chatW = w
	}
	mazeW = max(w-chatW-1, 0)
	viewH = max(h-hudRows, 0)
	if r.camera.ViewWidth != mazeW || r.camera.ViewHeight != viewH {
		r.camera.Resize(mazeW, viewH)
	}
	return mazeW, mazeW + 1, chatW, viewH
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the maze viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders one complete frame and shows it.
func (r *Renderer) DrawFrame(v View) {
	r.screen.Clear()
	mazeW, chatX, chatW, viewH := r.layout()

	if v.Map != nil {
		r.camera.Frame(v.Map.Width, v.Map.Height, v.Friend.X, v.Friend.Y)
		r.drawMap(v.Map)
		r.drawActors(v)
	}
	r.drawVLine(mazeW, viewH)
	r.drawChat(v.Bubbles, chatX, chatW, viewH)
	r.drawHUD(v, viewH)

	switch {
	case v.Ending != EndingNone:
		r.drawEnding(v.Ending, v.Steps)
	case v.Menu != nil && v.Menu.IsOpen():
		r.drawMenu(v.Menu)
	}
	r.screen.Show()
}

// drawMap renders every tile that falls inside the viewport.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			switch gmap.At(x, y).Kind {
			case gamemap.TileWall:
				r.putGlyph(sx, sy, GlyphWall, styleMaze)
			case gamemap.TileExit:
				r.putGlyph(sx, sy, GlyphExit, styleMaze)
			default:
				r.putGlyph(sx, sy, GlyphFloor, styleFloor)
			}
		}
	}
}

// drawActors draws the chaser, then the friend on top.
func (r *Renderer) drawActors(v View) {
	chaser := GlyphChaserAsleep
	if v.ChaserAwake {
		chaser = GlyphChaser
	}
	if sx, sy, ok := r.camera.WorldToScreen(v.Chaser.X, v.Chaser.Y); ok {
		r.putGlyph(sx, sy, chaser, styleMaze)
	}
	if sx, sy, ok := r.camera.WorldToScreen(v.Friend.X, v.Friend.Y); ok {
		r.putGlyph(sx, sy, GlyphFriend, styleMaze)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) in a two-column
// cell at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Pad narrow glyphs so every tile is two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawVLine(x, h int) {
	for y := 0; y < h; y++ {
		r.screen.SetContent(x, y, '│', nil, styleBorder)
	}
}
