// Package menu implements the pause screen and its sound options page.
package menu

import (
	"fmt"

	"maze-friend/internal/settings"
)

// Page is the menu screen currently shown.
type Page uint8

const (
	PageClosed Page = iota
	PagePause
	PageOptions
)

// Item is one selectable menu row.
type Item uint8

const (
	ItemResume Item = iota
	ItemOptions
	ItemQuit
	ItemMusic
	ItemSFX
	ItemVolume
	ItemBack
)

var pageItems = map[Page][]Item{
	PagePause:   {ItemResume, ItemOptions, ItemQuit},
	PageOptions: {ItemMusic, ItemSFX, ItemVolume, ItemBack},
}

// Key is a menu navigation input.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySelect
	KeyBack
)

// Result tells the caller what a key press did to the game.
type Result uint8

const (
	ResultNone    Result = iota
	ResultResumed        // menu closed, play continues
	ResultQuit           // leave to the main menu
)

// Menu is the pause/options state machine.
type Menu struct {
	page   Page
	cursor int
	sound  settings.Sound

	// OnVolumeUpdate fires after every volume change.
	OnVolumeUpdate func(volume float64)
	// OnChange fires after any sound option changes.
	OnChange func(settings.Sound)
}

// New returns a closed menu showing sound.
func New(sound settings.Sound) *Menu {
	return &Menu{sound: sound}
}

// Open shows the pause page.
func (m *Menu) Open() {
	m.page = PagePause
	m.cursor = 0
}

// IsOpen reports whether the menu is on screen (the game is paused).
func (m *Menu) IsOpen() bool { return m.page != PageClosed }

// Page returns the current page.
func (m *Menu) Page() Page { return m.page }

// Items returns the rows of the current page.
func (m *Menu) Items() []Item { return pageItems[m.page] }

// Cursor returns the index of the highlighted row.
func (m *Menu) Cursor() int { return m.cursor }

// Sound returns the current sound settings.
func (m *Menu) Sound() settings.Sound { return m.sound }

// Label renders an item's text including its current value.
func (m *Menu) Label(it Item) string {
	switch it {
	case ItemResume:
		return "Resume"
	case ItemOptions:
		return "Options"
	case ItemQuit:
		return "Quit"
	case ItemMusic:
		return "Music   " + onOff(m.sound.Music)
	case ItemSFX:
		return "Effects " + onOff(m.sound.SFX)
	case ItemVolume:
		return fmt.Sprintf("Volume  %s %3d%%", slider(m.sound.Volume), int(m.sound.Volume*100+0.5))
	case ItemBack:
		return "Back"
	}
	return ""
}

// Handle applies one key press.
func (m *Menu) Handle(k Key) Result {
	items := m.Items()
	if len(items) == 0 {
		return ResultNone
	}
	switch k {
	case KeyUp:
		m.cursor = (m.cursor - 1 + len(items)) % len(items)
	case KeyDown:
		m.cursor = (m.cursor + 1) % len(items)
	case KeyLeft, KeyRight:
		if items[m.cursor] == ItemVolume {
			step := settings.VolumeStep
			if k == KeyLeft {
				step = -step
			}
			m.updateVolume(m.sound.Volume + step)
		}
	case KeyBack:
		if m.page == PageOptions {
			m.showPause()
			return ResultNone
		}
		m.page = PageClosed
		return ResultResumed
	case KeySelect:
		return m.activate(items[m.cursor])
	}
	return ResultNone
}

func (m *Menu) activate(it Item) Result {
	switch it {
	case ItemResume:
		m.page = PageClosed
		return ResultResumed
	case ItemOptions:
		m.page = PageOptions
		m.cursor = 0
	case ItemQuit:
		m.page = PageClosed
		return ResultQuit
	case ItemMusic:
		m.sound.Music = !m.sound.Music
		m.changed()
	case ItemSFX:
		m.sound.SFX = !m.sound.SFX
		m.changed()
	case ItemBack:
		m.showPause()
	}
	return ResultNone
}

func (m *Menu) showPause() {
	m.page = PagePause
	m.cursor = 1 // back on "Options"
}

func (m *Menu) updateVolume(v float64) {
	before := m.sound.Volume
	m.sound.SetVolume(v)
	if m.sound.Volume == before {
		return
	}
	if m.OnVolumeUpdate != nil {
		m.OnVolumeUpdate(m.sound.Volume)
	}
	m.changed()
}

func (m *Menu) changed() {
	if m.OnChange != nil {
		m.OnChange(m.sound)
	}
}

func onOff(b bool) string {
	if b {
		return "[on] "
	}
	return "[off]"
}

func slider(v float64) string {
	const width = 10
	filled := int(v*width + 0.5)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
