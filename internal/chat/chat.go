// Package chat holds the conversation between the player and the friend:
// the bubble log shown in the chat panel and the line the player is typing.
package chat

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Chat constants.
const (
	DefaultMaxMessages = 20 // bubbles kept in the panel
	MaxInputLength     = 60 // max runes a player can type
)

// Sender identifies who said a bubble.
type Sender uint8

const (
	Player Sender = iota
	Friend
)

func (s Sender) String() string {
	if s == Friend {
		return "friend"
	}
	return "player"
}

// Bubble is one chat message.
type Bubble struct {
	Sender Sender
	Text   string
}

// Log is the scrolling list of chat bubbles.
// While disabled (game paused or over) new bubbles are dropped.
type Log struct {
	max     int
	enabled bool
	bubbles []Bubble
}

// NewLog returns an enabled Log holding at most maxMessages bubbles.
func NewLog(maxMessages int) *Log {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &Log{max: maxMessages, enabled: true}
}

// SetEnabled turns bubble intake on or off.
func (l *Log) SetEnabled(on bool) { l.enabled = on }

// Enabled reports whether new bubbles are accepted.
func (l *Log) Enabled() bool { return l.enabled }

// Add appends a bubble, dropping the oldest once the log is full.
// Returns false when the log is disabled.
func (l *Log) Add(from Sender, text string) bool {
	if !l.enabled {
		return false
	}
	l.bubbles = append(l.bubbles, Bubble{Sender: from, Text: text})
	if len(l.bubbles) > l.max {
		l.bubbles = l.bubbles[len(l.bubbles)-l.max:]
	}
	return true
}

// Bubbles returns a copy of the log, oldest first.
func (l *Log) Bubbles() []Bubble {
	out := make([]Bubble, len(l.bubbles))
	copy(out, l.bubbles)
	return out
}

// Len returns the number of bubbles held.
func (l *Log) Len() int { return len(l.bubbles) }

// Wrap splits text into lines no wider than width terminal columns.
// Words longer than a line are hard-broken.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		for ww > width {
			// Hard-break an over-long word; curW is 0 here.
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
