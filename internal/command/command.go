// Package command turns a line of chat text into friend movement.
// A line is "<count> <direction>" or "RUN <direction>"; the mover walks one
// cell at a time, asking the wall service before every step, and reports each
// step, block, or parse failure as a StepResult.
package command

import (
	"errors"
	"fmt"
	"strings"

	"maze-friend/internal/component"
)

// Friend replies.
const (
	MsgInvalid = "Sorry, could you repeat?"
	MsgBlocked = "There is a wall in front of me!"
)

// Direction ids. The command table is indexed by these.
const (
	DirLeft = iota
	DirRight
	DirUp
	DirDown
	numDirs
)

// DefaultCommands is the command table used when none is configured.
var DefaultCommands = []string{"LEFT", "RIGHT", "UP", "DOWN"}

// RunToken is the count token that means "repeat until blocked".
const RunToken = "RUN"

// DefaultMaxCount bounds numeric counts so one instruction always finishes.
const DefaultMaxCount = 99

// ErrInvalidCommand is returned by Parse for any line the friend cannot follow.
var ErrInvalidCommand = errors.New("invalid command")

// Delta converts a direction id to a one-cell step. Y grows upward.
func Delta(dir int) (int, int) {
	switch dir {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	}
	return 0, 0
}

// Table is an ordered list of direction names; index = direction id.
type Table []string

// NewTable validates names and returns them upper-cased as a Table.
func NewTable(names []string) (Table, error) {
	if len(names) != numDirs {
		return nil, fmt.Errorf("command table: want %d directions, got %d", numDirs, len(names))
	}
	t := make(Table, len(names))
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == "" {
			return nil, fmt.Errorf("command table: direction %d has no name", i)
		}
		if strings.ContainsAny(n, " \t\n") {
			return nil, fmt.Errorf("command table: direction %q contains whitespace", n)
		}
		if n == RunToken {
			return nil, fmt.Errorf("command table: %q is reserved", RunToken)
		}
		if seen[n] {
			return nil, fmt.Errorf("command table: duplicate direction %q", n)
		}
		seen[n] = true
		t[i] = n
	}
	return t, nil
}

// Lookup returns the direction id for word, matched case-insensitively.
func (t Table) Lookup(word string) (int, bool) {
	for i, name := range t {
		if strings.EqualFold(word, name) {
			return i, true
		}
	}
	return -1, false
}

// Outcome identifies the kind of a StepResult.
type Outcome uint8

const (
	Moved   Outcome = iota // position advanced one cell
	Blocked                // wall ahead, instruction ends
	Invalid                // unparseable line, nothing moved
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// StepResult is one entry of an interpreted instruction.
// Position is set for Moved; Message for Blocked and Invalid.
type StepResult struct {
	Outcome  Outcome
	Position component.Position
	Message  string
}

// Instruction is a parsed command line.
type Instruction struct {
	Count   int
	Run     bool
	Dir     int
	Clamped bool // Count was cut down to the configured maximum
}

// TooFarMessage is the reply given before walking a clamped count.
func TooFarMessage(n int) string {
	return fmt.Sprintf("That's too far! I'll try %d steps.", n)
}
