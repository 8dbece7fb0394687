// Package ssh adapts a gliderlabs SSH session into a tcell screen so every
// client gets its own terminal UI.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// ErrNoPty is returned for sessions opened without a terminal (ssh -T).
var ErrNoPty = errors.New("session has no pty")

// allowedTerms lists the terminfo entries clients may select. Anything else
// falls back to DefaultTerm so a client cannot point tcell at arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// ResolveTerm returns term if it is allowed, otherwise DefaultTerm.
func ResolveTerm(term string) string {
	if allowedTerms[term] {
		return term
	}
	return DefaultTerm
}

// termMu serializes os.Setenv("TERM") around screen creation, since tcell
// reads the terminal type from the process environment.
var termMu sync.Mutex

// NewScreen creates and initializes a tcell screen on the session's pty.
// The caller must call Fini on the returned screen.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	tty := newSessionTty(s, pty.Window, winCh)

	termMu.Lock()
	_ = os.Setenv("TERM", ResolveTerm(pty.Term))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// sessionTty implements tcell.Tty on top of an SSH channel.
type sessionTty struct {
	gossh.Session // Read, Write, Close go straight to the channel

	mu       sync.Mutex
	window   gossh.Window
	winCh    <-chan gossh.Window
	onResize func()
}

func newSessionTty(s gossh.Session, win gossh.Window, winCh <-chan gossh.Window) *sessionTty {
	return &sessionTty{Session: s, window: win, winCh: winCh}
}

// The SSH channel is already open and unbuffered, so the lifecycle hooks
// have nothing to do.
func (t *sessionTty) Start() error { return nil }
func (t *sessionTty) Stop() error  { return nil }
func (t *sessionTty) Drain() error { return nil }

// WindowSize returns the latest size the client reported.
func (t *sessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts forwarding window-change requests
// until the session closes the channel.
func (t *sessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.setWindow(win)
		}
	}()
}

func (t *sessionTty) setWindow(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.onResize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
