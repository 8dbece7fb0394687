package chat

import "strings"

// Input is the line the player is typing. It is read-only while the friend
// delivers the opening monologue.
type Input struct {
	buf      []rune
	readOnly bool
}

// SetReadOnly locks or unlocks editing.
func (in *Input) SetReadOnly(ro bool) { in.readOnly = ro }

// ReadOnly reports whether editing is locked.
func (in *Input) ReadOnly() bool { return in.readOnly }

// Insert appends r unless the line is locked or full.
func (in *Input) Insert(r rune) {
	if in.readOnly || len(in.buf) >= MaxInputLength {
		return
	}
	in.buf = append(in.buf, r)
}

// Backspace deletes the last rune.
func (in *Input) Backspace() {
	if in.readOnly || len(in.buf) == 0 {
		return
	}
	in.buf = in.buf[:len(in.buf)-1]
}

// Clear empties the line.
func (in *Input) Clear() { in.buf = in.buf[:0] }

// Text returns the current line.
func (in *Input) Text() string { return string(in.buf) }

// Submit returns the typed line and clears it. Blank lines and locked input
// return ok=false and leave the buffer untouched.
func (in *Input) Submit() (string, bool) {
	if in.readOnly {
		return "", false
	}
	text := string(in.buf)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	in.Clear()
	return text, true
}
