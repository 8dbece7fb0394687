package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads "<count> <direction>" or "RUN <direction>".
// runLength is the count used for RUN; maxCount (if > 0) clamps numeric counts.
// Every failure wraps ErrInvalidCommand.
func (t Table) Parse(input string, runLength, maxCount int) (Instruction, error) {
	words := strings.Fields(input)
	if len(words) != 2 {
		return Instruction{}, fmt.Errorf("%w: want 2 words, got %d", ErrInvalidCommand, len(words))
	}

	var in Instruction
	if n, err := strconv.Atoi(words[0]); err == nil {
		if n < 1 {
			return Instruction{}, fmt.Errorf("%w: count %d is not positive", ErrInvalidCommand, n)
		}
		if maxCount > 0 && n > maxCount {
			n = maxCount
			in.Clamped = true
		}
		in.Count = n
	} else if strings.EqualFold(words[0], RunToken) {
		in.Run = true
		in.Count = max(runLength, 1)
	} else {
		return Instruction{}, fmt.Errorf("%w: bad count %q", ErrInvalidCommand, words[0])
	}

	dir, ok := t.Lookup(words[1])
	if !ok {
		return Instruction{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidCommand, words[1])
	}
	in.Dir = dir
	return in, nil
}
