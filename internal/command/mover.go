package command

import "maze-friend/internal/component"

// Walls answers whether a cell is occupied by a wall.
type Walls interface {
	IsBlocked(p component.Position) bool
}

// WallsFunc adapts a plain function to Walls.
type WallsFunc func(p component.Position) bool

func (f WallsFunc) IsBlocked(p component.Position) bool { return f(p) }

// Hooks are optional callbacks fired while an instruction runs.
type Hooks struct {
	OnMove     func(component.Position) // after every successful step
	OnResponse func(string)             // for every friend reply
}

// Config controls parsing limits.
type Config struct {
	// RunLength is the step count used for RUN, normally the maze width.
	RunLength int
	// MaxCount clamps numeric counts; 0 disables the clamp.
	MaxCount int
}

// Mover owns the friend's position and interprets chat lines into steps.
type Mover struct {
	table Table
	walls Walls
	hooks Hooks
	cfg   Config
	pos   component.Position
}

// NewMover returns a Mover standing at start.
func NewMover(table Table, walls Walls, start component.Position, cfg Config, hooks Hooks) *Mover {
	return &Mover{
		table: table,
		walls: walls,
		hooks: hooks,
		cfg:   cfg,
		pos:   start,
	}
}

// Position returns the friend's current cell.
func (m *Mover) Position() component.Position { return m.pos }

// Interpret parses input and walks the friend, returning every step taken.
// The sequence ends with at most one Blocked or Invalid entry.
func (m *Mover) Interpret(input string) []StepResult {
	in, err := m.table.Parse(input, m.cfg.RunLength, m.cfg.MaxCount)
	if err != nil {
		m.respond(MsgInvalid)
		return []StepResult{{Outcome: Invalid, Position: m.pos, Message: MsgInvalid}}
	}
	if in.Clamped {
		m.respond(TooFarMessage(in.Count))
	}
	return m.Execute(in)
}

// Execute walks an already-parsed instruction.
func (m *Mover) Execute(in Instruction) []StepResult {
	dx, dy := Delta(in.Dir)
	if in.Count < 1 || (dx == 0 && dy == 0) {
		m.respond(MsgInvalid)
		return []StepResult{{Outcome: Invalid, Position: m.pos, Message: MsgInvalid}}
	}

	results := make([]StepResult, 0, min(in.Count, 16)+1)
	for i := 0; i < in.Count; i++ {
		next := m.pos.Add(dx, dy)
		if m.walls.IsBlocked(next) {
			// The first wall ends the instruction, so a RUN reports it once.
			m.respond(MsgBlocked)
			results = append(results, StepResult{Outcome: Blocked, Position: m.pos, Message: MsgBlocked})
			break
		}
		m.pos = next
		results = append(results, StepResult{Outcome: Moved, Position: next})
		if m.hooks.OnMove != nil {
			m.hooks.OnMove(next)
		}
	}
	return results
}

func (m *Mover) respond(msg string) {
	if m.hooks.OnResponse != nil {
		m.hooks.OnResponse(msg)
	}
}
