package game

import "maze-friend/internal/component"

// Chaser follows the friend's footsteps. It sleeps for the first headStart
// friend steps, then walks the recorded trail one cell per friend step.
type Chaser struct {
	trail     []component.Position // trail[0] is the spawn cell
	next      int                  // trail index the chaser stands on
	headStart int
}

// NewChaser spawns a sleeping chaser on the friend's start cell.
func NewChaser(start component.Position, headStart int) *Chaser {
	return &Chaser{
		trail:     []component.Position{start},
		headStart: max(headStart, 0),
	}
}

// Position returns the chaser's cell.
func (c *Chaser) Position() component.Position { return c.trail[c.next] }

// Awake reports whether the friend has used up the head start.
func (c *Chaser) Awake() bool { return c.friendSteps() >= c.headStart }

func (c *Chaser) friendSteps() int { return len(c.trail) - 1 }

// Follow records one friend step and, once awake, moves the chaser one cell
// along the trail. It returns true when the two share a cell, checked both
// before and after the chaser moves.
func (c *Chaser) Follow(friend component.Position) bool {
	c.trail = append(c.trail, friend)
	if c.Caught(friend) {
		return true
	}
	if c.friendSteps() > c.headStart {
		c.advance()
	}
	return c.Caught(friend)
}

// Hesitate moves an awake chaser one extra cell; it is called when the
// friend wastes a command on a wall or a misunderstanding.
func (c *Chaser) Hesitate(friend component.Position) bool {
	if c.Awake() {
		c.advance()
	}
	return c.Caught(friend)
}

// Caught reports whether an awake chaser stands on friend.
func (c *Chaser) Caught(friend component.Position) bool {
	return c.Awake() && c.Position() == friend
}

func (c *Chaser) advance() {
	if c.next < len(c.trail)-1 {
		c.next++
	}
}
