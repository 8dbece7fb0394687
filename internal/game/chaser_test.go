package game

import (
	"testing"

	"maze-friend/internal/component"
)

func pos(x, y int) component.Position { return component.Position{X: x, Y: y} }

func TestChaserSleepsThroughHeadStart(t *testing.T) {
	c := NewChaser(pos(0, 0), 3)
	for i := 1; i <= 3; i++ {
		if c.Follow(pos(i, 0)) {
			t.Fatalf("caught during head start at step %d", i)
		}
		if c.Position() != pos(0, 0) {
			t.Fatalf("chaser moved during head start: %v", c.Position())
		}
	}
	if !c.Awake() {
		t.Error("chaser should be awake once the head start is used up")
	}
	c.Follow(pos(4, 0))
	if c.Position() != pos(1, 0) {
		t.Errorf("chaser at %v, want (1,0)", c.Position())
	}
}

func TestChaserKeepsItsDistanceOnStraightRoutes(t *testing.T) {
	c := NewChaser(pos(0, 0), 2)
	for i := 1; i <= 20; i++ {
		if c.Follow(pos(i, 0)) {
			t.Fatalf("chaser caught a friend walking away at step %d", i)
		}
	}
	if c.Position() != pos(18, 0) {
		t.Errorf("chaser at %v, want (18,0)", c.Position())
	}
}

func TestChaserCatchesOnBacktrack(t *testing.T) {
	c := NewChaser(pos(0, 0), 2)
	c.Follow(pos(1, 0))
	c.Follow(pos(2, 0))
	if !c.Follow(pos(1, 0)) {
		t.Error("walking back into the chaser should be caught")
	}
}

func TestChaserHesitate(t *testing.T) {
	c := NewChaser(pos(0, 0), 5)
	if c.Hesitate(pos(0, 0)) {
		t.Error("a sleeping chaser never catches")
	}
	if c.Position() != pos(0, 0) {
		t.Error("a sleeping chaser never moves")
	}

	c = NewChaser(pos(0, 0), 1)
	c.Follow(pos(1, 0))
	c.Follow(pos(2, 0))
	if !c.Hesitate(pos(2, 0)) {
		t.Errorf("hesitating next to an awake chaser should be caught, chaser at %v", c.Position())
	}
	// It never passes the friend.
	c.Hesitate(pos(2, 0))
	if c.Position() != pos(2, 0) {
		t.Errorf("chaser ran past the trail to %v", c.Position())
	}
}

func TestChaserZeroHeadStart(t *testing.T) {
	c := NewChaser(pos(0, 0), 0)
	if !c.Awake() {
		t.Error("no head start means awake from the start")
	}
	if !c.Follow(pos(1, 0)) {
		t.Error("with no head start the first step is caught")
	}
}
