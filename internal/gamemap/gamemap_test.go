package gamemap

import (
	"testing"

	"maze-friend/internal/component"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, MakeFloor())
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestIsBlocked(t *testing.T) {
	cases := []struct {
		name string
		p    component.Position
		want bool
	}{
		{"floor", component.Position{X: 1, Y: 1}, false},
		{"exit", component.Position{X: 2, Y: 1}, false},
		{"wall", component.Position{X: 3, Y: 1}, true},
		{"left of map", component.Position{X: -1, Y: 1}, true},
		{"above map", component.Position{X: 1, Y: 5}, true},
	}
	m := New(5, 5)
	m.Set(1, 1, MakeFloor())
	m.SetExit(component.Position{X: 2, Y: 1})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.IsBlocked(tc.p); got != tc.want {
				t.Errorf("IsBlocked(%v) = %v; want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestSetExit(t *testing.T) {
	m := New(5, 5)
	p := component.Position{X: 3, Y: 2}
	m.SetExit(p)
	if m.Exit != p {
		t.Errorf("Exit = %v, want %v", m.Exit, p)
	}
	if m.At(3, 2).Kind != TileExit {
		t.Errorf("tile at exit is %v, want TileExit", m.At(3, 2).Kind)
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	if m.At(2, 3).Kind != TileWall {
		t.Fatal("expected TileWall at (2,3) before any Set")
	}
	m.Set(2, 3, MakeFloor())
	if m.At(2, 3).Kind != TileFloor {
		t.Fatal("Set should be reflected by subsequent At")
	}
}

func TestDistances(t *testing.T) {
	// An L-shaped corridor: (1,1) → (3,1) → (3,3).
	m := New(5, 5)
	for x := 1; x <= 3; x++ {
		m.Set(x, 1, MakeFloor())
	}
	for y := 2; y <= 3; y++ {
		m.Set(3, y, MakeFloor())
	}
	start := component.Position{X: 1, Y: 1}
	dist := m.Distances(start)
	if len(dist) != 5 {
		t.Fatalf("expected 5 reachable cells, got %d", len(dist))
	}
	if d := dist[component.Position{X: 3, Y: 3}]; d != 4 {
		t.Errorf("distance to (3,3) = %d, want 4", d)
	}
	if n, ok := m.PathLength(start, component.Position{X: 3, Y: 3}); !ok || n != 4 {
		t.Errorf("PathLength = %d, %v; want 4, true", n, ok)
	}
	if _, ok := m.PathLength(start, component.Position{X: 1, Y: 3}); ok {
		t.Error("wall cell should be unreachable")
	}
	if len(m.Distances(component.Position{})) != 0 {
		t.Error("BFS from a wall should reach nothing")
	}
}
