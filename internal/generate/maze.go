// Package generate builds the maze the friend walks through.
package generate

import (
	"math/rand"

	"maze-friend/internal/component"
	"maze-friend/internal/gamemap"
)

// Minimum maze size; smaller grids have no room for a corridor.
const (
	MinWidth  = 5
	MinHeight = 5
)

// Config drives maze generation.
type Config struct {
	MapWidth, MapHeight int
	Rand                *rand.Rand
}

// Generate carves a perfect maze (exactly one path between any two cells)
// with a randomized depth-first backtracker. Even sizes are shrunk by one so
// the outer ring is always wall. The start is the bottom-left cell; the exit
// is the cell farthest from it.
func Generate(cfg *Config) *gamemap.GameMap {
	w, h := oddSize(cfg.MapWidth, MinWidth), oddSize(cfg.MapHeight, MinHeight)
	gmap := gamemap.New(w, h)

	start := component.Position{X: 1, Y: 1}
	carveFrom(gmap, start, cfg.Rand)
	gmap.Start = start

	exit, best := start, -1
	for p, d := range gmap.Distances(start) {
		// Ties broken by position so a seed always yields the same exit.
		if d > best || (d == best && less(p, exit)) {
			exit, best = p, d
		}
	}
	gmap.SetExit(exit)
	return gmap
}

// carveFrom digs corridors two cells at a time, knocking out the wall in
// between, until every odd cell has been visited.
func carveFrom(gmap *gamemap.GameMap, start component.Position, rng *rand.Rand) {
	steps := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
	gmap.Set(start.X, start.Y, gamemap.MakeFloor())
	stack := []component.Position{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var open []component.Position
		for _, s := range steps {
			next := cur.Add(s[0], s[1])
			if next.X < 1 || next.Y < 1 || next.X >= gmap.Width-1 || next.Y >= gmap.Height-1 {
				continue
			}
			if gmap.At(next.X, next.Y).Walkable {
				continue
			}
			open = append(open, next)
		}
		if len(open) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := open[rng.Intn(len(open))]
		gmap.Set((cur.X+next.X)/2, (cur.Y+next.Y)/2, gamemap.MakeFloor())
		gmap.Set(next.X, next.Y, gamemap.MakeFloor())
		stack = append(stack, next)
	}
}

func oddSize(n, minimum int) int {
	if n < minimum {
		n = minimum
	}
	if n%2 == 0 {
		n--
	}
	return n
}

func less(a, b component.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
