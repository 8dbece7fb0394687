package gamemap

import "maze-friend/internal/component"

// GameMap is the maze tile grid. Row 0 is the bottom of the maze so that
// "up" (+Y) matches the friend's command vocabulary.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Start         component.Position
	Exit          component.Position
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsBlocked is the wall lookup used by the friend before every step.
// Anything outside the map counts as wall.
func (m *GameMap) IsBlocked(p component.Position) bool {
	return !m.IsWalkable(p.X, p.Y)
}

// SetExit marks p as the exit tile.
func (m *GameMap) SetExit(p component.Position) {
	m.Set(p.X, p.Y, MakeExit())
	m.Exit = p
}

var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Distances returns the BFS step count from start to every reachable
// walkable cell.
func (m *GameMap) Distances(start component.Position) map[component.Position]int {
	dist := make(map[component.Position]int)
	if !m.IsWalkable(start.X, start.Y) {
		return dist
	}
	dist[start] = 0
	queue := []component.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			next := cur.Add(d[0], d[1])
			if _, seen := dist[next]; seen || !m.IsWalkable(next.X, next.Y) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// PathLength returns the shortest walkable path length from a to b.
func (m *GameMap) PathLength(a, b component.Position) (int, bool) {
	d, ok := m.Distances(a)[b]
	return d, ok
}
