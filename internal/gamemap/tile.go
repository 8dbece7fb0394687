package gamemap

// TileKind identifies the type of a maze cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileExit
)

// Tile holds the kind of one maze cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeFloor returns a passable corridor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}

// MakeExit returns the maze exit. The friend wins by standing on it.
func MakeExit() Tile {
	return Tile{Kind: TileExit, Walkable: true}
}
