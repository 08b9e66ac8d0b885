package grid

// Tile represents a single floor cell.
type Tile rune

const (
	// TileWall is anything outside the room.
	TileWall Tile = '#'
	// TileFloor is an ordinary walkable cell.
	TileFloor Tile = '.'
	// TileEntry marks where the player enters a room.
	TileEntry Tile = '1'
	// TileExit leads to the next room.
	TileExit Tile = '9'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
