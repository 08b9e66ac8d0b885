package grid

const (
	// Default room dimensions
	DefaultRows = 5
	DefaultCols = 5
)

// Room is the rectangular play area with its entry and exit tiles.
type Room struct {
	Rows, Cols int
	Entry      Position // Where the player stands after a reset
	Exit       Position // Stepping here leads to a fresh room
	HasExit    bool
}

// DefaultRoom returns the 5x5 room with the entry at the bottom centre and the
// exit at the top centre.
func DefaultRoom() Room {
	return Room{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Entry:   Pos(4, 2),
		Exit:    Pos(0, 2),
		HasExit: true,
	}
}

// Contains returns true if the given position is inside the room.
func (r Room) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < r.Rows && p.Col >= 0 && p.Col < r.Cols
}

// Center returns the centre cell of the room.
func (r Room) Center() Position {
	return Pos(r.Rows/2, r.Cols/2)
}

// Area returns the number of cells in the room.
func (r Room) Area() int {
	return r.Rows * r.Cols
}

// IsExit reports whether p is the room's exit tile.
func (r Room) IsExit(p Position) bool {
	return r.HasExit && p == r.Exit
}

// TileAt returns the floor tile at p.
func (r Room) TileAt(p Position) Tile {
	switch {
	case !r.Contains(p):
		return TileWall
	case r.IsExit(p):
		return TileExit
	case p == r.Entry:
		return TileEntry
	default:
		return TileFloor
	}
}

// Cells returns every position in row-major order.
func (r Room) Cells() []Position {
	cells := make([]Position, 0, r.Area())
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			cells = append(cells, Pos(row, col))
		}
	}
	return cells
}
