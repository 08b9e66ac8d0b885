// Package grid provides room geometry: positions, directions, bounds, and tiles.
package grid

import "fmt"

// Position is a cell in the room, addressed row first.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by the given delta.
func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the delta that moves other onto p.
func (p Position) Sub(other Position) Delta {
	return Delta{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// String formats the position as (row,col).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Delta is a row/column offset.
type Delta struct {
	Row, Col int
}
