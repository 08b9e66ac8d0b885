package grid

import "fmt"

// Direction is one of the four single-step moves.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists every direction in key order (w, a, s, d).
var Directions = []Direction{Up, Left, Down, Right}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Delta {
	switch d {
	case Up:
		return Delta{Row: -1}
	case Left:
		return Delta{Col: -1}
	case Down:
		return Delta{Row: 1}
	case Right:
		return Delta{Col: 1}
	default:
		return Delta{}
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection accepts a direction name or its wasd key.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "w", "up":
		return Up, nil
	case "a", "left":
		return Left, nil
	case "s", "down":
		return Down, nil
	case "d", "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
