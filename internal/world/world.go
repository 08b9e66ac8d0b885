// Package world holds the state of one room: who is where, what lies on the
// floor, and how many turns have passed.
package world

import (
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// World owns every entity of a session. The player is always in Creatures.
type World struct {
	Turn       int
	Player     *entity.Player
	Creatures  []*entity.Creature // Includes the player; order drives reactions
	FloorItems []*entity.Gear
	Room       grid.Room
	Rooms      int // Rooms entered so far, starting at 1
}

// New creates a world with only the player, standing on the room's entry tile.
func New(room grid.Room, player *entity.Player) *World {
	w := &World{
		Player: player,
		Room:   room,
	}
	w.Reset()
	return w
}

// Reset clears the room down to the player and moves the player to the entry tile.
// The turn counter and the player's stats carry over.
func (w *World) Reset() {
	w.Creatures = []*entity.Creature{w.Player.Creature}
	w.FloorItems = nil
	w.Player.Pos = w.Room.Entry
	w.Rooms++
}

// AddCreature appends c to the creature list.
func (w *World) AddCreature(c *entity.Creature) {
	w.Creatures = append(w.Creatures, c)
}

// CreatureAt returns the creature standing at p, or nil.
func (w *World) CreatureAt(p grid.Position) *entity.Creature {
	for _, c := range w.Creatures {
		if c.Pos == p {
			return c
		}
	}
	return nil
}

// Occupied reports whether any creature stands at p.
func (w *World) Occupied(p grid.Position) bool {
	return w.CreatureAt(p) != nil
}

// Contains reports whether c is still in the world.
func (w *World) Contains(c *entity.Creature) bool {
	for _, other := range w.Creatures {
		if other == c {
			return true
		}
	}
	return false
}

// RemoveCreature takes c out of the world. The player is never removed.
func (w *World) RemoveCreature(c *entity.Creature) bool {
	if w.Player.Is(c) {
		return false
	}
	for i, other := range w.Creatures {
		if other == c {
			w.Creatures = append(w.Creatures[:i:i], w.Creatures[i+1:]...)
			return true
		}
	}
	return false
}

// FreeCells returns every in-room position no creature stands on.
func (w *World) FreeCells() []grid.Position {
	var free []grid.Position
	for _, p := range w.Room.Cells() {
		if !w.Occupied(p) {
			free = append(free, p)
		}
	}
	return free
}

// Aggressive returns the creatures, other than the player, that hunt the
// player, in collection order. The slice is a copy.
func (w *World) Aggressive() []*entity.Creature {
	var out []*entity.Creature
	for _, c := range w.Creatures {
		if c.Aggressive && !w.Player.Is(c) {
			out = append(out, c)
		}
	}
	return out
}

// DropItem places g on the floor at its position.
func (w *World) DropItem(g *entity.Gear) {
	w.FloorItems = append(w.FloorItems, g)
}

// ItemsAt returns the floor items at p in drop order.
func (w *World) ItemsAt(p grid.Position) []*entity.Gear {
	var out []*entity.Gear
	for _, g := range w.FloorItems {
		if g.Pos == p {
			out = append(out, g)
		}
	}
	return out
}

// TakeItemAt removes and returns the first floor item at p, or nil.
func (w *World) TakeItemAt(p grid.Position) *entity.Gear {
	for i, g := range w.FloorItems {
		if g.Pos == p {
			w.FloorItems = append(w.FloorItems[:i:i], w.FloorItems[i+1:]...)
			return g
		}
	}
	return nil
}
