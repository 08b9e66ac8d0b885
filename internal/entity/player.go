package entity

import (
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// DefaultPlayerName is used when no name is configured.
const DefaultPlayerName = "Adventurer"

// Player is the creature the user controls.
// The embedded Creature is the one stored in the world's creature list and
// carries the player's name.
type Player struct {
	*Creature
}

// NewPlayer creates the player from its base definition at the given position.
func NewPlayer(def *gamedata.CreatureDef, name string, pos grid.Position) *Player {
	if name == "" {
		name = DefaultPlayerName
	}
	c := NewCreature(def, pos)
	c.Name = name
	return &Player{Creature: c}
}

// Is reports whether c is the player's creature.
func (p *Player) Is(c *Creature) bool {
	return p != nil && p.Creature == c
}
