// Package entity provides the creatures, the player, and the gear they carry.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// Creature is anything that occupies a cell and can fight.
type Creature struct {
	ID         string
	Def        *gamedata.CreatureDef // Definition the creature was built from (nil for hand-built creatures)
	Kind       string                // Creature kind (e.g., "goblin")
	Name       string                // Display name
	Symbol     rune                  // Display symbol
	Aggressive bool                  // Steps toward the player every turn
	Pos        grid.Position

	// Combat stats, including bonuses from equipped gear
	HP     float64
	Damage float64
	Armor  float64
	Score  int

	Inventory []*Gear // Carried, not equipped, in pickup order
	Equipped  []*Gear // At most one per slot, in equip order
}

// NewCreature creates a creature from a data-driven definition at the given position.
func NewCreature(def *gamedata.CreatureDef, pos grid.Position) *Creature {
	return &Creature{
		ID:         uuid.NewString(),
		Def:        def,
		Kind:       def.ID,
		Name:       def.Name,
		Symbol:     def.GlyphRune(),
		Aggressive: def.Aggressive,
		Pos:        pos,
		HP:         def.HP,
		Damage:     def.Damage,
		Armor:      def.Armor,
	}
}

// Color returns the tcell color for this creature.
func (c *Creature) Color() tcell.Color {
	if c.Def != nil {
		return c.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// IsDead reports whether hp has dropped below the death threshold.
// A creature at exactly zero hp is still standing.
func (c *Creature) IsDead() bool {
	return c.HP < 0
}

// Heal adds hp. There is no maximum.
func (c *Creature) Heal(amount float64) {
	c.HP += amount
}

// String returns the creature's display symbol.
func (c *Creature) String() string {
	return string(c.Symbol)
}
