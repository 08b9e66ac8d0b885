package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// Gear is a single item instance. It lives in exactly one place at a time:
// the floor, a creature's inventory, or a creature's equipped set.
type Gear struct {
	ID          string
	Def         *gamedata.GearDef
	Kind        string
	Name        string
	Symbol      rune
	DamageBonus float64
	ArmorBonus  float64
	Slot        gamedata.Slot
	Usable      bool
	Effect      gamedata.Effect
	Pos         grid.Position // Meaningful only while the gear is on the floor
}

// NewGear creates a gear instance from its definition.
func NewGear(def *gamedata.GearDef) *Gear {
	return &Gear{
		ID:          uuid.NewString(),
		Def:         def,
		Kind:        def.ID,
		Name:        def.Name,
		Symbol:      def.GlyphRune(),
		DamageBonus: def.DamageBonus,
		ArmorBonus:  def.ArmorBonus,
		Slot:        def.Slot,
		Usable:      def.Usable,
		Effect:      def.Effect,
	}
}

// NewGearAt creates a gear instance lying on the floor at pos.
func NewGearAt(def *gamedata.GearDef, pos grid.Position) *Gear {
	g := NewGear(def)
	g.Pos = pos
	return g
}

// Color returns the tcell color for this item.
func (g *Gear) Color() tcell.Color {
	if g.Def != nil {
		return g.Def.TCellColor()
	}
	return tcell.ColorSilver
}

// String returns the item's name.
func (g *Gear) String() string {
	return g.Name
}
