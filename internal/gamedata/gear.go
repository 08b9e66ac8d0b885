package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// Slot is the body location a piece of gear attaches to.
type Slot string

const (
	SlotNone      Slot = "none"
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotRightHand Slot = "right_hand"
	SlotLeftHand  Slot = "left_hand"
)

// Attachable reports whether gear in this slot can be equipped.
func (s Slot) Attachable() bool {
	switch s {
	case SlotHead, SlotBody, SlotRightHand, SlotLeftHand:
		return true
	default:
		return false
	}
}

// Label returns the slot name for display ("right hand").
func (s Slot) Label() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotBody:
		return "body"
	case SlotRightHand:
		return "right hand"
	case SlotLeftHand:
		return "left hand"
	default:
		return "none"
	}
}

// EffectType is the one-shot effect applied when an item is consumed.
type EffectType string

const (
	EffectNone EffectType = ""
	EffectHeal EffectType = "heal"
)

// Effect is a consumable's effect tag.
type Effect struct {
	Type   EffectType `json:"type"`
	Amount float64    `json:"amount"`
}

// GearDef defines a gear kind loaded from JSON.
type GearDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Glyph       string  `json:"glyph"`
	Color       string  `json:"color"`
	DamageBonus float64 `json:"damageBonus"`
	ArmorBonus  float64 `json:"armorBonus"`
	Slot        Slot    `json:"slot"`
	Usable      bool    `json:"usable,omitempty"`
	Effect      Effect  `json:"effect,omitempty"`
	SpawnWeight int     `json:"spawnWeight"` // Relative drop frequency (0 = never dropped)
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GearDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return 'i'
	}
	return rune(g.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (g *GearDef) TCellColor() tcell.Color {
	return colorOr(g.Color, tcell.ColorSilver)
}

// Validate checks slot and effect consistency.
func (g *GearDef) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gear entry missing id")
	}
	if g.Slot != SlotNone && !g.Slot.Attachable() {
		return fmt.Errorf("gear %s: unknown slot %q", g.ID, g.Slot)
	}
	if g.Usable && g.Slot != SlotNone {
		return fmt.Errorf("gear %s: usable items cannot attach to %s", g.ID, g.Slot)
	}
	if g.Usable && g.Effect.Type == EffectNone {
		return fmt.Errorf("gear %s: usable item has no effect", g.ID)
	}
	if g.SpawnWeight < 0 {
		return fmt.Errorf("gear %s: negative spawn weight", g.ID)
	}
	return nil
}

// GearFile represents the structure of gear.json.
type GearFile struct {
	Gear []GearDef `json:"gear"`
}

// LoadGear loads gear definitions from the embedded gear.json file.
func LoadGear() ([]GearDef, error) {
	return LoadGearFS(dataFS)
}

// LoadGearFS loads and validates gear definitions from fsys.
func LoadGearFS(fsys fs.FS) ([]GearDef, error) {
	file, err := LoadFS[GearFile](fsys, "gear.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Gear {
		if file.Gear[i].Slot == "" {
			file.Gear[i].Slot = SlotNone
		}
		if err := file.Gear[i].Validate(); err != nil {
			return nil, fmt.Errorf("gear.json: %w", err)
		}
	}
	return file.Gear, nil
}
