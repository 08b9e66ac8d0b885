package entity

import (
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
)

// Carry appends g to the creature's inventory.
func (c *Creature) Carry(g *Gear) {
	c.Inventory = append(c.Inventory, g)
}

// SlotOccupant returns the equipped gear in slot, or nil.
func (c *Creature) SlotOccupant(slot gamedata.Slot) *Gear {
	for _, g := range c.Equipped {
		if g.Slot == slot {
			return g
		}
	}
	return nil
}

// InventoryItem returns the inventory entry at index.
func (c *Creature) InventoryItem(index int) (*Gear, bool) {
	if index < 0 || index >= len(c.Inventory) {
		return nil, false
	}
	return c.Inventory[index], true
}

// EquippedItem returns the equipped entry at index.
func (c *Creature) EquippedItem(index int) (*Gear, bool) {
	if index < 0 || index >= len(c.Equipped) {
		return nil, false
	}
	return c.Equipped[index], true
}

// Equip moves g from the inventory to its slot and applies its bonuses.
// On error nothing changes.
func (c *Creature) Equip(g *Gear) error {
	idx := indexOf(c.Inventory, g)
	if idx < 0 {
		return errors.InvalidEquipf("%s is not in the inventory", g.Name)
	}
	if !g.Slot.Attachable() {
		return errors.InvalidEquipf("cannot equip the %s", g.Name)
	}
	if held := c.SlotOccupant(g.Slot); held != nil {
		return errors.InvalidEquipf("cannot equip the %s: %s slot already holds the %s",
			g.Name, g.Slot.Label(), held.Name).WithMeta("slot", string(g.Slot))
	}

	c.Inventory = removeAt(c.Inventory, idx)
	c.Equipped = append(c.Equipped, g)
	c.Damage += g.DamageBonus
	c.Armor += g.ArmorBonus
	return nil
}

// Unequip moves g back to the inventory and removes its bonuses.
func (c *Creature) Unequip(g *Gear) error {
	idx := indexOf(c.Equipped, g)
	if idx < 0 {
		return errors.NotEquippedf("the %s is not equipped", g.Name)
	}

	c.Equipped = removeAt(c.Equipped, idx)
	c.Inventory = append(c.Inventory, g)
	c.Damage -= g.DamageBonus
	c.Armor -= g.ArmorBonus
	return nil
}

// Consume removes a usable item from the inventory and applies its effect.
// The item is discarded.
func (c *Creature) Consume(g *Gear) error {
	idx := indexOf(c.Inventory, g)
	if idx < 0 {
		return errors.InvalidItemf("the %s is not in the inventory", g.Name)
	}
	if !g.Usable {
		return errors.InvalidItemf("the %s cannot be consumed", g.Name)
	}

	switch g.Effect.Type {
	case gamedata.EffectHeal:
		c.Heal(g.Effect.Amount)
	default:
		return errors.InvalidItemf("the %s has no known effect", g.Name)
	}

	c.Inventory = removeAt(c.Inventory, idx)
	return nil
}

func indexOf(items []*Gear, g *Gear) int {
	for i, item := range items {
		if item == g {
			return i
		}
	}
	return -1
}

// removeAt returns items without the element at i, preserving order.
func removeAt(items []*Gear, i int) []*Gear {
	out := make([]*Gear, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
