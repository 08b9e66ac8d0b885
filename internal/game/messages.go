package game

import (
	"fmt"

	"github.com/samdwyer/gridcrawl/internal/combat"
	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/ui"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// Describe turns a turn report into message lines, oldest first.
func Describe(report *engine.TurnReport) []string {
	var lines []string

	switch report.Command.(type) {
	case engine.Move:
		lines = describeTurn(report)
	case engine.ShowInventory:
		lines = listing("Inventory", report.Listing)
	case engine.ShowEquipment:
		lines = listing("Equipped", report.Listing)
	case engine.Equip:
		lines = append(lines, fmt.Sprintf("You equip the %s.", report.Item.Name))
	case engine.Unequip:
		lines = append(lines, fmt.Sprintf("You take off the %s.", report.Item.Name))
	case engine.Consume:
		lines = append(lines, fmt.Sprintf("You use the %s.", report.Item.Name))
	}

	if report.Ended() {
		lines = append(lines, "You have died.")
	}
	return lines
}

func describeTurn(report *engine.TurnReport) []string {
	var lines []string

	if report.Rejected != nil {
		lines = append(lines, "You can't go that way.")
	}
	if m := report.PlayerMove; m != nil && m.Attack != nil {
		lines = append(lines, describeAttack(m.Attack)...)
	}
	if g := report.Pickup(); g != nil {
		lines = append(lines, fmt.Sprintf("You pick up the %s.", g.Name))
	}
	if report.NewRoom {
		lines = append(lines, "You step through the door into a new room.")
	}

	for _, m := range report.Reactions {
		switch m.Outcome {
		case engine.MoveMoved:
			lines = append(lines, fmt.Sprintf("The %s moves towards you.", m.Creature.Name))
		case engine.MoveCombat:
			lines = append(lines, describeAttack(m.Attack)...)
		}
	}
	return lines
}

func describeAttack(a *combat.AttackResult) []string {
	var lines []string
	attacker, defender := subject(a.Attacker), object(a.Defender)

	lines = append(lines, fmt.Sprintf("%s %s %s for %s and %s %s back.",
		attacker, verb(a.Attacker, "hit", "hits"), defender, ui.FormatStat(a.DamageDealt()),
		takes(a.Attacker), ui.FormatStat(a.DamageTaken())))

	if a.DefenderDied {
		lines = append(lines, fmt.Sprintf("The %s dies.", a.Defender.Name))
	}
	if a.Dropped != nil {
		lines = append(lines, fmt.Sprintf("The %s drops a %s.", a.Defender.Name, a.Dropped.Name))
	}
	return lines
}

func isPlayer(c *entity.Creature) bool {
	return c.Kind == gamedata.PlayerID
}

func subject(c *entity.Creature) string {
	if isPlayer(c) {
		return "You"
	}
	return "The " + c.Name
}

func object(c *entity.Creature) string {
	if isPlayer(c) {
		return "you"
	}
	return "the " + c.Name
}

func verb(c *entity.Creature, second, third string) string {
	if isPlayer(c) {
		return second
	}
	return third
}

func takes(c *entity.Creature) string {
	if isPlayer(c) {
		return "take"
	}
	return "takes"
}

func listing(title string, items []world.ItemLine) []string {
	if len(items) == 0 {
		return []string{title + ": nothing."}
	}
	lines := []string{title + ":"}
	for _, item := range items {
		lines = append(lines, "  "+ui.FormatItemLine(item))
	}
	return lines
}

// GameOver is the final message block.
func GameOver(snap engine.Snapshot) []string {
	return []string{
		fmt.Sprintf("%s died on turn %d in room %d.", snap.Stats.Name, snap.Stats.Turn, snap.Stats.Room),
		fmt.Sprintf("Final score: %d", snap.Stats.Score),
	}
}
