// Package combat resolves melee exchanges between creatures.
package combat

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// LootDropper places loot where a creature fell. The spawner implements it.
type LootDropper interface {
	DropGear(w *world.World, pos grid.Position) *entity.Gear
}

// AttackResult contains the outcome of one exchange.
type AttackResult struct {
	Attacker *entity.Creature
	Defender *entity.Creature

	AttackerHPBefore float64
	AttackerHPAfter  float64
	DefenderHPBefore float64
	DefenderHPAfter  float64

	DefenderDied   bool         // Defender dropped below zero and left the world
	AttackerScored bool         // Attacker's score went up
	PlayerDied     bool         // Player hp is below zero after the exchange
	Dropped        *entity.Gear // Loot left by the defender, if any
}

// DamageDealt returns how much hp the defender lost.
func (r *AttackResult) DamageDealt() float64 {
	return r.DefenderHPBefore - r.DefenderHPAfter
}

// DamageTaken returns how much hp the attacker lost.
func (r *AttackResult) DamageTaken() float64 {
	return r.AttackerHPBefore - r.AttackerHPAfter
}

// Resolver applies combat to a world.
type Resolver struct {
	world *world.World
	loot  LootDropper
}

// NewResolver creates a resolver for w. loot may be nil, in which case
// nothing ever drops.
func NewResolver(w *world.World, loot LootDropper) *Resolver {
	return &Resolver{world: w, loot: loot}
}

// Attack resolves a simultaneous exchange. Both sides take damage computed
// from the values held before the attack: each loses the other's damage
// divided by its own armor.
//
// A defender that drops below zero leaves the world, may drop loot, and
// earns the attacker a point. The player is the exception: it stays in the
// world and the result reports PlayerDied instead.
func (r *Resolver) Attack(ctx context.Context, attacker, defender *entity.Creature) (*AttackResult, error) {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.attack")
	defer span.End()

	if attacker.Armor <= 0 || defender.Armor <= 0 {
		err := errors.InternalConsistencyf("non-positive armor in combat: %s %.2f, %s %.2f",
			attacker.Name, attacker.Armor, defender.Name, defender.Armor)
		span.RecordError(err)
		return nil, err
	}

	result := &AttackResult{
		Attacker:         attacker,
		Defender:         defender,
		AttackerHPBefore: attacker.HP,
		DefenderHPBefore: defender.HP,
	}

	taken := defender.Damage / attacker.Armor
	dealt := attacker.Damage / defender.Armor
	attacker.HP -= taken
	defender.HP -= dealt

	result.AttackerHPAfter = attacker.HP
	result.DefenderHPAfter = defender.HP

	player := r.world.Player
	if defender.IsDead() && !player.Is(defender) {
		pos := defender.Pos
		if !r.world.RemoveCreature(defender) {
			err := errors.InternalConsistencyf("%s died but was not in the world", defender.Name)
			span.RecordError(err)
			return nil, err
		}
		result.DefenderDied = true
		if r.loot != nil {
			result.Dropped = r.loot.DropGear(r.world, pos)
		}
		attacker.Score++
		result.AttackerScored = true
	}
	result.PlayerDied = player.IsDead()

	span.SetAttributes(
		attribute.String("attacker.kind", attacker.Kind),
		attribute.String("defender.kind", defender.Kind),
		attribute.String("attacker.pos", attacker.Pos.String()),
		attribute.String("defender.pos", defender.Pos.String()),
		attribute.Float64("attacker.hp", attacker.HP),
		attribute.Float64("defender.hp", defender.HP),
		attribute.Bool("defender.died", result.DefenderDied),
		attribute.Bool("player.died", result.PlayerDied),
	)

	logger.Component("combat").WithFields(logrus.Fields{
		"attacker":   attacker.Kind,
		"defender":   defender.Kind,
		"dealt":      dealt,
		"taken":      taken,
		"killed":     result.DefenderDied,
		"playerDied": result.PlayerDied,
	}).Debug("attack resolved")

	return result, nil
}
