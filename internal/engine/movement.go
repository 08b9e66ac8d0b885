package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridcrawl/internal/combat"
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// MoveOutcome classifies a single step.
type MoveOutcome int

const (
	// MoveMoved means the creature changed cell.
	MoveMoved MoveOutcome = iota
	// MoveCombat means the target cell was occupied and an attack was resolved.
	MoveCombat
	// MoveInvalid means the target cell is outside the room; nothing changed.
	MoveInvalid
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case MoveMoved:
		return "moved"
	case MoveCombat:
		return "combat"
	case MoveInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MoveResult is what one step did.
type MoveResult struct {
	Creature  *entity.Creature
	Direction grid.Direction
	From      grid.Position
	To        grid.Position // Equal to From unless Outcome is MoveMoved
	Outcome   MoveOutcome
	Attack    *combat.AttackResult // Set for MoveCombat
	PickedUp  *entity.Gear         // Set when the player stepped onto an item
}

// Mover resolves single-cell steps, turning bumps into attacks.
type Mover struct {
	world  *world.World
	combat *combat.Resolver
}

// NewMover creates a movement resolver over w.
func NewMover(w *world.World, resolver *combat.Resolver) *Mover {
	return &Mover{world: w, combat: resolver}
}

// AttemptMove steps c one cell in dir.
//
// A step into any creature attacks it instead of moving. A step onto a free
// cell moves c there and, for the player, picks up one floor item unless
// the cell is the exit. A step
// off the grid changes nothing and returns an InvalidMove error alongside a
// MoveInvalid result.
func (m *Mover) AttemptMove(ctx context.Context, c *entity.Creature, dir grid.Direction) (*MoveResult, error) {
	result := &MoveResult{
		Creature:  c,
		Direction: dir,
		From:      c.Pos,
		To:        c.Pos,
	}
	if !dir.Valid() {
		result.Outcome = MoveInvalid
		return result, errors.InvalidMovef("%d is not a direction", int(dir))
	}

	target := c.Pos.Add(dir.Delta())

	if occupant := m.world.CreatureAt(target); occupant != nil {
		attack, err := m.combat.Attack(ctx, c, occupant)
		if err != nil {
			return nil, err
		}
		result.Outcome = MoveCombat
		result.Attack = attack
		return result, nil
	}

	if !m.world.Room.Contains(target) {
		result.Outcome = MoveInvalid
		return result, errors.InvalidMovef("%s cannot move %s from %s", c.Name, dir, c.Pos).
			WithMeta("position", c.Pos.String())
	}

	c.Pos = target
	result.To = target
	result.Outcome = MoveMoved

	// The exit resets the room, so nothing is picked up there.
	if m.world.Player.Is(c) && !m.world.Room.IsExit(target) {
		if g := m.world.TakeItemAt(target); g != nil {
			c.Carry(g)
			result.PickedUp = g
			logger.Component("movement").WithFields(logrus.Fields{
				"item": g.Kind,
				"pos":  target.String(),
			}).Debug("item picked up")
		}
	}

	return result, nil
}

// MoveToward steps mover one cell toward target, closing the row gap
// before the column gap.
func (m *Mover) MoveToward(ctx context.Context, mover *entity.Creature, target grid.Position) (*MoveResult, error) {
	dir, err := stepToward(mover.Pos, target)
	if err != nil {
		return nil, err
	}
	return m.AttemptMove(ctx, mover, dir)
}

func stepToward(from, to grid.Position) (grid.Direction, error) {
	d := to.Sub(from)
	switch {
	case d.Row < 0:
		return grid.Up, nil
	case d.Row > 0:
		return grid.Down, nil
	case d.Col < 0:
		return grid.Left, nil
	case d.Col > 0:
		return grid.Right, nil
	default:
		return 0, errors.InternalConsistencyf("creature at %s is already on its target", from)
	}
}
