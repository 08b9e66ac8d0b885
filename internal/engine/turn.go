package engine

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
)

// advanceTurn runs one full turn: the player's step, a new room if the step
// reached the exit, then one step toward the player by every living
// aggressive creature. The turn counter moves on only if the player survives.
func (s *Session) advanceTurn(ctx context.Context, dir grid.Direction, report *TurnReport) error {
	ctx, span := telemetry.Tracer("engine").Start(ctx, "turn.advance")
	defer span.End()

	w := s.world
	player := w.Player
	span.SetAttributes(
		attribute.Int("turn", w.Turn),
		attribute.String("direction", dir.String()),
		attribute.String("player.pos", player.Pos.String()),
	)

	move, err := s.mover.AttemptMove(ctx, player.Creature, dir)
	switch {
	case errors.IsInvalidMove(err):
		report.Rejected = err
	case err != nil:
		span.RecordError(err)
		return err
	}
	report.PlayerMove = move

	if move.Attack != nil && move.Attack.PlayerDied {
		report.Outcome = OutcomeSessionEnded
		return nil
	}

	if move.Outcome == MoveMoved && w.Room.IsExit(player.Pos) {
		w.Reset()
		if _, err := s.spawner.PopulateRoom(ctx, w); err != nil {
			span.RecordError(err)
			return err
		}
		report.NewRoom = true
		logger.Component("engine").WithFields(logrus.Fields{
			"room": w.Rooms,
			"turn": w.Turn,
		}).Info("entered a new room")
	}

	for _, c := range w.Aggressive() {
		if !w.Contains(c) || c.IsDead() {
			continue
		}
		step, err := s.mover.MoveToward(ctx, c, player.Pos)
		if err != nil {
			span.RecordError(err)
			return err
		}
		report.Reactions = append(report.Reactions, step)
		if step.Attack != nil && step.Attack.PlayerDied {
			report.Outcome = OutcomeSessionEnded
			return nil
		}
	}

	w.Turn++
	span.SetAttributes(attribute.Int("reactions", len(report.Reactions)))
	return nil
}
