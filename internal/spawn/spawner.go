// Package spawn places creatures in a room and rolls loot drops.
package spawn

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// Default population and drop settings.
const (
	DefaultMinCreatures = 3
	DefaultMaxCreatures = 7
	DefaultDropChance   = 0.5
)

// Config controls how densely rooms are populated and how often loot drops.
type Config struct {
	MinCreatures int
	MaxCreatures int
	DropChance   float64 // Probability in [0, 1] that a kill drops gear
}

// DefaultConfig returns the standard population settings.
func DefaultConfig() Config {
	return Config{
		MinCreatures: DefaultMinCreatures,
		MaxCreatures: DefaultMaxCreatures,
		DropChance:   DefaultDropChance,
	}
}

// Validate checks the ranges.
func (c Config) Validate() error {
	if c.MinCreatures < 0 || c.MaxCreatures < c.MinCreatures {
		return errors.InternalConsistencyf("creature count range [%d, %d] is invalid",
			c.MinCreatures, c.MaxCreatures)
	}
	if c.DropChance < 0 || c.DropChance > 1 {
		return errors.InternalConsistencyf("drop chance %.2f is outside [0, 1]", c.DropChance)
	}
	return nil
}

// Spawner creates creatures and loot from its registries.
type Spawner struct {
	rng       *rand.Rand
	creatures *gamedata.CreatureRegistry
	gear      *gamedata.GearRegistry
	cfg       Config
}

// New creates a spawner. The registries define what can appear; nothing is
// read from package globals.
func New(rng *rand.Rand, creatures *gamedata.CreatureRegistry, gear *gamedata.GearRegistry, cfg Config) *Spawner {
	return &Spawner{
		rng:       rng,
		creatures: creatures,
		gear:      gear,
		cfg:       cfg,
	}
}

// SpawnCreature adds one random creature on a random unoccupied cell.
func (s *Spawner) SpawnCreature(w *world.World) (*entity.Creature, error) {
	if len(w.FreeCells()) == 0 {
		return nil, errors.InternalConsistency("no free cell to spawn a creature")
	}

	def := s.creatures.SpawnRandom(s.rng)
	if def == nil {
		return nil, errors.InternalConsistency("creature registry has nothing spawnable")
	}

	pos := s.randomPosition(w.Room)
	for w.Occupied(pos) {
		pos = s.randomPosition(w.Room)
	}

	c := entity.NewCreature(def, pos)
	w.AddCreature(c)
	return c, nil
}

// PopulateRoom spawns between MinCreatures and MaxCreatures creatures and
// returns how many were placed.
func (s *Spawner) PopulateRoom(ctx context.Context, w *world.World) (int, error) {
	_, span := telemetry.Tracer("spawn").Start(ctx, "room.populate")
	defer span.End()

	n := s.cfg.MinCreatures + s.rng.Intn(s.cfg.MaxCreatures-s.cfg.MinCreatures+1)
	span.SetAttributes(
		attribute.Int("room.number", w.Rooms),
		attribute.Int("spawn.requested", n),
	)

	for i := 0; i < n; i++ {
		c, err := s.SpawnCreature(w)
		if err != nil {
			span.RecordError(err)
			return i, err
		}
		logger.Component("spawn").WithFields(logrus.Fields{
			"kind": c.Kind,
			"pos":  c.Pos.String(),
		}).Debug("creature spawned")
	}

	logger.Component("spawn").WithFields(logrus.Fields{
		"room":      w.Rooms,
		"creatures": n,
	}).Info("room populated")
	return n, nil
}

// DropGear rolls the drop chance and, on success, places a random item on
// the floor at pos. It returns nil when nothing drops.
func (s *Spawner) DropGear(w *world.World, pos grid.Position) *entity.Gear {
	if s.rng.Float64() >= s.cfg.DropChance {
		return nil
	}
	def := s.gear.DropRandom(s.rng)
	if def == nil {
		return nil
	}

	g := entity.NewGearAt(def, pos)
	w.DropItem(g)
	logger.Component("spawn").WithFields(logrus.Fields{
		"item": g.Kind,
		"pos":  pos.String(),
	}).Debug("loot dropped")
	return g
}

func (s *Spawner) randomPosition(room grid.Room) grid.Position {
	return grid.Pos(s.rng.Intn(room.Rows), s.rng.Intn(room.Cols))
}
