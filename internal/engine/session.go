// Package engine runs a game session: it owns the world, applies player
// commands, and lets the creatures react.
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridcrawl/internal/combat"
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/spawn"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// Session is one playthrough. It is not safe for concurrent use.
type Session struct {
	seed    int64
	world   *world.World
	spawner *spawn.Spawner
	mover   *Mover
	ended   bool
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	world.Snapshot
	Ended bool
	Seed  int64
}

// Option customizes NewSession.
type Option func(*options)

type options struct {
	rng       *rand.Rand
	creatures *gamedata.CreatureRegistry
	gear      *gamedata.GearRegistry
	room      *grid.Room
	populate  bool
}

// WithRand supplies the random source, overriding Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithCreatures supplies the creature definitions. The registry must contain
// the player definition.
func WithCreatures(r *gamedata.CreatureRegistry) Option {
	return func(o *options) { o.creatures = r }
}

// WithGear supplies the gear definitions used for loot and the starting kit.
func WithGear(r *gamedata.GearRegistry) Option {
	return func(o *options) { o.gear = r }
}

// WithRoom replaces the default 5x5 room.
func WithRoom(room grid.Room) Option {
	return func(o *options) { o.room = &room }
}

// WithEmptyRoom skips populating the first room.
func WithEmptyRoom() Option {
	return func(o *options) { o.populate = false }
}

// NewSession creates the player, equips the starting gear, and populates the
// first room.
func NewSession(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	ctx, span := telemetry.Tracer("engine").Start(ctx, "session.new")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	o := options{populate: true}
	for _, opt := range opts {
		opt(&o)
	}

	seed := cfg.Seed
	if o.rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}

	if o.creatures == nil {
		r, err := gamedata.LoadCreatureRegistry()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load creatures")
		}
		o.creatures = r
	}
	if o.gear == nil {
		r, err := gamedata.LoadGearRegistry()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load gear")
		}
		o.gear = r
	}
	room := grid.DefaultRoom()
	if o.room != nil {
		room = *o.room
	}

	playerDef, err := o.creatures.Player()
	if err != nil {
		return nil, errors.Wrap(err, "no player definition")
	}
	player := entity.NewPlayer(playerDef, cfg.PlayerName, room.Entry)
	if err := equipStartingGear(player, o.gear, cfg.StartingGear); err != nil {
		span.RecordError(err)
		return nil, err
	}

	w := world.New(room, player)
	spawner := spawn.New(o.rng, o.creatures, o.gear, cfg.spawnConfig())
	s := &Session{
		seed:    seed,
		world:   w,
		spawner: spawner,
		mover:   NewMover(w, combat.NewResolver(w, spawner)),
	}

	if o.populate {
		if _, err := spawner.PopulateRoom(ctx, w); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.Int64("session.seed", seed),
		attribute.Int("room.creatures", len(w.Creatures)-1),
	)
	logger.Component("engine").WithFields(logrus.Fields{
		"seed":   seed,
		"player": player.Name,
	}).Info("session started")

	return s, nil
}

func equipStartingGear(p *entity.Player, gear *gamedata.GearRegistry, kinds []string) error {
	for _, kind := range kinds {
		def := gear.GetByID(kind)
		if def == nil {
			return errors.InternalConsistencyf("unknown starting gear %q", kind)
		}
		g := entity.NewGear(def)
		p.Carry(g)
		if def.Slot.Attachable() {
			if err := p.Equip(g); err != nil {
				return errors.Wrap(err, "failed to equip starting gear")
			}
		}
	}
	return nil
}

// Submit applies one command.
//
// Only Move takes a turn. Recoverable mistakes with inventory commands are
// returned as errors and leave the session untouched. A step off the grid is
// not an error: it is reported in TurnReport.Rejected and the creatures still
// react. Once the player has died every command returns a SessionEnded error.
func (s *Session) Submit(ctx context.Context, cmd Command) (*TurnReport, error) {
	if s.ended {
		return nil, errors.SessionEnded("the session has ended")
	}

	report := &TurnReport{Command: cmd, Outcome: OutcomeContinue}
	p := s.world.Player

	switch c := cmd.(type) {
	case Move:
		if err := s.advanceTurn(ctx, c.Direction, report); err != nil {
			return nil, err
		}
	case ShowInventory:
		report.Listing = s.world.Snapshot().Inventory
	case ShowEquipment:
		report.Listing = s.world.Snapshot().Equipment
	case Equip:
		g, ok := p.InventoryItem(c.Index)
		if !ok {
			return nil, errors.InvalidEquipf("no inventory item %d", c.Index)
		}
		if err := p.Equip(g); err != nil {
			return nil, err
		}
		report.Item = g
	case Unequip:
		g, ok := p.EquippedItem(c.Index)
		if !ok {
			return nil, errors.NotEquippedf("no equipped item %d", c.Index)
		}
		if err := p.Unequip(g); err != nil {
			return nil, err
		}
		report.Item = g
	case Consume:
		g, ok := p.InventoryItem(c.Index)
		if !ok {
			return nil, errors.InvalidItemf("no inventory item %d", c.Index)
		}
		if err := p.Consume(g); err != nil {
			return nil, err
		}
		report.Item = g
	default:
		return nil, errors.InvalidCommandf("unsupported command %v", cmd)
	}

	report.Turn = s.world.Turn
	if report.Ended() {
		s.ended = true
		logger.Component("engine").WithFields(logrus.Fields{
			"turn":  s.world.Turn,
			"score": p.Score,
			"rooms": s.world.Rooms,
		}).Info("player died")
	}
	return report, nil
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Snapshot: s.world.Snapshot(),
		Ended:    s.ended,
		Seed:     s.seed,
	}
}

// Ended reports whether the player has died.
func (s *Session) Ended() bool {
	return s.ended
}

// Seed returns the seed the random source was built from. With WithRand it is
// whatever Config.Seed held.
func (s *Session) Seed() int64 {
	return s.seed
}
