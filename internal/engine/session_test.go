package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

type SessionTestSuite struct {
	suite.Suite
	ctx     context.Context
	session *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// SetupTest starts every test in an empty room with no starting kit and
// loot that always drops.
func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	cfg := DefaultConfig()
	cfg.StartingGear = nil
	cfg.DropChance = 1

	session, err := NewSession(s.ctx, cfg,
		WithRand(rand.New(rand.NewSource(1))),
		WithEmptyRoom(),
	)
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) spawn(kind string, pos grid.Position) *entity.Creature {
	def := gamedata.MustLoadCreatureRegistry().GetByID(kind)
	s.Require().NotNil(def, kind)
	c := entity.NewCreature(def, pos)
	s.session.world.AddCreature(c)
	return c
}

func (s *SessionTestSuite) gear(kind string) *gamedata.GearDef {
	def := gamedata.MustLoadGearRegistry().GetByID(kind)
	s.Require().NotNil(def, kind)
	return def
}

func (s *SessionTestSuite) move(dir grid.Direction) *TurnReport {
	report, err := s.session.Submit(s.ctx, Move{Direction: dir})
	s.Require().NoError(err)
	return report
}

func (s *SessionTestSuite) player() *entity.Player {
	return s.session.world.Player
}

func (s *SessionTestSuite) TestWASDLoop() {
	s.Equal(grid.Pos(4, 2), s.player().Pos)

	steps := []struct {
		dir  grid.Direction
		want grid.Position
	}{
		{grid.Up, grid.Pos(3, 2)},
		{grid.Left, grid.Pos(3, 1)},
		{grid.Down, grid.Pos(4, 1)},
		{grid.Right, grid.Pos(4, 2)},
	}
	for i, step := range steps {
		report := s.move(step.dir)
		s.Equal(step.want, s.player().Pos, "step %d", i)
		s.Equal(MoveMoved, report.PlayerMove.Outcome)
		s.Equal(i+1, report.Turn)
	}
}

func (s *SessionTestSuite) TestPickupTakesOneItem() {
	w := s.session.world
	sword := entity.NewGearAt(s.gear("sword"), grid.Pos(3, 2))
	helm := entity.NewGearAt(s.gear("helm"), grid.Pos(3, 2))
	w.DropItem(sword)
	w.DropItem(helm)

	report := s.move(grid.Up)

	s.Same(sword, report.Pickup())
	s.Equal([]*entity.Gear{sword}, s.player().Inventory)
	s.Equal([]*entity.Gear{helm}, w.FloorItems)

	s.move(grid.Down)
	report = s.move(grid.Up)
	s.Same(helm, report.Pickup())
	s.Empty(w.FloorItems)
}

func (s *SessionTestSuite) TestOffGridMoveIsRejectedButTurnRuns() {
	gob := s.spawn("goblin", grid.Pos(0, 0))

	report := s.move(grid.Down)

	s.True(errors.IsInvalidMove(report.Rejected))
	s.Equal(MoveInvalid, report.PlayerMove.Outcome)
	s.Equal(grid.Pos(4, 2), s.player().Pos)
	s.Equal(1, report.Turn)
	s.Require().Len(report.Reactions, 1)
	s.Equal(grid.Pos(1, 0), gob.Pos)
}

func (s *SessionTestSuite) TestBumpAttacks() {
	troll := s.spawn("troll", grid.Pos(3, 2))

	report := s.move(grid.Up)

	s.Equal(MoveCombat, report.PlayerMove.Outcome)
	s.Equal(grid.Pos(4, 2), s.player().Pos)
	s.Equal(7.0, s.player().HP)
	s.Equal(29.25, troll.HP)
	s.Len(report.Attacks(), 1)
	s.Empty(report.Reactions, "trolls are passive")
}

func (s *SessionTestSuite) TestKillDropsLootAndScores() {
	gob := s.spawn("goblin", grid.Pos(3, 2))
	gob.HP = 0.5

	report := s.move(grid.Up)

	attack := report.PlayerMove.Attack
	s.Require().NotNil(attack)
	s.True(attack.DefenderDied)
	s.Equal(1, s.player().Score)
	s.False(s.session.world.Contains(gob))
	s.Require().NotNil(attack.Dropped)
	s.Equal(grid.Pos(3, 2), attack.Dropped.Pos)
	s.Empty(report.Reactions, "a slain goblin does not react")

	report = s.move(grid.Up)
	s.Same(attack.Dropped, report.Pickup())
}

func (s *SessionTestSuite) TestDeathEndsSession() {
	gob := s.spawn("goblin", grid.Pos(3, 2))
	gob.HP, gob.Damage, gob.Armor = s.player().HP, s.player().Damage, s.player().Armor

	var report *TurnReport
	for i := 0; i < 7 && !s.session.Ended(); i++ {
		report = s.move(grid.Up)
	}

	s.Require().NotNil(report)
	s.Equal(OutcomeSessionEnded, report.Outcome)
	s.True(s.player().IsDead())
	s.True(s.session.world.Contains(s.player().Creature))
	s.True(s.session.Snapshot().Ended)

	turn := s.session.world.Turn
	_, err := s.session.Submit(s.ctx, Move{Direction: grid.Up})
	s.True(errors.IsSessionEnded(err))
	_, err = s.session.Submit(s.ctx, ShowInventory{})
	s.True(errors.IsSessionEnded(err))
	s.Equal(turn, s.session.world.Turn)
}

func (s *SessionTestSuite) TestDeathStopsReactions() {
	s.player().HP = 1
	first := s.spawn("goblin", grid.Pos(3, 1))
	second := s.spawn("goblin", grid.Pos(0, 4))

	report := s.move(grid.Left)

	s.Equal(OutcomeSessionEnded, report.Outcome)
	s.Require().Len(report.Reactions, 1)
	s.Same(first, report.Reactions[0].Creature)
	s.Equal(MoveCombat, report.Reactions[0].Outcome)
	s.Equal(grid.Pos(4, 1), s.player().Pos)
	s.Equal(grid.Pos(3, 1), first.Pos)
	s.Equal(grid.Pos(0, 4), second.Pos)
	s.Equal(0, report.Turn)
}

func (s *SessionTestSuite) TestExitLeadsToNewRoom() {
	s.player().Pos = grid.Pos(1, 2)
	s.player().Score = 2
	old := s.spawn("troll", grid.Pos(3, 3))

	report := s.move(grid.Up)

	s.True(report.NewRoom)
	w := s.session.world
	s.Equal(2, w.Rooms)
	s.Equal(w.Room.Entry, s.player().Pos)
	s.Equal(2, s.player().Score)
	s.False(w.Contains(old))
	s.GreaterOrEqual(len(w.Creatures)-1, 3)
	s.LessOrEqual(len(w.Creatures)-1, 7)
	s.Equal(1, report.Turn)
}

func (s *SessionTestSuite) TestItemOnExitIsLeftBehind() {
	w := s.session.world
	s.player().Pos = grid.Pos(1, 2)
	w.DropItem(entity.NewGearAt(s.gear("helm"), w.Room.Exit))

	report := s.move(grid.Up)

	s.True(report.NewRoom)
	s.Nil(report.Pickup())
	s.Empty(s.player().Inventory)
	s.Empty(w.FloorItems)
}

func (s *SessionTestSuite) TestDeadAttackerStopsReacting() {
	gob := s.spawn("goblin", grid.Pos(2, 2))
	gob.HP = 0.5

	report := s.move(grid.Left)
	s.Require().Len(report.Reactions, 1)
	s.Equal(grid.Pos(3, 2), gob.Pos)

	report = s.move(grid.Right)
	s.Require().Len(report.Reactions, 1)
	s.Equal(MoveCombat, report.Reactions[0].Outcome)
	s.Equal(-1.0, gob.HP)
	s.Equal(8.5, s.player().HP)
	s.True(s.session.world.Contains(gob), "only defenders are removed")

	report = s.move(grid.Left)
	s.Empty(report.Reactions)
	s.Equal(grid.Pos(3, 2), gob.Pos)
	s.Equal(3, report.Turn)
}

func (s *SessionTestSuite) TestInventoryCommandsAreFree() {
	p := s.player()
	sword := entity.NewGear(s.gear("sword"))
	spear := entity.NewGear(s.gear("spear"))
	potion := entity.NewGear(s.gear("health_potion"))
	p.Carry(sword)
	p.Carry(spear)
	p.Carry(potion)
	gob := s.spawn("goblin", grid.Pos(0, 0))

	report, err := s.session.Submit(s.ctx, Equip{Index: 0})
	s.Require().NoError(err)
	s.Same(sword, report.Item)
	s.Equal(8.0, p.Damage)

	_, err = s.session.Submit(s.ctx, Equip{Index: 0})
	s.True(errors.IsInvalidEquip(err), "spear needs the occupied right hand")
	s.Equal(8.0, p.Damage)

	_, err = s.session.Submit(s.ctx, Equip{Index: 9})
	s.True(errors.IsInvalidEquip(err))

	_, err = s.session.Submit(s.ctx, Unequip{Index: 3})
	s.True(errors.IsNotEquipped(err))

	_, err = s.session.Submit(s.ctx, Consume{Index: 0})
	s.True(errors.IsInvalidItem(err), "spear is not consumable")

	p.HP = 4
	report, err = s.session.Submit(s.ctx, Consume{Index: 1})
	s.Require().NoError(err)
	s.Same(potion, report.Item)
	s.Equal(14.0, p.HP)

	report, err = s.session.Submit(s.ctx, ShowEquipment{})
	s.Require().NoError(err)
	s.Require().Len(report.Listing, 1)
	s.Equal("sword", report.Listing[0].Name)

	report, err = s.session.Submit(s.ctx, Unequip{Index: 0})
	s.Require().NoError(err)
	s.Equal(3.0, p.Damage)

	report, err = s.session.Submit(s.ctx, ShowInventory{})
	s.Require().NoError(err)
	s.Len(report.Listing, 2)

	s.Equal(0, s.session.world.Turn)
	s.Equal(grid.Pos(0, 0), gob.Pos, "free actions give creatures no step")
}

func TestNewSessionDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.PlayerName = "Markemus"

	session, err := NewSession(context.Background(), cfg)
	require.NoError(t, err)

	snap := session.Snapshot()
	assert.Equal(t, int64(99), snap.Seed)
	assert.Equal(t, "Markemus", snap.Stats.Name)
	assert.Equal(t, 10.0, snap.Stats.HP)
	assert.Equal(t, 8.0, snap.Stats.Damage)
	assert.Equal(t, 7.0, snap.Stats.Armor)
	assert.Empty(t, snap.Inventory)
	require.Len(t, snap.Equipment, 2)
	assert.Equal(t, "sword", snap.Equipment[0].Name)
	assert.Equal(t, "shield", snap.Equipment[1].Name)
	assert.GreaterOrEqual(t, snap.Creatures, 3)
	assert.LessOrEqual(t, snap.Creatures, 7)

	seen := make(map[grid.Position]bool)
	for _, c := range session.world.Creatures {
		assert.False(t, seen[c.Pos], "two creatures at %s", c.Pos)
		seen[c.Pos] = true
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"inverted range", func(c *Config) { c.MinCreatures, c.MaxCreatures = 5, 2 }},
		{"drop chance", func(c *Config) { c.DropChance = 2 }},
		{"unknown gear", func(c *Config) { c.StartingGear = []string{"bow"} }},
		{"two right hands", func(c *Config) { c.StartingGear = []string{"sword", "spear"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Seed = 1
			tt.modify(&cfg)

			_, err := NewSession(context.Background(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewSessionWithoutPlayerDefinition(t *testing.T) {
	goblin := gamedata.MustLoadCreatureRegistry().GetByID("goblin")
	require.NotNil(t, goblin)

	_, err := NewSession(context.Background(), DefaultConfig(),
		WithCreatures(gamedata.NewCreatureRegistry([]gamedata.CreatureDef{*goblin})))
	assert.True(t, errors.IsInternalConsistency(err))
}
