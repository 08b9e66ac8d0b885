package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	def, err := gamedata.MustLoadCreatureRegistry().Player()
	require.NoError(t, err)
	return New(grid.DefaultRoom(), entity.NewPlayer(def, "Tester", grid.Pos(0, 0)))
}

func goblinAt(t *testing.T, pos grid.Position) *entity.Creature {
	t.Helper()
	def := gamedata.MustLoadCreatureRegistry().GetByID("goblin")
	require.NotNil(t, def)
	return entity.NewCreature(def, pos)
}

func gearAt(t *testing.T, id string, pos grid.Position) *entity.Gear {
	t.Helper()
	def := gamedata.MustLoadGearRegistry().GetByID(id)
	require.NotNil(t, def, id)
	return entity.NewGearAt(def, pos)
}

func TestNewPlacesPlayerOnEntry(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, grid.Pos(4, 2), w.Player.Pos)
	assert.Equal(t, []*entity.Creature{w.Player.Creature}, w.Creatures)
	assert.Equal(t, 0, w.Turn)
	assert.Equal(t, 1, w.Rooms)
}

func TestResetKeepsPlayerStats(t *testing.T) {
	w := newTestWorld(t)
	w.AddCreature(goblinAt(t, grid.Pos(1, 1)))
	w.DropItem(gearAt(t, "helm", grid.Pos(2, 2)))
	w.Player.Pos = grid.Pos(0, 2)
	w.Player.Score = 3
	w.Turn = 7

	w.Reset()

	assert.Len(t, w.Creatures, 1)
	assert.Empty(t, w.FloorItems)
	assert.Equal(t, w.Room.Entry, w.Player.Pos)
	assert.Equal(t, 3, w.Player.Score)
	assert.Equal(t, 7, w.Turn)
	assert.Equal(t, 2, w.Rooms)
}

func TestRemoveCreature(t *testing.T) {
	w := newTestWorld(t)
	a := goblinAt(t, grid.Pos(1, 1))
	b := goblinAt(t, grid.Pos(1, 2))
	w.AddCreature(a)
	w.AddCreature(b)

	assert.False(t, w.RemoveCreature(w.Player.Creature))
	assert.True(t, w.Contains(w.Player.Creature))

	assert.True(t, w.RemoveCreature(a))
	assert.False(t, w.Contains(a))
	assert.False(t, w.RemoveCreature(a))
	assert.Equal(t, []*entity.Creature{w.Player.Creature, b}, w.Creatures)
}

func TestAggressiveIsACopy(t *testing.T) {
	w := newTestWorld(t)
	gob := goblinAt(t, grid.Pos(1, 1))
	troll := entity.NewCreature(gamedata.MustLoadCreatureRegistry().GetByID("troll"), grid.Pos(2, 2))
	w.AddCreature(gob)
	w.AddCreature(troll)

	hunters := w.Aggressive()
	require.Equal(t, []*entity.Creature{gob}, hunters)

	w.RemoveCreature(gob)
	assert.Len(t, hunters, 1)
	assert.Empty(t, w.Aggressive())
}

func TestFreeCells(t *testing.T) {
	w := newTestWorld(t)
	assert.Len(t, w.FreeCells(), 24)

	w.AddCreature(goblinAt(t, grid.Pos(0, 0)))
	free := w.FreeCells()
	assert.Len(t, free, 23)
	assert.NotContains(t, free, grid.Pos(0, 0))
	assert.NotContains(t, free, w.Player.Pos)
}

func TestTakeItemAtTakesOne(t *testing.T) {
	w := newTestWorld(t)
	p := grid.Pos(3, 3)
	first := gearAt(t, "sword", p)
	second := gearAt(t, "spear", p)
	other := gearAt(t, "helm", grid.Pos(0, 0))
	w.DropItem(first)
	w.DropItem(other)
	w.DropItem(second)

	assert.Equal(t, []*entity.Gear{first, second}, w.ItemsAt(p))
	assert.Same(t, first, w.TakeItemAt(p))
	assert.Equal(t, []*entity.Gear{other, second}, w.FloorItems)
	assert.Same(t, second, w.TakeItemAt(p))
	assert.Nil(t, w.TakeItemAt(p))
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t)
	gob := goblinAt(t, grid.Pos(1, 1))
	w.AddCreature(gob)
	w.DropItem(gearAt(t, "sword", grid.Pos(3, 3)))
	w.DropItem(gearAt(t, "helm", grid.Pos(3, 3)))
	w.Player.Carry(gearAt(t, "health_potion", grid.Pos(0, 0)))
	w.Turn = 4

	s := w.Snapshot()

	require.Equal(t, 5, s.Rows)
	require.Len(t, s.Cells, 5)
	assert.Equal(t, grid.TileExit, s.Cells[0][2].Tile)
	assert.Equal(t, grid.TileEntry, s.Cells[4][2].Tile)

	player := s.Cells[4][2]
	require.NotNil(t, player.Creature)
	assert.True(t, player.IsPlayer)
	assert.Equal(t, 'P', player.Creature.Symbol)

	require.NotNil(t, s.Cells[1][1].Creature)
	assert.False(t, s.Cells[1][1].IsPlayer)
	assert.Equal(t, 'G', s.Cells[1][1].Creature.Symbol)

	items := s.Cells[3][3]
	require.NotNil(t, items.Item)
	assert.Equal(t, 's', items.Item.Symbol)
	assert.Equal(t, 2, items.ItemCount)

	assert.Equal(t, "Tester", s.Stats.Name)
	assert.Equal(t, 4, s.Stats.Turn)
	assert.Equal(t, 1, s.Creatures)
	require.Len(t, s.Inventory, 1)
	assert.Equal(t, "health potion", s.Inventory[0].Name)

	gob.HP = -5
	w.RemoveCreature(gob)
	assert.NotNil(t, s.Cells[1][1].Creature)
}
