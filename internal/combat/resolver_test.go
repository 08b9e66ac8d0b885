package combat

import (
	"context"
	"testing"

	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/gamedata"
	"github.com/samdwyer/gridcrawl/internal/grid"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// fixedLoot drops the same item kind every time it is asked.
type fixedLoot struct {
	def   *gamedata.GearDef
	calls int
}

func (f *fixedLoot) DropGear(w *world.World, pos grid.Position) *entity.Gear {
	f.calls++
	if f.def == nil {
		return nil
	}
	g := entity.NewGearAt(f.def, pos)
	w.DropItem(g)
	return g
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	def, err := gamedata.MustLoadCreatureRegistry().Player()
	if err != nil {
		t.Fatalf("player definition: %v", err)
	}
	return world.New(grid.DefaultRoom(), entity.NewPlayer(def, "", grid.Pos(0, 0)))
}

func spawnAt(t *testing.T, w *world.World, kind string, pos grid.Position) *entity.Creature {
	t.Helper()
	def := gamedata.MustLoadCreatureRegistry().GetByID(kind)
	if def == nil {
		t.Fatalf("unknown creature %q", kind)
	}
	c := entity.NewCreature(def, pos)
	w.AddCreature(c)
	return c
}

func TestAttackIsSimultaneous(t *testing.T) {
	w := newTestWorld(t)
	troll := spawnAt(t, w, "troll", grid.Pos(3, 2))
	r := NewResolver(w, nil)

	result, err := r.Attack(context.Background(), w.Player.Creature, troll)
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}

	// 3 damage into 4 armor, 6 damage into 2 armor
	if w.Player.HP != 7 {
		t.Errorf("player hp = %v, want 7", w.Player.HP)
	}
	if troll.HP != 29.25 {
		t.Errorf("troll hp = %v, want 29.25", troll.HP)
	}
	if result.DamageTaken() != 3 || result.DamageDealt() != 0.75 {
		t.Errorf("deltas = (%v, %v), want (3, 0.75)", result.DamageTaken(), result.DamageDealt())
	}
	if result.DefenderDied || result.AttackerScored || result.PlayerDied {
		t.Errorf("unexpected flags: %+v", result)
	}
}

func TestAttackUsesPreAttackValues(t *testing.T) {
	w := newTestWorld(t)
	gob := spawnAt(t, w, "goblin", grid.Pos(3, 2))
	gob.HP = 1
	gob.Damage = 4

	result, err := NewResolver(w, nil).Attack(context.Background(), w.Player.Creature, gob)
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}

	// The goblin dies in the exchange but still hits back.
	if !result.DefenderDied {
		t.Fatal("goblin should have died")
	}
	if w.Player.HP != 8 {
		t.Errorf("player hp = %v, want 8", w.Player.HP)
	}
}

func TestDeathThreshold(t *testing.T) {
	tests := []struct {
		name     string
		hp       float64
		wantDead bool
	}{
		{"lands exactly on zero", 1.5, false},
		{"drops below zero", 1.4, true},
		{"already at zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			gob := spawnAt(t, w, "goblin", grid.Pos(3, 2))
			gob.HP = tt.hp
			loot := &fixedLoot{def: gamedata.MustLoadGearRegistry().GetByID("helm")}

			result, err := NewResolver(w, loot).Attack(context.Background(), w.Player.Creature, gob)
			if err != nil {
				t.Fatalf("Attack() error = %v", err)
			}

			if result.DefenderDied != tt.wantDead {
				t.Errorf("DefenderDied = %v, want %v", result.DefenderDied, tt.wantDead)
			}
			if w.Contains(gob) == tt.wantDead {
				t.Errorf("goblin in world = %v, want %v", w.Contains(gob), !tt.wantDead)
			}
			wantScore := 0
			if tt.wantDead {
				wantScore = 1
			}
			if w.Player.Score != wantScore {
				t.Errorf("score = %d, want %d", w.Player.Score, wantScore)
			}
			if tt.wantDead {
				if result.Dropped == nil || result.Dropped.Pos != grid.Pos(3, 2) {
					t.Errorf("expected loot at (3,2), got %+v", result.Dropped)
				}
				if len(w.ItemsAt(grid.Pos(3, 2))) != 1 {
					t.Errorf("floor items at (3,2) = %d, want 1", len(w.ItemsAt(grid.Pos(3, 2))))
				}
			} else if loot.calls != 0 {
				t.Errorf("loot rolled %d times for a survivor", loot.calls)
			}
		})
	}
}

func TestPlayerDiesAsAttacker(t *testing.T) {
	w := newTestWorld(t)
	troll := spawnAt(t, w, "troll", grid.Pos(3, 2))
	w.Player.HP = 2

	result, err := NewResolver(w, nil).Attack(context.Background(), w.Player.Creature, troll)
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}

	if !result.PlayerDied {
		t.Error("PlayerDied = false, want true")
	}
	if !w.Contains(w.Player.Creature) {
		t.Error("player must never be removed")
	}
	if !w.Contains(troll) {
		t.Error("troll should survive")
	}
}

func TestPlayerDiesAsDefender(t *testing.T) {
	w := newTestWorld(t)
	gob := spawnAt(t, w, "goblin", grid.Pos(3, 2))
	w.Player.HP = 1
	loot := &fixedLoot{}

	result, err := NewResolver(w, loot).Attack(context.Background(), gob, w.Player.Creature)
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}

	if !result.PlayerDied {
		t.Error("PlayerDied = false, want true")
	}
	if result.DefenderDied || result.AttackerScored || gob.Score != 0 {
		t.Errorf("dying player must not be removed or scored: %+v", result)
	}
	if loot.calls != 0 {
		t.Error("dying player must not drop loot")
	}
	if !w.Contains(w.Player.Creature) {
		t.Error("player must never be removed")
	}
}

func TestAttackRejectsNonPositiveArmor(t *testing.T) {
	w := newTestWorld(t)
	gob := spawnAt(t, w, "goblin", grid.Pos(3, 2))
	gob.Armor = 0
	hp := w.Player.HP

	_, err := NewResolver(w, nil).Attack(context.Background(), w.Player.Creature, gob)
	if !errors.IsInternalConsistency(err) {
		t.Fatalf("error = %v, want internal consistency", err)
	}
	if w.Player.HP != hp || gob.HP != 10 {
		t.Error("a rejected attack must not change hp")
	}
}
