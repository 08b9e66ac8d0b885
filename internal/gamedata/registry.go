package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// pickWeighted returns the index chosen by a weighted roll, or -1 when no
// entry has a positive weight.
func pickWeighted(rng *rand.Rand, weights []int, total int) int {
	if total <= 0 {
		return -1
	}

	roll := rng.Intn(total)

	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return -1
}

// CreatureRegistry holds creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures   []CreatureDef
	weights     []int
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	r := &CreatureRegistry{
		creatures: creatures,
		weights:   make([]int, len(creatures)),
	}
	for i, c := range creatures {
		r.weights[i] = c.SpawnWeight
		r.totalWeight += c.SpawnWeight
	}
	return r
}

// LoadCreatureRegistry loads a registry from the embedded creatures.json.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	return NewCreatureRegistry(creatures), nil
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a spawnable creature definition using weighted probability.
// Returns nil if nothing in the registry can spawn.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	i := pickWeighted(rng, r.weights, r.totalWeight)
	if i < 0 {
		return nil
	}
	return &r.creatures[i]
}

// Spawnable returns true if at least one definition has a positive weight.
func (r *CreatureRegistry) Spawnable() bool {
	return r.totalWeight > 0
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Player returns the player's base definition.
func (r *CreatureRegistry) Player() (*CreatureDef, error) {
	def := r.GetByID(PlayerID)
	if def == nil {
		return nil, fmt.Errorf("creature table has no %q entry", PlayerID)
	}
	return def, nil
}

// All returns all creature definitions.
func (r *CreatureRegistry) All() []CreatureDef {
	return r.creatures
}

// Count returns the number of creature kinds in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}

// =============================================================================
// GearRegistry
// =============================================================================

// GearRegistry holds gear definitions and provides loot selection.
type GearRegistry struct {
	byID        map[string]*GearDef
	all         []GearDef
	weights     []int
	totalWeight int
}

// NewGearRegistry creates a registry from loaded gear definitions.
func NewGearRegistry(gear []GearDef) *GearRegistry {
	r := &GearRegistry{
		byID:    make(map[string]*GearDef, len(gear)),
		all:     gear,
		weights: make([]int, len(gear)),
	}
	for i := range gear {
		r.byID[gear[i].ID] = &gear[i]
		r.weights[i] = gear[i].SpawnWeight
		r.totalWeight += gear[i].SpawnWeight
	}
	return r
}

// LoadGearRegistry loads a registry from the embedded gear.json.
func LoadGearRegistry() (*GearRegistry, error) {
	gear, err := LoadGear()
	if err != nil {
		return nil, err
	}
	if len(gear) == 0 {
		return nil, errors.New("no gear loaded from gear.json")
	}
	return NewGearRegistry(gear), nil
}

// MustLoadGearRegistry loads a registry, panicking on error.
func MustLoadGearRegistry() *GearRegistry {
	registry, err := LoadGearRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// DropRandom selects a droppable gear definition using weighted probability.
// Returns nil if nothing in the registry can drop.
func (r *GearRegistry) DropRandom(rng *rand.Rand) *GearDef {
	i := pickWeighted(rng, r.weights, r.totalWeight)
	if i < 0 {
		return nil
	}
	return &r.all[i]
}

// GetByID returns the gear definition with the given ID, or nil if not found.
func (r *GearRegistry) GetByID(id string) *GearDef {
	return r.byID[id]
}

// All returns all gear definitions.
func (r *GearRegistry) All() []GearDef {
	return r.all
}

// Count returns the number of gear kinds in the registry.
func (r *GearRegistry) Count() int {
	return len(r.all)
}
