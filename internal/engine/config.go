package engine

import (
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/spawn"
)

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible rooms.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// PlayerName is shown on the stat line. Empty means entity.DefaultPlayerName.
	PlayerName string

	// Creatures spawned per room, drawn uniformly from [MinCreatures, MaxCreatures].
	MinCreatures int
	MaxCreatures int

	// DropChance is the probability that a slain creature leaves gear behind.
	DropChance float64

	// StartingGear lists gear kinds the player starts with, equipped in order.
	StartingGear []string
}

// DefaultConfig returns the standard rules: three to seven creatures per
// room, an even chance of loot, and a sword and shield to start.
func DefaultConfig() Config {
	sc := spawn.DefaultConfig()
	return Config{
		PlayerName:   entity.DefaultPlayerName,
		MinCreatures: sc.MinCreatures,
		MaxCreatures: sc.MaxCreatures,
		DropChance:   sc.DropChance,
		StartingGear: []string{"sword", "shield"},
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if err := c.spawnConfig().Validate(); err != nil {
		return errors.Wrap(err, "invalid spawn settings")
	}
	seen := make(map[string]bool, len(c.StartingGear))
	for _, kind := range c.StartingGear {
		if seen[kind] {
			return errors.InternalConsistencyf("starting gear %q listed twice", kind)
		}
		seen[kind] = true
	}
	return nil
}

func (c Config) spawnConfig() spawn.Config {
	return spawn.Config{
		MinCreatures: c.MinCreatures,
		MaxCreatures: c.MaxCreatures,
		DropChance:   c.DropChance,
	}
}
