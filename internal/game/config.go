package game

import "github.com/samdwyer/gridcrawl/internal/engine"

// DefaultMessageLog is how many message lines the game keeps.
const DefaultMessageLog = 50

// Config holds game configuration options.
type Config struct {
	// Engine configures the session: seed, player name, spawn rates, kit.
	Engine engine.Config

	// MessageLog caps the number of message lines kept in memory.
	MessageLog int
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		Engine:     engine.DefaultConfig(),
		MessageLog: DefaultMessageLog,
	}
}
