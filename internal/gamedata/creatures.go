package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// PlayerID is the creature table row holding the player's base stats.
const PlayerID = "player"

// CreatureDef defines a creature kind loaded from JSON.
type CreatureDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string  `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string  `json:"glyph"`       // Single character for rendering (e.g., "G")
	Color       string  `json:"color"`       // Hex color code (e.g., "#00FF00")
	HP          float64 `json:"hp"`          // Starting hit points
	Damage      float64 `json:"damage"`      // Base damage dealt per exchange
	Armor       float64 `json:"armor"`       // Divides incoming damage; must be positive
	Aggressive  bool    `json:"aggressive"`  // Steps toward the player every turn
	SpawnWeight int     `json:"spawnWeight"` // Relative spawn frequency (0 = never spawned)
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	return colorOr(c.Color, tcell.ColorWhite)
}

// Validate checks the invariants combat relies on.
func (c *CreatureDef) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("creature entry missing id")
	}
	if c.Armor <= 0 {
		return fmt.Errorf("creature %s: armor must be positive, got %v", c.ID, c.Armor)
	}
	if c.SpawnWeight < 0 {
		return fmt.Errorf("creature %s: negative spawn weight", c.ID)
	}
	return nil
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() ([]CreatureDef, error) {
	return LoadCreaturesFS(dataFS)
}

// LoadCreaturesFS loads and validates creature definitions from fsys.
func LoadCreaturesFS(fsys fs.FS) ([]CreatureDef, error) {
	file, err := LoadFS[CreaturesFile](fsys, "creatures.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Creatures {
		if err := file.Creatures[i].Validate(); err != nil {
			return nil, fmt.Errorf("creatures.json: %w", err)
		}
	}
	return file.Creatures, nil
}
