// Package game provides the main game loop and input handling.
package game

// Mode represents what the next key press means.
type Mode int

const (
	// ModeExplore is the default mode: keys move the player or open a menu.
	ModeExplore Mode = iota
	// ModeEquip waits for the inventory number to equip.
	ModeEquip
	// ModeUnequip waits for the equipment number to remove.
	ModeUnequip
	// ModeConsume waits for the inventory number to use.
	ModeConsume
	// ModeHelp shows the key reference until any key is pressed.
	ModeHelp
	// ModeGameOver shows the final score until any key is pressed.
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeEquip:
		return "equip"
	case ModeUnequip:
		return "unequip"
	case ModeConsume:
		return "consume"
	case ModeHelp:
		return "help"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Selecting reports whether the mode is waiting for an item number.
func (m Mode) Selecting() bool {
	return m == ModeEquip || m == ModeUnequip || m == ModeConsume
}

// Prompt returns the bottom-line hint for the mode, or "" for the default.
func (m Mode) Prompt() string {
	switch m {
	case ModeEquip:
		return "Equip which inventory item? (0-9, esc to cancel)"
	case ModeUnequip:
		return "Unequip which item? (0-9, esc to cancel)"
	case ModeConsume:
		return "Use which inventory item? (0-9, esc to cancel)"
	case ModeHelp:
		return "Press any key to return"
	case ModeGameOver:
		return "Press any key to quit"
	default:
		return ""
	}
}
