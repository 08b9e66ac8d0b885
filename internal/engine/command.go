package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// Command is a player action submitted to a Session.
type Command interface {
	fmt.Stringer
	command()
}

// Move steps the player one cell, attacking whatever stands there.
// It is the only command that takes a turn.
type Move struct {
	Direction grid.Direction
}

// ShowInventory lists carried items.
type ShowInventory struct{}

// ShowEquipment lists equipped items.
type ShowEquipment struct{}

// Equip equips the inventory item at Index.
type Equip struct {
	Index int
}

// Unequip returns the equipped item at Index to the inventory.
type Unequip struct {
	Index int
}

// Consume uses the inventory item at Index.
type Consume struct {
	Index int
}

func (Move) command()          {}
func (ShowInventory) command() {}
func (ShowEquipment) command() {}
func (Equip) command()         {}
func (Unequip) command()       {}
func (Consume) command()       {}

func (c Move) String() string        { return "move " + c.Direction.String() }
func (ShowInventory) String() string { return "inventory" }
func (ShowEquipment) String() string { return "equipment" }
func (c Equip) String() string       { return fmt.Sprintf("equip %d", c.Index) }
func (c Unequip) String() string     { return fmt.Sprintf("unequip %d", c.Index) }
func (c Consume) String() string     { return fmt.Sprintf("consume %d", c.Index) }

// TakesTurn reports whether cmd advances the turn counter and lets the
// creatures react.
func TakesTurn(cmd Command) bool {
	_, ok := cmd.(Move)
	return ok
}

// ParseCommand maps a line of text to a command. It accepts:
//
//	w, a, s, d (or up, left, down, right)  move
//	inv                                     show inventory
//	eq                                      show equipment
//	e N                                     equip inventory item N
//	u N                                     unequip equipped item N
//	q N                                     consume inventory item N
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, errors.InvalidCommandf("empty command")
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "inv", "i":
		if err := noArgs(verb, args); err != nil {
			return nil, err
		}
		return ShowInventory{}, nil
	case "eq", "o":
		if err := noArgs(verb, args); err != nil {
			return nil, err
		}
		return ShowEquipment{}, nil
	case "e", "u", "q":
		index, err := indexArg(verb, args)
		if err != nil {
			return nil, err
		}
		switch verb {
		case "e":
			return Equip{Index: index}, nil
		case "u":
			return Unequip{Index: index}, nil
		default:
			return Consume{Index: index}, nil
		}
	}

	dir, err := grid.ParseDirection(verb)
	if err != nil {
		return nil, errors.InvalidCommandf("unknown command %q", strings.TrimSpace(line))
	}
	if err := noArgs(verb, args); err != nil {
		return nil, err
	}
	return Move{Direction: dir}, nil
}

func noArgs(verb string, args []string) error {
	if len(args) > 0 {
		return errors.InvalidCommandf("%s takes no arguments", verb)
	}
	return nil
}

func indexArg(verb string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.InvalidCommandf("%s needs an item number", verb)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return 0, errors.InvalidCommandf("%q is not an item number", args[0])
	}
	return index, nil
}

// HelpEntry is one line of the key reference.
type HelpEntry struct {
	Keys        string
	Description string
}

// CommandHelp returns the key reference shown by front ends.
func CommandHelp() []HelpEntry {
	return []HelpEntry{
		{"w a s d / arrows", "move or attack"},
		{"i", "show inventory"},
		{"o", "show equipment"},
		{"e N", "equip inventory item N"},
		{"u N", "unequip equipped item N"},
		{"q N", "consume inventory item N"},
		{"?", "show this help"},
		{"esc", "quit"},
	}
}
