package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/grid"
)

// action is what a key press asks the game to do.
type action struct {
	cmd  engine.Command // Submitted to the session when set
	next Mode           // Mode after the key
	quit bool
}

// translateKey maps a key press in the given mode to an action.
// ch is only meaningful when key is tcell.KeyRune.
func translateKey(mode Mode, key tcell.Key, ch rune) action {
	switch mode {
	case ModeGameOver:
		return action{next: mode, quit: true}
	case ModeHelp:
		if key == tcell.KeyCtrlC {
			return action{next: mode, quit: true}
		}
		return action{next: ModeExplore}
	}

	if key == tcell.KeyCtrlC {
		return action{next: mode, quit: true}
	}

	if mode.Selecting() {
		return translateSelection(mode, key, ch)
	}

	switch key {
	case tcell.KeyEscape:
		return action{next: mode, quit: true}
	case tcell.KeyUp:
		return move(grid.Up)
	case tcell.KeyDown:
		return move(grid.Down)
	case tcell.KeyLeft:
		return move(grid.Left)
	case tcell.KeyRight:
		return move(grid.Right)
	case tcell.KeyRune:
		return translateRune(mode, ch)
	default:
		return action{next: mode}
	}
}

func translateRune(mode Mode, ch rune) action {
	switch ch {
	case 'w', 'W':
		return move(grid.Up)
	case 'a', 'A':
		return move(grid.Left)
	case 's', 'S':
		return move(grid.Down)
	case 'd', 'D':
		return move(grid.Right)
	case 'i', 'I':
		return action{cmd: engine.ShowInventory{}, next: ModeExplore}
	case 'o', 'O':
		return action{cmd: engine.ShowEquipment{}, next: ModeExplore}
	case 'e', 'E':
		return action{next: ModeEquip}
	case 'u', 'U':
		return action{next: ModeUnequip}
	case 'q', 'Q':
		return action{next: ModeConsume}
	case '?':
		return action{next: ModeHelp}
	default:
		return action{next: mode}
	}
}

func translateSelection(mode Mode, key tcell.Key, ch rune) action {
	if key != tcell.KeyRune || ch < '0' || ch > '9' {
		// Escape or any other key cancels the selection.
		return action{next: ModeExplore}
	}

	index := int(ch - '0')
	switch mode {
	case ModeEquip:
		return action{cmd: engine.Equip{Index: index}, next: ModeExplore}
	case ModeUnequip:
		return action{cmd: engine.Unequip{Index: index}, next: ModeExplore}
	default:
		return action{cmd: engine.Consume{Index: index}, next: ModeExplore}
	}
}

func move(dir grid.Direction) action {
	return action{cmd: engine.Move{Direction: dir}, next: ModeExplore}
}
