package engine

import (
	"github.com/samdwyer/gridcrawl/internal/combat"
	"github.com/samdwyer/gridcrawl/internal/entity"
	"github.com/samdwyer/gridcrawl/internal/world"
)

// Outcome says whether the session goes on after a command.
type Outcome int

const (
	// OutcomeContinue means the player is alive and can act again.
	OutcomeContinue Outcome = iota
	// OutcomeSessionEnded means the player died; further commands are refused.
	OutcomeSessionEnded
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeSessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}

// TurnReport describes everything one command did.
type TurnReport struct {
	Command Command
	Outcome Outcome
	Turn    int // Turn counter after the command

	// Move commands
	PlayerMove *MoveResult   // The player's own step
	Rejected   error         // InvalidMove for a step off the grid; the turn still ran
	Reactions  []*MoveResult // Aggressive creatures' steps, in the order they acted
	NewRoom    bool          // The player walked through the exit

	// Inventory commands
	Item    *entity.Gear     // Item equipped, unequipped or consumed
	Listing []world.ItemLine // Inventory or equipment listing for show commands
}

// Attacks returns every exchange of the turn in the order it happened.
func (r *TurnReport) Attacks() []*combat.AttackResult {
	var out []*combat.AttackResult
	if r.PlayerMove != nil && r.PlayerMove.Attack != nil {
		out = append(out, r.PlayerMove.Attack)
	}
	for _, m := range r.Reactions {
		if m.Attack != nil {
			out = append(out, m.Attack)
		}
	}
	return out
}

// Pickup returns the item the player picked up this turn, or nil.
func (r *TurnReport) Pickup() *entity.Gear {
	if r.PlayerMove == nil {
		return nil
	}
	return r.PlayerMove.PickedUp
}

// Ended reports whether the session is over.
func (r *TurnReport) Ended() bool {
	return r.Outcome == OutcomeSessionEnded
}
