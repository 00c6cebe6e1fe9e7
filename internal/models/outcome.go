package models

// Outcome is the terminal result reported by a game plugin. Exactly one of
// the three shapes is set: a single winner (everyone else lost, no further
// comparison), ordered placement groups (index = place, inner slice = tie),
// or an error string when the game aborted.
type Outcome struct {
	// Winner is the single winning player, if the game has one
	Winner *Player

	// Placements is the ordered list of tie groups: Placements[0] finished
	// first, players sharing an inner slice tied
	Placements [][]*Player

	// Err is a non-empty error description when the game aborted
	Err string
}

// WinnerOutcome builds a single-winner outcome.
func WinnerOutcome(winner *Player) *Outcome {
	return &Outcome{Winner: winner}
}

// PlacementOutcome builds a ranked placement-group outcome.
func PlacementOutcome(placements [][]*Player) *Outcome {
	return &Outcome{Placements: placements}
}

// ErrorOutcome builds an aborted-game outcome.
func ErrorOutcome(reason string) *Outcome {
	return &Outcome{Err: reason}
}

// IsError reports whether the outcome is an abort signal.
func (o *Outcome) IsError() bool {
	return o != nil && o.Err != ""
}
