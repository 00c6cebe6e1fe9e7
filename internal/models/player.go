package models

// RatingUncertaintyThreshold is the sigma/mu ratio above which a rating is
// displayed as provisional ("1000?").
const RatingUncertaintyThreshold = 0.20

// Player is the in-game representation of a participant, carrying the skill
// estimate for the game type being played. This is the value handed to game
// plugins; persistent rating rows live in RatingRecord.
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// Mu is the skill estimate for the game type being played
	Mu float64

	// Sigma is the uncertainty of the skill estimate
	Sigma float64
}

// Mention returns the Discord mention string for the player.
func (p *Player) Mention() string {
	return "<@" + p.ID + ">"
}

// Conservative returns the conservative skill estimate (mu - 3*sigma) used
// for leaderboard ordering.
func (p *Player) Conservative() float64 {
	return p.Mu - 3*p.Sigma
}
