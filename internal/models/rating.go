package models

import (
	"time"
)

// DefaultMu is the skill estimate assigned on first contact with a game type.
const DefaultMu = 1000

// DefaultSigmaRatio is the default sigma/mu ratio for a fresh rating.
const DefaultSigmaRatio = 1.0 / 6.0

// RatingRecord is a player's persistent skill rating for one game type in one
// guild. Mutated only by settlement.
type RatingRecord struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// GuildID is the Discord guild the rating is scoped to
	GuildID string

	// GameType identifies the game the rating applies to
	GameType string

	// Mu is the skill estimate
	Mu float64

	// Sigma is the uncertainty of the skill estimate. Never negative.
	Sigma float64

	// MatchesPlayed is the number of rated matches settled for this record
	MatchesPlayed int

	// LastPlayed is when the player last finished a match of this game type
	LastPlayed time.Time
}

// Conservative returns the leaderboard ordering score (mu - 3*sigma).
func (r *RatingRecord) Conservative() float64 {
	return r.Mu - 3*r.Sigma
}
