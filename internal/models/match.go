package models

import (
	"time"
)

// MatchParticipant is one player's line in a recorded match: the dense rank
// they finished at and the rating movement settlement applied. Deltas are
// zero for unrated matches.
type MatchParticipant struct {
	// PlayerID is the Discord user ID of the participant
	PlayerID string

	// Rank is the dense 0-based finishing rank; tied players share a value
	Rank int

	// Tied indicates the participant shared their rank with someone else
	Tied bool

	// MuDelta is the change in skill estimate applied by settlement
	MuDelta float64

	// SigmaDelta is the change in uncertainty applied by settlement
	SigmaDelta float64
}

// Match is the durable record of one finished game session.
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// GameType identifies which game was played
	GameType string

	// GuildID is the Discord guild the match was played in
	GuildID string

	// Rated indicates whether settlement updated ratings
	Rated bool

	// Participants lists every player with their rank and rating deltas
	Participants []*MatchParticipant

	// StartedAt is when the session was created
	StartedAt time.Time

	// EndedAt is when the terminal outcome was settled
	EndedAt time.Time
}
