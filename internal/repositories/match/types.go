package match

import "github.com/parlorbot/parlor/internal/models"

// RecordMatchInput contains parameters for recording a finished match
type RecordMatchInput struct {
	Match *models.Match
}

// GetMatchInput contains parameters for retrieving a match
type GetMatchInput struct {
	MatchID string
}

// GetMatchHistoryInput contains parameters for retrieving a player's history
type GetMatchHistoryInput struct {
	GuildID  string
	PlayerID string

	// Limit caps the number of matches returned; 0 means no cap
	Limit int
}

// GetMatchHistoryOutput contains a player's matches, most recent first
type GetMatchHistoryOutput struct {
	Matches []*models.Match
}
