package rating

import "github.com/parlorbot/parlor/internal/models"

// GetRatingInput contains parameters for retrieving one rating record
type GetRatingInput struct {
	GuildID  string
	GameType string
	PlayerID string
}

// GetRatingsInput contains parameters for retrieving several rating records
type GetRatingsInput struct {
	GuildID   string
	GameType  string
	PlayerIDs []string
}

// GetRatingsOutput contains the found rating records keyed by player ID
type GetRatingsOutput struct {
	Ratings map[string]*models.RatingRecord
}

// UpsertRatingInput contains parameters for saving a rating record
type UpsertRatingInput struct {
	Rating *models.RatingRecord
}

// GetLeaderboardInput contains parameters for retrieving a leaderboard
type GetLeaderboardInput struct {
	GuildID  string
	GameType string

	// Limit caps the number of entries returned; 0 means no cap
	Limit int
}

// GetLeaderboardOutput contains leaderboard entries, best first
type GetLeaderboardOutput struct {
	Entries []*models.RatingRecord
}

// ResetRatingInput contains parameters for removing a rating record
type ResetRatingInput struct {
	GuildID  string
	GameType string
	PlayerID string
}
