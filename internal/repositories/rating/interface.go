package rating

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/parlorbot/parlor/internal/repositories/rating Repository

import (
	"context"

	"github.com/parlorbot/parlor/internal/models"
)

// Repository defines the interface for rating persistence. Ratings are
// scoped per guild and game type.
type Repository interface {
	// GetRating retrieves one player's rating record
	GetRating(ctx context.Context, input *GetRatingInput) (*models.RatingRecord, error)

	// GetRatings retrieves rating records for several players at once;
	// players without a record are absent from the result
	GetRatings(ctx context.Context, input *GetRatingsInput) (*GetRatingsOutput, error)

	// UpsertRating saves a rating record and its leaderboard score
	UpsertRating(ctx context.Context, input *UpsertRatingInput) error

	// GetLeaderboard retrieves the top records by conservative rating
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ResetRating removes a player's rating record and leaderboard entry
	ResetRating(ctx context.Context, input *ResetRatingInput) error
}
