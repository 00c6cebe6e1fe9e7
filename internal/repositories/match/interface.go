package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/parlorbot/parlor/internal/repositories/match Repository

import (
	"context"

	"github.com/parlorbot/parlor/internal/models"
)

// Repository defines the interface for match history persistence
type Repository interface {
	// RecordMatch persists a finished match and links it to every
	// participant's history
	RecordMatch(ctx context.Context, input *RecordMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchHistory retrieves a player's matches, most recent first
	GetMatchHistory(ctx context.Context, input *GetMatchHistoryInput) (*GetMatchHistoryOutput, error)
}
