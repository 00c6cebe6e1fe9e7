package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/parlorbot/parlor/internal/services/session Service

import "context"

// Service is the interface for the session service. It owns every running
// game: seating, move arbitration, rendering and settlement.
type Service interface {
	// StartGame creates a session from a lobby hand-off: seats the players,
	// opens the game thread and posts the opening state
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitMove applies one move for the acting player. A returned error
	// means the game state did not change.
	SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error)

	// Autocomplete queries a move parameter's suggestions from the game
	Autocomplete(ctx context.Context, input *AutocompleteInput) (*AutocompleteOutput, error)

	// GetSession retrieves a snapshot of a session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SessionForPlayer returns the session a player is in, or
	// ErrSessionNotFound
	SessionForPlayer(ctx context.Context, playerID string) (*GetSessionOutput, error)

	// InSession reports whether a player is in a running game
	InSession(playerID string) bool
}
