package ratings

//go:generate mockgen -package=mocks -destination=mocks/mock_engine.go github.com/parlorbot/parlor/internal/ratings Engine

// Engine rates finished matches. Implementations must be pure: same inputs,
// same outputs, no I/O.
type Engine interface {
	// InitialRating returns the rating assigned to a player who has never
	// played the given game type
	InitialRating(gameType string) PlayerRating

	// Rate computes post-match ratings. current[i] and ranks[i] describe the
	// same player; equal ranks mean a tie. Ranks are dense and zero-based:
	// 0 for first place, 1 for second, and so on. The result preserves input
	// order.
	Rate(gameType string, current []PlayerRating, ranks []int) ([]PlayerRating, error)
}
