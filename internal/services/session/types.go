package session

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/common/clock"
	"github.com/parlorbot/parlor/internal/common/uuid"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ratings"
	matchRepo "github.com/parlorbot/parlor/internal/repositories/match"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/transport"
)

// Config contains the dependencies for the session service
type Config struct {
	Registry   *games.Registry
	RatingRepo ratingRepo.Repository
	MatchRepo  matchRepo.Repository
	Engine     ratings.Engine
	Messenger  transport.Messenger
	Messaging  messaging.Service
	Clock      clock.Clock
	UUID       uuid.UUID
	Logger     zerolog.Logger

	// RandSeed seeds the seating shuffle; 0 seeds from the current time
	RandSeed int64
}

// StartGameInput contains parameters for creating a session from a lobby
type StartGameInput struct {
	LobbyID   string
	GuildID   string
	ChannelID string
	GameType  string
	Rated     bool
	CreatorID string

	// Players is the lobby queue in join order; the game's seating policy is
	// applied here, exactly once
	Players []*models.Player
}

// StartGameOutput contains the created session
type StartGameOutput struct {
	SessionID string
	ThreadID  string
}

// SubmitMoveInput contains parameters for applying one move
type SubmitMoveInput struct {
	SessionID string
	PlayerID  string

	// Move is the move name as declared by the game's descriptors
	Move string

	// RawArgs are the uncoerced string arguments from the command or button
	RawArgs map[string]string
}

// SubmitMoveOutput reports the result of a move
type SubmitMoveOutput struct {
	// Ended indicates the move produced the terminal outcome
	Ended bool
}

// AutocompleteInput contains parameters for querying move suggestions
type AutocompleteInput struct {
	SessionID string
	PlayerID  string

	// Provider is the autocomplete provider name from the move's descriptor
	Provider string
}

// AutocompleteOutput contains the suggestions
type AutocompleteOutput struct {
	Choices []games.Choice
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains a session snapshot
type GetSessionOutput struct {
	Session *SessionSnapshot
}

// SessionSnapshot is an immutable copy of a session handed out by the
// service.
type SessionSnapshot struct {
	ID        string
	GuildID   string
	ChannelID string
	ThreadID  string
	GameType  string
	GameName  string
	Rated     bool
	CreatorID string

	// Players is the fixed seating order
	Players []*models.Player

	// CurrentTurnID is the player whose move is expected, or empty
	CurrentTurnID string

	// Ended indicates the terminal outcome was reached
	Ended bool

	StartedAt time.Time
}
