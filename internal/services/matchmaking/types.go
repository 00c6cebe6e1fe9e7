package matchmaking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/common/clock"
	"github.com/parlorbot/parlor/internal/common/uuid"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ratings"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	"github.com/parlorbot/parlor/internal/transport"
)

// SessionGateway is how the lobby hands a started game to the session layer,
// and how it checks whether a player is tied up in an active game.
type SessionGateway interface {
	// StartGame creates a game session from a started lobby and returns its
	// session ID
	StartGame(ctx context.Context, request *StartGameRequest) (string, error)

	// InSession reports whether a player is in an active game
	InSession(playerID string) bool
}

// StartGameRequest carries everything the session layer needs from a
// started lobby.
type StartGameRequest struct {
	LobbyID   string
	GuildID   string
	ChannelID string
	GameType  string
	Rated     bool
	CreatorID string

	// Players is the lobby queue in join order; the session layer applies
	// the game's ordering policy
	Players []*models.Player
}

// Config holds the dependencies of the matchmaking service
type Config struct {
	Registry   *games.Registry
	RatingRepo ratingRepo.Repository
	Engine     ratings.Engine
	Sessions   SessionGateway
	Clock      clock.Clock
	UUID       uuid.UUID
	Logger     zerolog.Logger
}

// CreateLobbyInput contains parameters for creating a lobby
type CreateLobbyInput struct {
	GuildID     string
	ChannelID   string
	GameType    string
	CreatorID   string
	CreatorName string
	Rated       bool
	Private     bool

	// Whitelist are the player IDs invited to a private lobby, in addition
	// to the creator
	Whitelist []string
}

// CreateLobbyOutput contains the created lobby
type CreateLobbyOutput struct {
	Lobby *LobbySnapshot
}

// JoinInput contains parameters for joining a lobby
type JoinInput struct {
	LobbyID    string
	PlayerID   string
	PlayerName string
}

// JoinOutput contains the lobby after the join
type JoinOutput struct {
	Lobby *LobbySnapshot
}

// LeaveInput contains parameters for leaving a lobby
type LeaveInput struct {
	LobbyID  string
	PlayerID string
}

// LeaveOutput contains the lobby state after the leave
type LeaveOutput struct {
	// Cancelled is true when the leave emptied the queue and retired the
	// lobby; Lobby is nil in that case
	Cancelled bool

	// NewCreatorID is set when the creator left and ownership moved to the
	// earliest remaining joiner
	NewCreatorID string

	Lobby *LobbySnapshot

	// Message is the lobby's message handle, for deletion when cancelled
	Message *transport.MessageHandle
}

// KickInput contains parameters for kicking a player from a lobby
type KickInput struct {
	LobbyID  string
	ActorID  string
	TargetID string
}

// KickOutput mirrors LeaveOutput for the kicked player
type KickOutput struct {
	Cancelled    bool
	NewCreatorID string
	Lobby        *LobbySnapshot
	Message      *transport.MessageHandle
}

// BanInput contains parameters for banning a player from a lobby
type BanInput struct {
	LobbyID  string
	ActorID  string
	TargetID string
}

// BanOutput mirrors LeaveOutput for the banned player
type BanOutput struct {
	Cancelled    bool
	NewCreatorID string
	Lobby        *LobbySnapshot
	Message      *transport.MessageHandle
}

// InviteInput contains parameters for inviting a player to a lobby
type InviteInput struct {
	LobbyID  string
	ActorID  string
	TargetID string
}

// InviteOutput contains the lobby after the invite
type InviteOutput struct {
	Lobby *LobbySnapshot
}

// UpdateSettingsInput contains parameters for toggling lobby settings. Nil
// pointers leave the setting unchanged. Changing Private does not reconcile
// the whitelist or blacklist retroactively.
type UpdateSettingsInput struct {
	LobbyID string
	ActorID string
	Rated   *bool
	Private *bool
}

// UpdateSettingsOutput contains the lobby after the update
type UpdateSettingsOutput struct {
	Lobby *LobbySnapshot
}

// StartInput contains parameters for starting a lobby's game
type StartInput struct {
	LobbyID string
	ActorID string
}

// StartOutput contains the started session
type StartOutput struct {
	SessionID string

	// Message is the lobby's message handle, for cleanup by the handler
	Message *transport.MessageHandle
}

// GetLobbyInput contains parameters for retrieving a lobby
type GetLobbyInput struct {
	LobbyID string
}

// GetLobbyOutput contains the lobby
type GetLobbyOutput struct {
	Lobby *LobbySnapshot
}

// AttachMessageInput records the platform message that renders a lobby
type AttachMessageInput struct {
	LobbyID string
	Message *transport.MessageHandle
}
