package matchmaking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/parlorbot/parlor/internal/services/matchmaking Service,SessionGateway

import "context"

// Service is the interface for the matchmaking service. A player may be in
// at most one lobby at a time and never while in an active game.
type Service interface {
	// CreateLobby opens a lobby with the creator as its first member
	CreateLobby(ctx context.Context, input *CreateLobbyInput) (*CreateLobbyOutput, error)

	// Join adds a player to a lobby's queue
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave removes a player from a lobby; an emptied lobby is cancelled
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// Kick removes another player from a lobby (creator only)
	Kick(ctx context.Context, input *KickInput) (*KickOutput, error)

	// Ban blocks a player from a lobby and removes them if queued (creator
	// only): blacklist on public lobbies, whitelist removal on private ones
	Ban(ctx context.Context, input *BanInput) (*BanOutput, error)

	// Invite clears the way for a player to join (creator only): whitelists
	// them on a private lobby and lifts any ban on a public one
	Invite(ctx context.Context, input *InviteInput) (*InviteOutput, error)

	// UpdateSettings toggles the rated and private flags (creator only)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// Start hands the lobby off to the session layer and retires it
	// (creator only)
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// GetLobby retrieves a snapshot of a lobby
	GetLobby(ctx context.Context, input *GetLobbyInput) (*GetLobbyOutput, error)

	// AttachMessage records the platform message that renders the lobby
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// LobbyForPlayer returns the lobby a player is queued in, or
	// ErrLobbyNotFound
	LobbyForPlayer(ctx context.Context, playerID string) (*GetLobbyOutput, error)
}
