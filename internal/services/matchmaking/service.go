package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/common/clock"
	"github.com/parlorbot/parlor/internal/common/lock"
	"github.com/parlorbot/parlor/internal/common/uuid"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ratings"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
)

// service implements the Service interface
type service struct {
	registry   *games.Registry
	ratingRepo ratingRepo.Repository
	engine     ratings.Engine
	sessions   SessionGateway
	clock      clock.Clock
	uuid       uuid.UUID
	logger     zerolog.Logger

	// locks serializes mutations within one lobby
	locks *lock.KeyedLock

	// mu guards the registry and the player membership index; both are
	// always updated in the same critical section
	mu          sync.RWMutex
	lobbies     map[string]*lobby
	playerLobby map[string]string
}

// NewService creates a new matchmaking service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.RatingRepo == nil {
		return nil, ErrNilRatingRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		registry:    cfg.Registry,
		ratingRepo:  cfg.RatingRepo,
		engine:      cfg.Engine,
		sessions:    cfg.Sessions,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		logger:      cfg.Logger,
		locks:       lock.New(),
		lobbies:     make(map[string]*lobby),
		playerLobby: make(map[string]string),
	}, nil
}

// seedPlayer builds the in-game player value from the stored rating, or the
// engine's initial rating when the player has never played this game type.
func (s *service) seedPlayer(ctx context.Context, guildID, gameType, playerID, playerName string) (*models.Player, error) {
	record, err := s.ratingRepo.GetRating(ctx, &ratingRepo.GetRatingInput{
		GuildID:  guildID,
		GameType: gameType,
		PlayerID: playerID,
	})
	if err != nil {
		if !errors.Is(err, ratingRepo.ErrRatingNotFound) {
			return nil, fmt.Errorf("failed to load rating for %s: %w", playerID, err)
		}
		initial := s.engine.InitialRating(gameType)
		return &models.Player{ID: playerID, Name: playerName, Mu: initial.Mu, Sigma: initial.Sigma}, nil
	}

	return &models.Player{ID: playerID, Name: playerName, Mu: record.Mu, Sigma: record.Sigma}, nil
}

// withLobby runs fn while holding the lobby's keyed lock.
func (s *service) withLobby(lobbyID string, fn func(l *lobby) error) error {
	if lobbyID == "" {
		return ErrLobbyNotFound
	}

	s.locks.Lock(lobbyID)
	defer s.locks.Unlock(lobbyID)

	s.mu.RLock()
	l, ok := s.lobbies[lobbyID]
	s.mu.RUnlock()
	if !ok {
		return ErrLobbyNotFound
	}
	return fn(l)
}

// membership returns the lobby ID a player is queued in, or "".
func (s *service) membership(playerID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerLobby[playerID]
}

// removeFromLobby takes a player out of the queue and retires the lobby if
// it emptied. Called with the lobby's keyed lock held.
func (s *service) removeFromLobby(l *lobby, playerID string) (cancelled bool, newCreatorID string) {
	empty, newCreator := l.remove(playerID)

	s.mu.Lock()
	delete(s.playerLobby, playerID)
	if empty {
		delete(s.lobbies, l.id)
	}
	s.mu.Unlock()

	if empty {
		s.logger.Info().Str("lobby_id", l.id).Msg("lobby cancelled: queue empty")
		return true, ""
	}
	return false, newCreator
}

// CreateLobby opens a lobby with the creator as its first member
func (s *service) CreateLobby(ctx context.Context, input *CreateLobbyInput) (*CreateLobbyOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" || input.CreatorID == "" {
		return nil, errors.New("input, guild ID, channel ID and creator ID cannot be empty")
	}

	if _, err := s.registry.Get(input.GameType); err != nil {
		return nil, err
	}

	if s.sessions.InSession(input.CreatorID) {
		return nil, ErrInSession
	}
	if s.membership(input.CreatorID) != "" {
		return nil, ErrAlreadyInLobby
	}

	// Fail fast: a creator whose rating cannot be loaded gets no lobby
	creator, err := s.seedPlayer(ctx, input.GuildID, input.GameType, input.CreatorID, input.CreatorName)
	if err != nil {
		return nil, err
	}

	l := &lobby{
		id:        s.uuid.NewUUID(),
		guildID:   input.GuildID,
		channelID: input.ChannelID,
		gameType:  input.GameType,
		creatorID: input.CreatorID,
		rated:     input.Rated,
		private:   input.Private,
		queue:     []*models.Player{creator},
		whitelist: make(map[string]bool),
		blacklist: make(map[string]bool),
		createdAt: s.clock.Now(),
	}
	l.whitelist[input.CreatorID] = true
	for _, id := range input.Whitelist {
		l.whitelist[id] = true
	}

	s.mu.Lock()
	if s.playerLobby[input.CreatorID] != "" {
		s.mu.Unlock()
		return nil, ErrAlreadyInLobby
	}
	s.lobbies[l.id] = l
	s.playerLobby[input.CreatorID] = l.id
	s.mu.Unlock()

	s.logger.Info().
		Str("lobby_id", l.id).
		Str("game_type", l.gameType).
		Str("creator_id", l.creatorID).
		Bool("rated", l.rated).
		Bool("private", l.private).
		Msg("lobby created")

	return &CreateLobbyOutput{Lobby: l.snapshot()}, nil
}

// Join adds a player to a lobby's queue
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	var snap *LobbySnapshot
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if s.sessions.InSession(input.PlayerID) {
			return ErrInSession
		}

		switch s.membership(input.PlayerID) {
		case "":
		case l.id:
			return ErrAlreadyQueued
		default:
			return ErrAlreadyInLobby
		}

		if l.private {
			if !l.whitelist[input.PlayerID] {
				return ErrNotWhitelisted
			}
		} else if l.blacklist[input.PlayerID] {
			return ErrBanned
		}

		factory, err := s.registry.Get(l.gameType)
		if err != nil {
			return err
		}
		if counts := factory.PlayerCounts(); len(counts) > 0 && len(l.queue) >= maxCount(counts) {
			return ErrLobbyFull
		}

		player, err := s.seedPlayer(ctx, l.guildID, l.gameType, input.PlayerID, input.PlayerName)
		if err != nil {
			return err
		}

		l.queue = append(l.queue, player)
		s.mu.Lock()
		s.playerLobby[input.PlayerID] = l.id
		s.mu.Unlock()

		snap = l.snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("player_id", input.PlayerID).Msg("player joined lobby")
	return &JoinOutput{Lobby: snap}, nil
}

// Leave removes a player from a lobby; an emptied lobby is cancelled
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	output := &LeaveOutput{}
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if !l.contains(input.PlayerID) {
			return ErrNotQueued
		}

		output.Message = l.message
		output.Cancelled, output.NewCreatorID = s.removeFromLobby(l, input.PlayerID)
		if !output.Cancelled {
			output.Lobby = l.snapshot()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("player_id", input.PlayerID).Msg("player left lobby")
	return output, nil
}

// Kick removes another player from a lobby (creator only)
func (s *service) Kick(ctx context.Context, input *KickInput) (*KickOutput, error) {
	if input == nil || input.ActorID == "" || input.TargetID == "" {
		return nil, errors.New("input, actor ID and target ID cannot be empty")
	}

	output := &KickOutput{}
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if l.creatorID != input.ActorID {
			return ErrNotCreator
		}
		if !l.contains(input.TargetID) {
			return ErrNotQueued
		}

		output.Message = l.message
		output.Cancelled, output.NewCreatorID = s.removeFromLobby(l, input.TargetID)
		if !output.Cancelled {
			output.Lobby = l.snapshot()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("target_id", input.TargetID).Msg("player kicked from lobby")
	return output, nil
}

// Ban blocks a player from a lobby and removes them if queued (creator only)
func (s *service) Ban(ctx context.Context, input *BanInput) (*BanOutput, error) {
	if input == nil || input.ActorID == "" || input.TargetID == "" {
		return nil, errors.New("input, actor ID and target ID cannot be empty")
	}

	output := &BanOutput{}
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if l.creatorID != input.ActorID {
			return ErrNotCreator
		}

		if l.private {
			if !l.whitelist[input.TargetID] {
				return ErrCannotBan
			}
			delete(l.whitelist, input.TargetID)
		} else {
			l.blacklist[input.TargetID] = true
		}

		output.Message = l.message
		if l.contains(input.TargetID) {
			output.Cancelled, output.NewCreatorID = s.removeFromLobby(l, input.TargetID)
		}
		if !output.Cancelled {
			output.Lobby = l.snapshot()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("target_id", input.TargetID).Msg("player banned from lobby")
	return output, nil
}

// Invite clears the way for a player to join (creator only). On a private
// lobby the whitelist is the gate; on a public one an invite lifts a ban.
func (s *service) Invite(ctx context.Context, input *InviteInput) (*InviteOutput, error) {
	if input == nil || input.ActorID == "" || input.TargetID == "" {
		return nil, errors.New("input, actor ID and target ID cannot be empty")
	}

	var snap *LobbySnapshot
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if l.creatorID != input.ActorID {
			return ErrNotCreator
		}

		l.whitelist[input.TargetID] = true
		delete(l.blacklist, input.TargetID)

		snap = l.snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("target_id", input.TargetID).Msg("player invited to lobby")
	return &InviteOutput{Lobby: snap}, nil
}

// UpdateSettings toggles the rated and private flags (creator only)
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	var snap *LobbySnapshot
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if l.creatorID != input.ActorID {
			return ErrNotCreator
		}

		if input.Rated != nil {
			l.rated = *input.Rated
		}
		if input.Private != nil {
			// Existing members stay; the lists apply to future joins only
			l.private = *input.Private
		}

		snap = l.snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Lobby: snap}, nil
}

// Start hands the lobby off to the session layer and retires it (creator
// only)
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	var output *StartOutput
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		if l.creatorID != input.ActorID {
			return ErrNotCreator
		}

		factory, err := s.registry.Get(l.gameType)
		if err != nil {
			return err
		}
		if !games.VerifyPlayerCount(factory.PlayerCounts(), len(l.queue)) {
			return ErrCapacityNotMet
		}

		snap := l.snapshot()
		sessionID, err := s.sessions.StartGame(ctx, &StartGameRequest{
			LobbyID:   l.id,
			GuildID:   l.guildID,
			ChannelID: l.channelID,
			GameType:  l.gameType,
			Rated:     l.rated,
			CreatorID: l.creatorID,
			Players:   snap.Players,
		})
		if err != nil {
			// The lobby stays open; the creator may retry
			return fmt.Errorf("failed to start game: %w", err)
		}

		s.mu.Lock()
		for _, p := range l.queue {
			delete(s.playerLobby, p.ID)
		}
		delete(s.lobbies, l.id)
		s.mu.Unlock()

		output = &StartOutput{SessionID: sessionID, Message: l.message}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lobby_id", input.LobbyID).Str("session_id", output.SessionID).Msg("lobby started")
	return output, nil
}

// GetLobby retrieves a snapshot of a lobby
func (s *service) GetLobby(ctx context.Context, input *GetLobbyInput) (*GetLobbyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var snap *LobbySnapshot
	err := s.withLobby(input.LobbyID, func(l *lobby) error {
		snap = l.snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetLobbyOutput{Lobby: snap}, nil
}

// AttachMessage records the platform message that renders the lobby
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	return s.withLobby(input.LobbyID, func(l *lobby) error {
		l.message = input.Message
		return nil
	})
}

// LobbyForPlayer returns the lobby a player is queued in
func (s *service) LobbyForPlayer(ctx context.Context, playerID string) (*GetLobbyOutput, error) {
	lobbyID := s.membership(playerID)
	if lobbyID == "" {
		return nil, ErrLobbyNotFound
	}
	return s.GetLobby(ctx, &GetLobbyInput{LobbyID: lobbyID})
}

func maxCount(counts []int) int {
	max := counts[0]
	for _, c := range counts[1:] {
		if c > max {
			max = c
		}
	}
	return max
}

var _ Service = (*service)(nil)
