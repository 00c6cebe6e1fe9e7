package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/common/clock"
	"github.com/parlorbot/parlor/internal/common/lock"
	"github.com/parlorbot/parlor/internal/common/uuid"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ordering"
	"github.com/parlorbot/parlor/internal/ratings"
	matchRepo "github.com/parlorbot/parlor/internal/repositories/match"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/transport"
)

// threadNameLimit is Discord's maximum thread name length.
const threadNameLimit = 100

// service implements the Service interface
type service struct {
	registry   *games.Registry
	ratingRepo ratingRepo.Repository
	matchRepo  matchRepo.Repository
	engine     ratings.Engine
	messenger  transport.Messenger
	messaging  messaging.Service
	clock      clock.Clock
	uuid       uuid.UUID
	logger     zerolog.Logger

	// locks serializes moves within one session
	locks *lock.KeyedLock

	// rngMu guards the seating shuffle source
	rngMu sync.Mutex
	rng   *rand.Rand

	// mu guards the registry and the player membership index; both are
	// always updated in the same critical section
	mu            sync.RWMutex
	sessions      map[string]*session
	playerSession map[string]string
}

// NewService creates a new session service
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
	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	seed := cfg.RandSeed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}

	return &service{
		registry:      cfg.Registry,
		ratingRepo:    cfg.RatingRepo,
		matchRepo:     cfg.MatchRepo,
		engine:        cfg.Engine,
		messenger:     cfg.Messenger,
		messaging:     cfg.Messaging,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
		logger:        cfg.Logger,
		locks:         lock.New(),
		rng:           rand.New(rand.NewSource(seed)),
		sessions:      make(map[string]*session),
		playerSession: make(map[string]string),
	}, nil
}

// StartGame creates a session from a lobby hand-off
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" || len(input.Players) == 0 {
		return nil, errors.New("input, guild ID, channel ID and players cannot be empty")
	}

	factory, err := s.registry.Get(input.GameType)
	if err != nil {
		return nil, err
	}

	for _, p := range input.Players {
		if s.InSession(p.ID) {
			return nil, ErrPlayerBusy
		}
	}

	players, err := s.refreshRatings(ctx, input)
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	seated := ordering.Order(players, input.CreatorID, factory.Ordering(), s.rng)
	s.rngMu.Unlock()

	plugin, err := factory.New(seated)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	threadID, err := s.messenger.CreateGameThread(ctx, input.ChannelID, threadName(factory.Name(), seated))
	if err != nil {
		return nil, fmt.Errorf("failed to create game thread: %w", err)
	}
	for _, p := range seated {
		if err := s.messenger.AddThreadMember(ctx, threadID, p.ID); err != nil {
			s.logger.Warn().Err(err).Str("player_id", p.ID).Msg("failed to add player to game thread")
		}
	}

	sess := &session{
		id:        s.uuid.NewUUID(),
		guildID:   input.GuildID,
		channelID: input.ChannelID,
		threadID:  threadID,
		gameType:  input.GameType,
		gameName:  factory.Name(),
		rated:     input.Rated,
		creatorID: input.CreatorID,
		players:   seated,
		plugin:    plugin,
		startedAt: s.clock.Now(),
	}

	// Post the opening state before the session becomes reachable, so no
	// move can race the message handle
	s.announceStart(ctx, sess)

	s.mu.Lock()
	for _, p := range seated {
		if s.playerSession[p.ID] != "" {
			s.mu.Unlock()
			s.cleanupThread(ctx, sess)
			return nil, ErrPlayerBusy
		}
	}
	s.sessions[sess.id] = sess
	for _, p := range seated {
		s.playerSession[p.ID] = sess.id
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("session_id", sess.id).
		Str("game_type", sess.gameType).
		Str("lobby_id", input.LobbyID).
		Int("players", len(seated)).
		Bool("rated", sess.rated).
		Msg("game session started")

	return &StartGameOutput{SessionID: sess.id, ThreadID: threadID}, nil
}

// SubmitMove applies one move for the acting player. State mutation and
// settlement run under the session's lock; message delivery runs after it is
// released, so a slow Discord API call never blocks the next mover longer
// than the move itself.
func (s *service) SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error) {
	if input == nil || input.SessionID == "" || input.PlayerID == "" {
		return nil, errors.New("input, session ID and player ID cannot be empty")
	}

	output, announce, err := s.applyMove(ctx, input)
	if announce != nil {
		announce()
	}
	return output, err
}

// applyMove holds the session's keyed lock through the move and, on a
// terminal outcome, through settlement and deregistration. It returns the
// announcement work to run once the lock is released.
func (s *service) applyMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, func(), error) {
	s.locks.Lock(input.SessionID)
	defer s.locks.Unlock(input.SessionID)

	s.mu.RLock()
	sess, ok := s.sessions[input.SessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if sess.ending {
		return nil, nil, ErrGameEnding
	}

	actor := sess.player(input.PlayerID)
	if actor == nil {
		return nil, nil, ErrNotInSession
	}

	desc, err := s.registry.Move(sess.gameType, input.Move)
	if err != nil {
		return nil, nil, err
	}
	if desc.TurnRequired {
		current := sess.plugin.CurrentTurn()
		if current == nil || current.ID != actor.ID {
			return nil, nil, ErrNotYourTurn
		}
	}

	args, err := games.CoerceArgs(desc, input.RawArgs)
	if err != nil {
		return nil, nil, err
	}

	handler, ok := sess.plugin.Resolve(games.EffectiveHandlerName(desc))
	if !ok {
		return nil, nil, fmt.Errorf("move %q has no handler", input.Move)
	}

	panicked, err := s.invoke(handler, actor, args)
	if panicked {
		// A crashed game cannot be trusted to continue; abort without
		// touching ratings
		s.logger.Error().Err(err).
			Str("session_id", sess.id).
			Str("move", input.Move).
			Msg("move handler panicked; aborting game")
		return nil, s.finish(ctx, sess, models.ErrorOutcome("the game hit an internal error")), err
	}
	if err != nil {
		// The move did not happen; only the actor hears about it
		return nil, nil, err
	}

	if outcome := sess.plugin.Outcome(); outcome != nil {
		return &SubmitMoveOutput{Ended: true}, s.finish(ctx, sess, outcome), nil
	}

	content := s.buildContent(sess, s.turnMessage(ctx, sess), false)
	return &SubmitMoveOutput{}, func() { s.deliver(ctx, sess, content) }, nil
}

// Autocomplete queries a move parameter's suggestions from the game
func (s *service) Autocomplete(ctx context.Context, input *AutocompleteInput) (*AutocompleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	// Providers read live game state, so they run under the move lock too
	s.locks.Lock(input.SessionID)
	defer s.locks.Unlock(input.SessionID)

	s.mu.RLock()
	sess, ok := s.sessions[input.SessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	actor := sess.player(input.PlayerID)
	if actor == nil {
		return nil, ErrNotInSession
	}

	provider, ok := sess.plugin.(games.Autocompleter)
	if !ok {
		return &AutocompleteOutput{}, nil
	}
	return &AutocompleteOutput{Choices: provider.Autocomplete(input.Provider, actor)}, nil
}

// GetSession retrieves a snapshot of a session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// snapshot() asks the plugin for the current turn, which a concurrent
	// move may be rewriting; the keyed lock serializes them
	s.locks.Lock(input.SessionID)
	defer s.locks.Unlock(input.SessionID)

	s.mu.RLock()
	sess, ok := s.sessions[input.SessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &GetSessionOutput{Session: sess.snapshot()}, nil
}

// SessionForPlayer returns the session a player is in
func (s *service) SessionForPlayer(ctx context.Context, playerID string) (*GetSessionOutput, error) {
	s.mu.RLock()
	sessionID := s.playerSession[playerID]
	s.mu.RUnlock()
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	return s.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
}

// InSession reports whether a player is in a running game
func (s *service) InSession(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerSession[playerID] != ""
}

// invoke runs a move handler, converting a panic into an error so one broken
// game cannot take the bot down.
func (s *service) invoke(handler games.MoveHandler, actor *models.Player, args games.Args) (panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			err = fmt.Errorf("move handler panicked: %v", r)
		}
	}()
	return false, handler(actor, args)
}

// finish settles the outcome and retires the session, both under the
// session's keyed lock, and returns the deferred announcement work. The
// session stops being reachable before any message is sent.
func (s *service) finish(ctx context.Context, sess *session, outcome *models.Outcome) func() {
	sess.ending = true

	if !sess.settled {
		sess.settled = true
		if err := s.settle(ctx, sess, outcome); err != nil {
			s.logger.Error().Err(err).Str("session_id", sess.id).Msg("failed to settle game outcome")
		}
	}

	s.mu.Lock()
	delete(s.sessions, sess.id)
	for _, p := range sess.players {
		if s.playerSession[p.ID] == sess.id {
			delete(s.playerSession, p.ID)
		}
	}
	s.mu.Unlock()

	s.logger.Info().Str("session_id", sess.id).Str("game_type", sess.gameType).Msg("game session finished")

	content := s.buildContent(sess, s.outcomeMessage(ctx, outcome), true)
	return func() {
		s.deliver(ctx, sess, content)
		if err := s.messenger.CloseThread(ctx, sess.threadID); err != nil {
			s.logger.Warn().Err(err).Str("thread_id", sess.threadID).Msg("failed to close game thread")
		}
	}
}

// announceStart posts the opening state into the game thread.
func (s *service) announceStart(ctx context.Context, sess *session) {
	mentions := make([]string, len(sess.players))
	for i, p := range sess.players {
		mentions[i] = p.Mention()
	}

	description := ""
	if started, err := s.messaging.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		PlayerMentions: mentions,
	}); err == nil {
		description = started.Message
	}
	if turn := s.turnMessage(ctx, sess); turn != "" {
		description += "\n\n" + turn
	}

	s.deliver(ctx, sess, s.buildContent(sess, description, false))
}

// turnMessage phrases whose move is expected, or returns "" for games
// without a turn holder.
func (s *service) turnMessage(ctx context.Context, sess *session) string {
	current := sess.plugin.CurrentTurn()
	if current == nil {
		return ""
	}
	turn, err := s.messaging.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
		PlayerMention: current.Mention(),
	})
	if err != nil {
		return ""
	}
	return turn.Message
}

// outcomeMessage phrases the terminal result.
func (s *service) outcomeMessage(ctx context.Context, outcome *models.Outcome) string {
	switch {
	case outcome.IsError():
		return "The game ended early: " + outcome.Err

	case outcome.Winner != nil:
		if over, err := s.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			WinnerMention: outcome.Winner.Mention(),
		}); err == nil {
			return over.Message
		}
		return outcome.Winner.Mention() + " wins!"

	case len(outcome.Placements) > 0 && len(outcome.Placements[0]) > 1:
		if draw, err := s.messaging.GetDrawMessage(ctx, &messaging.GetDrawMessageInput{}); err == nil {
			return draw.Message
		}
		return "It's a draw!"

	case len(outcome.Placements) > 0 && len(outcome.Placements[0]) == 1:
		if over, err := s.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
			WinnerMention: outcome.Placements[0][0].Mention(),
		}); err == nil {
			return over.Message
		}
		return outcome.Placements[0][0].Mention() + " wins!"
	}
	return "The game is over."
}

// buildContent renders the plugin state into a platform-neutral message.
// Must run while the plugin cannot move: under the session lock, or before
// the session is registered.
func (s *service) buildContent(sess *session, description string, final bool) *transport.MessageContent {
	content := &transport.MessageContent{
		Title:       sess.gameName,
		Description: description,
	}
	if state := sess.plugin.State(); state != nil {
		for _, f := range state.Fields {
			content.Fields = append(content.Fields, transport.Field{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}
		for _, b := range state.Buttons {
			content.Buttons = append(content.Buttons, transport.Button{
				Label:    b.Label,
				Emoji:    b.Emoji,
				Style:    b.Style,
				Row:      b.Row,
				Disabled: b.Disabled || final,
				Action: transport.Action{
					Type:         transport.ActionMove,
					SessionID:    sess.id,
					Move:         b.Move,
					Args:         b.Args,
					TurnRequired: b.TurnRequired,
				},
			})
		}
	}
	return content
}

// deliver edits the session's state message in place, or posts it if the
// session does not have one yet. Delivery failures are logged, never
// surfaced: the game state is authoritative, the message is a view.
func (s *service) deliver(ctx context.Context, sess *session, content *transport.MessageContent) {
	sess.msgMu.Lock()
	defer sess.msgMu.Unlock()

	if sess.message == nil {
		handle, err := s.messenger.SendMessage(ctx, sess.threadID, content)
		if err != nil {
			s.logger.Error().Err(err).Str("session_id", sess.id).Msg("failed to post game state")
			return
		}
		sess.message = handle
		return
	}
	if err := s.messenger.EditMessage(ctx, sess.message, content); err != nil {
		s.logger.Error().Err(err).Str("session_id", sess.id).Msg("failed to update game state")
	}
}

// refreshRatings reloads every player's rating at hand-off time, so a lobby
// that sat open does not seed the game with stale numbers.
func (s *service) refreshRatings(ctx context.Context, input *StartGameInput) ([]*models.Player, error) {
	ids := make([]string, len(input.Players))
	for i, p := range input.Players {
		ids[i] = p.ID
	}

	found, err := s.ratingRepo.GetRatings(ctx, &ratingRepo.GetRatingsInput{
		GuildID:   input.GuildID,
		GameType:  input.GameType,
		PlayerIDs: ids,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	players := make([]*models.Player, len(input.Players))
	for i, p := range input.Players {
		refreshed := *p
		if record, ok := found.Ratings[p.ID]; ok {
			refreshed.Mu = record.Mu
			refreshed.Sigma = record.Sigma
		} else {
			initial := s.engine.InitialRating(input.GameType)
			refreshed.Mu = initial.Mu
			refreshed.Sigma = initial.Sigma
		}
		players[i] = &refreshed
	}
	return players, nil
}

// cleanupThread tears down the thread of a session that never registered.
func (s *service) cleanupThread(ctx context.Context, sess *session) {
	if sess.message != nil {
		if err := s.messenger.DeleteMessage(ctx, sess.message); err != nil {
			s.logger.Warn().Err(err).Str("session_id", sess.id).Msg("failed to delete orphaned state message")
		}
	}
	if err := s.messenger.CloseThread(ctx, sess.threadID); err != nil {
		s.logger.Warn().Err(err).Str("thread_id", sess.threadID).Msg("failed to close orphaned game thread")
	}
}

func threadName(gameName string, players []*models.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	name := gameName + ": " + strings.Join(names, " vs ")
	if r := []rune(name); len(r) > threadNameLimit {
		name = string(r[:threadNameLimit])
	}
	return name
}

var _ Service = (*service)(nil)
