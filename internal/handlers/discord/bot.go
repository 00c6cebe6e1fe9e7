package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/repositories/match"
	"github.com/parlorbot/parlor/internal/repositories/rating"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/services/session"
	"github.com/parlorbot/parlor/internal/transport"
)

// Config holds the dependencies of the Discord bot
type Config struct {
	// Session is the Discord session the bot runs over. It must not be
	// opened yet; Start opens it.
	Session *discordgo.Session

	ApplicationID string
	GuildID       string

	Matchmaking matchmaking.Service
	Sessions    session.Service
	Messaging   messaging.Service
	Registry    *games.Registry
	RatingRepo  rating.Repository
	MatchRepo   match.Repository
	Messenger   transport.Messenger
	Logger      zerolog.Logger
}

// Bot is the Discord front end: it registers the slash commands and routes
// interactions to the matchmaking and session services.
type Bot struct {
	session     *discordgo.Session
	appID       string
	guildID     string
	matchmaking matchmaking.Service
	sessions    session.Service
	registry    *games.Registry
	view        *lobbyView
	logger      zerolog.Logger

	commands map[string]CommandHandler

	// commandIDs maps command name to registered command ID for cleanup
	commandIDs map[string]string
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.ApplicationID == "" {
		return nil, errors.New("application ID cannot be empty")
	}
	if cfg.Matchmaking == nil {
		return nil, errors.New("matchmaking service cannot be nil")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry cannot be nil")
	}
	if cfg.RatingRepo == nil {
		return nil, errors.New("rating repository cannot be nil")
	}
	if cfg.MatchRepo == nil {
		return nil, errors.New("match repository cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	view := &lobbyView{
		matchmaking: cfg.Matchmaking,
		registry:    cfg.Registry,
		messaging:   cfg.Messaging,
		messenger:   cfg.Messenger,
		logger:      cfg.Logger,
	}

	b := &Bot{
		session:     cfg.Session,
		appID:       cfg.ApplicationID,
		guildID:     cfg.GuildID,
		matchmaking: cfg.Matchmaking,
		sessions:    cfg.Sessions,
		registry:    cfg.Registry,
		view:        view,
		logger:      cfg.Logger,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
	}

	b.registerCommand(NewPlayCommand(cfg.Matchmaking, cfg.Registry, cfg.Messaging, cfg.Logger))
	b.registerCommand(NewLobbyCommand(cfg.Matchmaking, view, cfg.Logger))
	b.registerCommand(NewLeaderboardCommand(cfg.RatingRepo, cfg.Registry))
	b.registerCommand(NewHistoryCommand(cfg.MatchRepo))
	b.registerCommand(NewProfileCommand(cfg.Registry, cfg.RatingRepo, cfg.MatchRepo))
	for _, gameType := range cfg.Registry.Types() {
		factory, err := cfg.Registry.Get(gameType)
		if err != nil {
			return nil, err
		}
		b.registerCommand(NewGameCommand(factory, cfg.Sessions, cfg.Logger))
	}

	b.session.AddHandler(b.handleInteraction)
	return b, nil
}

func (b *Bot) registerCommand(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd
}

// Start opens the Discord connection and registers the slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	for name, cmd := range b.commands {
		created, err := b.session.ApplicationCommandCreate(b.appID, b.guildID, cmd.GetCommand())
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", name, err)
		}
		b.commandIDs[name] = created.ID
		b.logger.Info().Str("command", name).Msg("registered command")
	}
	return nil
}

// Stop unregisters the slash commands and closes the connection.
func (b *Bot) Stop() error {
	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(b.appID, b.guildID, id); err != nil {
			b.logger.Warn().Err(err).Str("command", name).Msg("failed to delete command")
		}
	}
	return b.session.Close()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		cmd, ok := b.commands[name]
		if !ok {
			b.logger.Warn().Str("command", name).Msg("unknown command")
			return
		}
		err = cmd.Handle(s, i)

	case discordgo.InteractionApplicationCommandAutocomplete:
		name := i.ApplicationCommandData().Name
		ac, ok := b.commands[name].(Autocompleter)
		if !ok {
			return
		}
		err = ac.HandleAutocomplete(s, i)

	case discordgo.InteractionMessageComponent:
		err = b.handleComponent(s, i)

	default:
		return
	}

	if err != nil {
		b.logger.Error().Err(err).Msg("failed to handle interaction")
	}
}

// handleComponent routes a button press by its decoded action.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	action, err := DecodeAction(i.MessageComponentData().CustomID)
	if err != nil {
		b.logger.Warn().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("undecodable component")
		return RespondWithEphemeralMessage(s, i, "That button is broken.")
	}

	switch action.Type {
	case transport.ActionJoinLobby:
		return b.handleJoin(ctx, s, i, action.LobbyID, userID, username)
	case transport.ActionLeaveLobby:
		return b.handleLeave(ctx, s, i, action.LobbyID, userID)
	case transport.ActionStartLobby:
		return b.handleStart(ctx, s, i, action.LobbyID, userID)
	case transport.ActionMove:
		return b.handleMove(ctx, s, i, action, userID)
	default:
		return RespondWithEphemeralMessage(s, i, "That button is broken.")
	}
}

func (b *Bot) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID, username string) error {
	_, err := b.matchmaking.Join(ctx, &matchmaking.JoinInput{
		LobbyID:    lobbyID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	b.view.refresh(ctx, lobbyID)
	return RespondWithEphemeralMessage(s, i, "You joined the lobby.")
}

func (b *Bot) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string) error {
	output, err := b.matchmaking.Leave(ctx, &matchmaking.LeaveInput{
		LobbyID:  lobbyID,
		PlayerID: userID,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	b.view.afterRemoval(ctx, lobbyID, output.Cancelled, output.Message)
	if output.Cancelled {
		return RespondWithEphemeralMessage(s, i, "You left and the lobby was closed.")
	}
	return RespondWithEphemeralMessage(s, i, "You left the lobby.")
}

func (b *Bot) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string) error {
	output, err := b.matchmaking.Start(ctx, &matchmaking.StartInput{
		LobbyID: lobbyID,
		ActorID: userID,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	sess, err := b.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: output.SessionID})
	if err != nil {
		// The game may have ended before we could look at it
		return RespondWithEphemeralMessage(s, i, "The game has started.")
	}

	if output.Message != nil {
		factory, ferr := b.registry.Get(sess.Session.GameType)
		if ferr == nil {
			content := startedGameContent(sess.Session, factory)
			if eerr := b.view.messenger.EditMessage(ctx, output.Message, content); eerr != nil {
				b.logger.Warn().Err(eerr).Str("lobby_id", lobbyID).Msg("failed to update started lobby message")
			}
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("The game has started in <#%s>!", sess.Session.ThreadID))
}

func (b *Bot) handleMove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action *transport.Action, userID string) error {
	// Turn-bound buttons get a cheap out-of-turn check before the move path;
	// the session service re-checks authoritatively under its lock
	if action.TurnRequired {
		if out, err := b.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: action.SessionID}); err == nil && turnBlocked(out.Session, userID) {
			return RespondWithUserError(s, i, session.ErrNotYourTurn)
		}
	}

	_, err := b.sessions.SubmitMove(ctx, &session.SubmitMoveInput{
		SessionID: action.SessionID,
		PlayerID:  userID,
		Move:      action.Move,
		RawArgs:   action.Args,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	// The session service already edited the game message; acknowledging the
	// press is all that is left
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// turnBlocked reports whether a turn-bound press from playerID is out of
// turn. A game with no current turn blocks nobody.
func turnBlocked(sess *session.SessionSnapshot, playerID string) bool {
	return sess.CurrentTurnID != "" && sess.CurrentTurnID != playerID
}

// lobbyView redraws lobby messages after queue changes. Failures are logged
// and swallowed: a stale embed is not worth failing the interaction over.
type lobbyView struct {
	matchmaking matchmaking.Service
	registry    *games.Registry
	messaging   messaging.Service
	messenger   transport.Messenger
	logger      zerolog.Logger
}

func (v *lobbyView) refresh(ctx context.Context, lobbyID string) {
	output, err := v.matchmaking.GetLobby(ctx, &matchmaking.GetLobbyInput{LobbyID: lobbyID})
	if err != nil {
		v.logger.Warn().Err(err).Str("lobby_id", lobbyID).Msg("failed to load lobby for redraw")
		return
	}
	if output.Lobby.Message == nil {
		return
	}

	factory, err := v.registry.Get(output.Lobby.GameType)
	if err != nil {
		v.logger.Warn().Err(err).Str("lobby_id", lobbyID).Msg("failed to resolve game for redraw")
		return
	}

	content := lobbyContent(ctx, output.Lobby, factory, v.messaging)
	if err := v.messenger.EditMessage(ctx, output.Lobby.Message, content); err != nil {
		v.logger.Warn().Err(err).Str("lobby_id", lobbyID).Msg("failed to redraw lobby message")
	}
}

// afterRemoval cleans up after a leave, kick or ban: the message goes away
// with a cancelled lobby and gets redrawn otherwise.
func (v *lobbyView) afterRemoval(ctx context.Context, lobbyID string, cancelled bool, handle *transport.MessageHandle) {
	if cancelled {
		if handle == nil {
			return
		}
		if err := v.messenger.DeleteMessage(ctx, handle); err != nil {
			v.logger.Warn().Err(err).Str("lobby_id", lobbyID).Msg("failed to delete lobby message")
		}
		return
	}
	v.refresh(ctx, lobbyID)
}
