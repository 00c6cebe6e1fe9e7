package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/services/matchmaking"
)

// LobbyCommand handles the /lobby command: creator-side management of the
// lobby the actor is currently queued in.
type LobbyCommand struct {
	BaseCommand
	matchmaking matchmaking.Service
	view        *lobbyView
	logger      zerolog.Logger
}

// NewLobbyCommand creates a new lobby command handler
func NewLobbyCommand(mm matchmaking.Service, view *lobbyView, logger zerolog.Logger) *LobbyCommand {
	return &LobbyCommand{
		BaseCommand: BaseCommand{
			Name:        "lobby",
			Description: "Manage the lobby you are in",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "kick",
					Description: "Remove a player from your lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "The player to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ban",
					Description: "Ban a player from your lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "The player to ban",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "invite",
					Description: "Invite a player to your lobby",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "The player to invite",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Change your lobby's settings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "rated",
							Description: "Whether the match moves ratings",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "private",
							Description: "Whether only invited players may join",
						},
					},
				},
			},
		},
		matchmaking: mm,
		view:        view,
		logger:      logger,
	}
}

// Handle processes a /lobby interaction
func (c *LobbyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, _ := interactionUser(i)

	current, err := c.matchmaking.LobbyForPlayer(ctx, userID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "You are not in a lobby.")
	}
	lobbyID := current.Lobby.ID

	sub := i.ApplicationCommandData().Options[0]
	switch sub.Name {
	case "kick":
		return c.handleKick(ctx, s, i, lobbyID, userID, sub)
	case "ban":
		return c.handleBan(ctx, s, i, lobbyID, userID, sub)
	case "invite":
		return c.handleInvite(ctx, s, i, lobbyID, userID, sub)
	case "settings":
		return c.handleSettings(ctx, s, i, lobbyID, userID, sub)
	default:
		return RespondWithEphemeralMessage(s, i, "Unknown subcommand.")
	}
}

func (c *LobbyCommand) handleKick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	target := sub.Options[0].UserValue(s)
	output, err := c.matchmaking.Kick(ctx, &matchmaking.KickInput{
		LobbyID:  lobbyID,
		ActorID:  userID,
		TargetID: target.ID,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	c.view.afterRemoval(ctx, lobbyID, output.Cancelled, output.Message)
	return RespondWithEphemeralMessage(s, i, "Kicked <@"+target.ID+">.")
}

func (c *LobbyCommand) handleBan(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	target := sub.Options[0].UserValue(s)
	output, err := c.matchmaking.Ban(ctx, &matchmaking.BanInput{
		LobbyID:  lobbyID,
		ActorID:  userID,
		TargetID: target.ID,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	c.view.afterRemoval(ctx, lobbyID, output.Cancelled, output.Message)
	return RespondWithEphemeralMessage(s, i, "Banned <@"+target.ID+"> from this lobby.")
}

func (c *LobbyCommand) handleInvite(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	target := sub.Options[0].UserValue(s)
	if _, err := c.matchmaking.Invite(ctx, &matchmaking.InviteInput{
		LobbyID:  lobbyID,
		ActorID:  userID,
		TargetID: target.ID,
	}); err != nil {
		return RespondWithUserError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Invited <@"+target.ID+">. They can join this lobby now.")
}

func (c *LobbyCommand) handleSettings(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, lobbyID, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	input := &matchmaking.UpdateSettingsInput{
		LobbyID: lobbyID,
		ActorID: userID,
	}
	for _, opt := range sub.Options {
		value := opt.BoolValue()
		switch opt.Name {
		case "rated":
			input.Rated = &value
		case "private":
			input.Private = &value
		}
	}
	if input.Rated == nil && input.Private == nil {
		return RespondWithEphemeralMessage(s, i, "Nothing to change.")
	}

	if _, err := c.matchmaking.UpdateSettings(ctx, input); err != nil {
		return RespondWithUserError(s, i, err)
	}

	c.view.refresh(ctx, lobbyID)
	return RespondWithEphemeralMessage(s, i, "Lobby settings updated.")
}
