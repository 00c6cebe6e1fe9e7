package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/transport"
)

// PlayCommand handles the /play command: it opens a lobby and posts the
// lobby message with its join/leave/start buttons.
type PlayCommand struct {
	BaseCommand
	matchmaking matchmaking.Service
	registry    *games.Registry
	messaging   messaging.Service
	logger      zerolog.Logger
}

// NewPlayCommand creates a new play command handler
func NewPlayCommand(mm matchmaking.Service, registry *games.Registry, msgSvc messaging.Service, logger zerolog.Logger) *PlayCommand {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, gameType := range registry.Types() {
		factory, err := registry.Get(gameType)
		if err != nil {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  factory.Name(),
			Value: gameType,
		})
	}

	return &PlayCommand{
		BaseCommand: BaseCommand{
			Name:        "play",
			Description: "Open a lobby for a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game",
					Description: "Which game to play",
					Required:    true,
					Choices:     choices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "rated",
					Description: "Whether the match moves ratings (default: yes)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "private",
					Description: "Whether only invited players may join (default: no)",
				},
			},
		},
		matchmaking: mm,
		registry:    registry,
		messaging:   msgSvc,
		logger:      logger,
	}
}

// Handle processes a /play interaction
func (c *PlayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	options := optionMap(i.ApplicationCommandData().Options)
	gameType := options["game"].StringValue()
	rated := true
	if opt, ok := options["rated"]; ok {
		rated = opt.BoolValue()
	}
	private := false
	if opt, ok := options["private"]; ok {
		private = opt.BoolValue()
	}

	output, err := c.matchmaking.CreateLobby(ctx, &matchmaking.CreateLobbyInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		GameType:    gameType,
		CreatorID:   userID,
		CreatorName: username,
		Rated:       rated,
		Private:     private,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	factory, err := c.registry.Get(gameType)
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	content := lobbyContent(ctx, output.Lobby, factory, c.messaging)
	components, err := buildComponents(content.Buttons)
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	// The lobby message is the interaction response itself, so it appears
	// where the command was typed
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildEmbed(content)},
			Components: components,
		},
	}); err != nil {
		return err
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		c.logger.Warn().Err(err).Str("lobby_id", output.Lobby.ID).Msg("failed to resolve lobby message")
		return nil
	}
	if err := c.matchmaking.AttachMessage(ctx, &matchmaking.AttachMessageInput{
		LobbyID: output.Lobby.ID,
		Message: &transport.MessageHandle{ChannelID: i.ChannelID, MessageID: msg.ID},
	}); err != nil {
		c.logger.Warn().Err(err).Str("lobby_id", output.Lobby.ID).Msg("failed to attach lobby message")
	}
	return nil
}
