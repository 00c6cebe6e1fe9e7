package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/session"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// Autocompleter is implemented by commands with autocomplete options.
type Autocompleter interface {
	// HandleAutocomplete answers an autocomplete query
	HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// interactionUser extracts the acting user's ID and display name. Guild
// interactions carry a member, DM interactions a bare user.
func interactionUser(i *discordgo.InteractionCreate) (userID, username string) {
	if i.Member != nil && i.Member.User != nil {
		username = i.Member.User.Username
		if i.Member.Nick != "" {
			username = i.Member.Nick
		}
		return i.Member.User.ID, username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// optionMap indexes an interaction's options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// RespondWithEphemeralMessage sends a response only the acting user can see
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, fields []*discordgo.MessageEmbedField) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       title,
					Description: description,
					Color:       colorGreen,
					Fields:      fields,
				},
			},
		},
	})
}

// RespondWithUserError renders a failure ephemerally, translating service
// sentinels into language a player can act on. Raw internal errors never
// reach the channel.
func RespondWithUserError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithEphemeralMessage(s, i, userErrorMessage(err))
}

func userErrorMessage(err error) string {
	switch {
	case errors.Is(err, matchmaking.ErrLobbyNotFound):
		return "That lobby no longer exists."
	case errors.Is(err, matchmaking.ErrAlreadyQueued):
		return "You are already in this lobby."
	case errors.Is(err, matchmaking.ErrAlreadyInLobby):
		return "You are already queued in another lobby. Leave it first."
	case errors.Is(err, matchmaking.ErrInSession):
		return "You are in the middle of a game. Finish it first."
	case errors.Is(err, matchmaking.ErrNotQueued):
		return "That player is not in the lobby."
	case errors.Is(err, matchmaking.ErrNotCreator):
		return "Only the lobby creator can do that."
	case errors.Is(err, matchmaking.ErrNotWhitelisted):
		return "This lobby is private and you are not on its list."
	case errors.Is(err, matchmaking.ErrBanned):
		return "You have been banned from this lobby."
	case errors.Is(err, matchmaking.ErrLobbyFull):
		return "The lobby is full."
	case errors.Is(err, matchmaking.ErrCapacityNotMet):
		return "Not enough players to start yet."
	case errors.Is(err, matchmaking.ErrCannotBan):
		return "That player is not on this lobby's list."
	case errors.Is(err, session.ErrSessionNotFound):
		return "That game is over."
	case errors.Is(err, session.ErrGameEnding):
		return "The game is already ending."
	case errors.Is(err, session.ErrNotYourTurn):
		return "It is not your turn."
	case errors.Is(err, session.ErrNotInSession):
		return "You are not in this game."
	case errors.Is(err, session.ErrPlayerBusy):
		return "Someone in the lobby is still in another game."
	case errors.Is(err, games.ErrUnknownGameType):
		return "I don't know that game."
	case errors.Is(err, games.ErrUnknownMove):
		return "That move does not exist."
	default:
		return "Something went wrong: " + err.Error()
	}
}
