package discord

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/services/session"
)

// maxAutocompleteChoices is Discord's cap on autocomplete suggestions
const maxAutocompleteChoices = 25

// GameCommand is the slash-command surface of one game type: one subcommand
// per declared move. It is built from the game's descriptors at startup.
type GameCommand struct {
	BaseCommand
	factory  games.Factory
	sessions session.Service
	logger   zerolog.Logger
}

// NewGameCommand builds the command for one registered game
func NewGameCommand(factory games.Factory, sessions session.Service, logger zerolog.Logger) *GameCommand {
	var options []*discordgo.ApplicationCommandOption
	for _, move := range factory.Moves() {
		sub := &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        move.Name,
			Description: move.Description,
		}
		for _, param := range move.Params {
			sub.Options = append(sub.Options, &discordgo.ApplicationCommandOption{
				Type:         optionType(param.Type),
				Name:         param.Name,
				Description:  param.Description,
				Required:     true,
				Autocomplete: param.Autocomplete != "",
			})
		}
		options = append(options, sub)
	}

	return &GameCommand{
		BaseCommand: BaseCommand{
			Name:        factory.GameType(),
			Description: factory.Name() + " moves",
			Options:     options,
		},
		factory:  factory,
		sessions: sessions,
		logger:   logger,
	}
}

func optionType(t games.ParamType) discordgo.ApplicationCommandOptionType {
	switch t {
	case games.ParamInt:
		return discordgo.ApplicationCommandOptionInteger
	case games.ParamFloat:
		return discordgo.ApplicationCommandOptionNumber
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

// Handle submits the invoked move against the actor's running game
func (c *GameCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, _ := interactionUser(i)

	current, err := c.sessions.SessionForPlayer(ctx, userID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "You are not in a game of "+c.factory.Name()+".")
	}
	if current.Session.GameType != c.factory.GameType() {
		return RespondWithEphemeralMessage(s, i, "Your running game is not "+c.factory.Name()+".")
	}

	sub := i.ApplicationCommandData().Options[0]
	rawArgs := make(map[string]string, len(sub.Options))
	for _, opt := range sub.Options {
		rawArgs[opt.Name] = rawOptionValue(opt)
	}

	output, err := c.sessions.SubmitMove(ctx, &session.SubmitMoveInput{
		SessionID: current.Session.ID,
		PlayerID:  userID,
		Move:      sub.Name,
		RawArgs:   rawArgs,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	if output.Ended {
		return RespondWithEphemeralMessage(s, i, "Move played. The game is over!")
	}
	return RespondWithEphemeralMessage(s, i, "Move played.")
}

// HandleAutocomplete answers suggestions for a move parameter from the
// actor's running game.
func (c *GameCommand) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, _ := interactionUser(i)

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	if provider, ok := c.focusedProvider(i); ok {
		current, err := c.sessions.SessionForPlayer(ctx, userID)
		if err == nil {
			output, err := c.sessions.Autocomplete(ctx, &session.AutocompleteInput{
				SessionID: current.Session.ID,
				PlayerID:  userID,
				Provider:  provider,
			})
			if err == nil {
				for _, choice := range output.Choices {
					choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
						Name:  choice.Label,
						Value: choice.Value,
					})
					if len(choices) == maxAutocompleteChoices {
						break
					}
				}
			}
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}

// focusedProvider maps the focused option back to its declared autocomplete
// provider.
func (c *GameCommand) focusedProvider(i *discordgo.InteractionCreate) (string, bool) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", false
	}
	sub := data.Options[0]

	focused := ""
	for _, opt := range sub.Options {
		if opt.Focused {
			focused = opt.Name
			break
		}
	}
	if focused == "" {
		return "", false
	}

	for _, move := range c.factory.Moves() {
		if move.Name != sub.Name {
			continue
		}
		for _, param := range move.Params {
			if param.Name == focused && param.Autocomplete != "" {
				return param.Autocomplete, true
			}
		}
	}
	return "", false
}

func rawOptionValue(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	switch opt.Type {
	case discordgo.ApplicationCommandOptionInteger:
		return strconv.FormatInt(opt.IntValue(), 10)
	case discordgo.ApplicationCommandOptionNumber:
		return strconv.FormatFloat(opt.FloatValue(), 'f', -1, 64)
	default:
		return opt.StringValue()
	}
}
