package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/parlorbot/parlor/internal/repositories/match"
)

// defaultHistorySize caps the /history embed
const defaultHistorySize = 10

// HistoryCommand handles the /history command
type HistoryCommand struct {
	BaseCommand
	matchRepo match.Repository
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(matchRepo match.Repository) *HistoryCommand {
	return &HistoryCommand{
		BaseCommand: BaseCommand{
			Name:        "history",
			Description: "Show recent match results",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Whose history to show (default: you)",
				},
			},
		},
		matchRepo: matchRepo,
	}
}

// Handle processes a /history interaction
func (c *HistoryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	playerID := userID
	title := username
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["player"]; ok {
		target := opt.UserValue(s)
		playerID = target.ID
		title = target.Username
	}

	output, err := c.matchRepo.GetMatchHistory(ctx, &match.GetMatchHistoryInput{
		GuildID:  i.GuildID,
		PlayerID: playerID,
		Limit:    defaultHistorySize,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	return RespondWithEmbed(s, i, title+"'s Matches", "", historyFields(playerID, output.Matches))
}
