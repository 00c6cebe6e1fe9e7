package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/repositories/rating"
)

// defaultLeaderboardSize caps the /leaderboard embed
const defaultLeaderboardSize = 10

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	ratingRepo rating.Repository
	registry   *games.Registry
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(ratingRepo rating.Repository, registry *games.Registry) *LeaderboardCommand {
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

	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the top rated players for a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game",
					Description: "Which game's leaderboard",
					Required:    true,
					Choices:     choices,
				},
			},
		},
		ratingRepo: ratingRepo,
		registry:   registry,
	}
}

// Handle processes a /leaderboard interaction
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	options := optionMap(i.ApplicationCommandData().Options)
	gameType := options["game"].StringValue()

	factory, err := c.registry.Get(gameType)
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	output, err := c.ratingRepo.GetLeaderboard(ctx, &rating.GetLeaderboardInput{
		GuildID:  i.GuildID,
		GameType: gameType,
		Limit:    defaultLeaderboardSize,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	return RespondWithEmbed(s, i, factory.Name()+" Leaderboard", "", leaderboardFields(output.Entries))
}
