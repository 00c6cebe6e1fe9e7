package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/repositories/match"
	"github.com/parlorbot/parlor/internal/repositories/rating"
)

// defaultProfileMatches caps the recent-matches section of /profile
const defaultProfileMatches = 5

// ProfileCommand handles the /profile command: a player's ratings across
// every registered game plus their recent results.
type ProfileCommand struct {
	BaseCommand
	registry   *games.Registry
	ratingRepo rating.Repository
	matchRepo  match.Repository
}

// NewProfileCommand creates a new profile command handler
func NewProfileCommand(registry *games.Registry, ratingRepo rating.Repository, matchRepo match.Repository) *ProfileCommand {
	return &ProfileCommand{
		BaseCommand: BaseCommand{
			Name:        "profile",
			Description: "Show a player's ratings and recent matches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Whose profile to show (default: you)",
				},
			},
		},
		registry:   registry,
		ratingRepo: ratingRepo,
		matchRepo:  matchRepo,
	}
}

// Handle processes a /profile interaction
func (c *ProfileCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID, username := interactionUser(i)

	playerID := userID
	title := username
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["player"]; ok {
		target := opt.UserValue(s)
		playerID = target.ID
		title = target.Username
	}

	var entries []*models.RatingRecord
	names := make(map[string]string)
	for _, gameType := range c.registry.Types() {
		record, err := c.ratingRepo.GetRating(ctx, &rating.GetRatingInput{
			GuildID:  i.GuildID,
			GameType: gameType,
			PlayerID: playerID,
		})
		if errors.Is(err, rating.ErrRatingNotFound) {
			continue
		}
		if err != nil {
			return RespondWithUserError(s, i, err)
		}
		entries = append(entries, record)

		if factory, ferr := c.registry.Get(gameType); ferr == nil {
			names[gameType] = factory.Name()
		}
	}

	history, err := c.matchRepo.GetMatchHistory(ctx, &match.GetMatchHistoryInput{
		GuildID:  i.GuildID,
		PlayerID: playerID,
		Limit:    defaultProfileMatches,
	})
	if err != nil {
		return RespondWithUserError(s, i, err)
	}

	fields := profileFields(entries, names)
	fields = append(fields, historyFields(playerID, history.Matches)...)
	return RespondWithEmbed(s, i, title+"'s Profile", "", fields)
}
