package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/services/session"
	"github.com/parlorbot/parlor/internal/transport"
)

const (
	colorGreen = 0x00ff00
	colorRed   = 0xff0000

	// maxButtonsPerRow is Discord's action-row component limit
	maxButtonsPerRow = 5
)

// buildEmbed converts platform-neutral message content into a Discord embed.
func buildEmbed(content *transport.MessageContent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       content.Title,
		Description: content.Description,
		Color:       colorGreen,
	}
	for _, f := range content.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// buildComponents groups buttons into action rows by their declared row,
// encoding each button's action into its custom ID.
func buildComponents(buttons []transport.Button) ([]discordgo.MessageComponent, error) {
	if len(buttons) == 0 {
		return nil, nil
	}

	rows := make(map[int][]discordgo.MessageComponent)
	for _, b := range buttons {
		customID, err := EncodeAction(&b.Action)
		if err != nil {
			return nil, err
		}

		button := discordgo.Button{
			Label:    b.Label,
			Style:    buttonStyle(b.Style),
			CustomID: customID,
			Disabled: b.Disabled,
		}
		if b.Emoji != "" {
			button.Emoji = &discordgo.ComponentEmoji{Name: b.Emoji}
		}
		rows[b.Row] = append(rows[b.Row], button)
	}

	rowNumbers := make([]int, 0, len(rows))
	for row := range rows {
		rowNumbers = append(rowNumbers, row)
	}
	sort.Ints(rowNumbers)

	var components []discordgo.MessageComponent
	for _, row := range rowNumbers {
		for start := 0; start < len(rows[row]); start += maxButtonsPerRow {
			end := start + maxButtonsPerRow
			if end > len(rows[row]) {
				end = len(rows[row])
			}
			components = append(components, discordgo.ActionsRow{
				Components: rows[row][start:end],
			})
		}
	}
	return components, nil
}

func buttonStyle(style games.ButtonStyle) discordgo.ButtonStyle {
	switch style {
	case games.ButtonStylePrimary:
		return discordgo.PrimaryButton
	case games.ButtonStyleSuccess:
		return discordgo.SuccessButton
	case games.ButtonStyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

// formatRating renders a player's skill for display. Uncertain ratings get a
// question mark so fresh players are not mistaken for established ones.
func formatRating(mu, sigma float64) string {
	if mu > 0 && sigma/mu > models.RatingUncertaintyThreshold {
		return fmt.Sprintf("%.0f?", mu)
	}
	return fmt.Sprintf("%.0f", mu)
}

// lobbyContent builds the lobby message: game metadata, the queue with
// ratings, and the join/leave/start buttons.
func lobbyContent(ctx context.Context, lobby *matchmaking.LobbySnapshot, factory games.Factory, msgSvc messaging.Service) *transport.MessageContent {
	content := &transport.MessageContent{
		Title:       factory.Name(),
		Description: factory.Description(),
	}

	content.Fields = append(content.Fields,
		transport.Field{Name: "Players", Value: games.DescribePlayerCounts(factory.PlayerCounts()), Inline: true},
		transport.Field{Name: "Rated", Value: yesNo(lobby.Rated), Inline: true},
		transport.Field{Name: "Private", Value: yesNo(lobby.Private), Inline: true},
	)

	if provider, ok := factory.(games.MetadataProvider); ok {
		meta := provider.Metadata()
		details := ""
		if meta.Duration != "" {
			details += "Duration: " + meta.Duration + "\n"
		}
		if meta.Difficulty != "" {
			details += "Difficulty: " + meta.Difficulty + "\n"
		}
		if meta.Author != "" {
			author := meta.Author
			if meta.AuthorLink != "" {
				author = "[" + meta.Author + "](" + meta.AuthorLink + ")"
			}
			details += "Author: " + author + "\n"
		}
		if details != "" {
			content.Fields = append(content.Fields, transport.Field{Name: "About", Value: details})
		}
	}

	queue := ""
	for _, p := range lobby.Players {
		line := fmt.Sprintf("**%s** (%s)", p.Name, formatRating(p.Mu, p.Sigma))
		if p.ID == lobby.CreatorID {
			line += " 👑"
		}
		queue += line + "\n"
	}
	if queue == "" {
		queue = "Nobody yet"
	}
	content.Fields = append(content.Fields, transport.Field{Name: "Queue", Value: queue})

	content.Buttons = []transport.Button{
		{
			Label:  buttonLabel(ctx, msgSvc, messaging.ButtonJoin, "Join"),
			Style:  games.ButtonStyleSuccess,
			Action: transport.Action{Type: transport.ActionJoinLobby, LobbyID: lobby.ID},
		},
		{
			Label:  buttonLabel(ctx, msgSvc, messaging.ButtonLeave, "Leave"),
			Style:  games.ButtonStyleNeutral,
			Action: transport.Action{Type: transport.ActionLeaveLobby, LobbyID: lobby.ID},
		},
		{
			Label:  buttonLabel(ctx, msgSvc, messaging.ButtonStart, "Start"),
			Style:  games.ButtonStylePrimary,
			Action: transport.Action{Type: transport.ActionStartLobby, LobbyID: lobby.ID},
		},
	}
	return content
}

// startedGameContent replaces the lobby message once its game begins.
func startedGameContent(sess *session.SessionSnapshot, factory games.Factory) *transport.MessageContent {
	names := make([]string, len(sess.Players))
	for i, p := range sess.Players {
		names[i] = p.Name
	}
	return &transport.MessageContent{
		Title:       factory.Name(),
		Description: fmt.Sprintf("The game has started in <#%s>!\n\nPlaying: %s", sess.ThreadID, strings.Join(names, ", ")),
	}
}

func buttonLabel(ctx context.Context, msgSvc messaging.Service, kind messaging.ButtonKind, fallback string) string {
	output, err := msgSvc.GetButtonLabel(ctx, &messaging.GetButtonLabelInput{Kind: kind})
	if err != nil {
		return fallback
	}
	return output.Label
}

// leaderboardFields renders leaderboard entries, best first.
func leaderboardFields(entries []*models.RatingRecord) []*discordgo.MessageEmbedField {
	standings := ""
	for i, entry := range entries {
		standings += fmt.Sprintf("%d. <@%s> — **%.0f** (µ %s, %d played)\n",
			i+1, entry.PlayerID, entry.Conservative(), formatRating(entry.Mu, entry.Sigma), entry.MatchesPlayed)
	}
	if standings == "" {
		standings = "Nobody has played a rated match yet."
	}
	return []*discordgo.MessageEmbedField{{Name: "Standings", Value: standings}}
}

// historyFields renders a player's recent matches, newest first.
func historyFields(playerID string, matches []*models.Match) []*discordgo.MessageEmbedField {
	lines := ""
	for _, m := range matches {
		for _, part := range m.Participants {
			if part.PlayerID != playerID {
				continue
			}
			result := resultWord(part)
			line := fmt.Sprintf("**%s** — %s", m.GameType, result)
			if m.Rated {
				line += fmt.Sprintf(" (%+.0f)", part.MuDelta)
			} else {
				line += " (unrated)"
			}
			lines += line + " — " + m.EndedAt.Format("Jan 2") + "\n"
		}
	}
	if lines == "" {
		lines = "No matches yet."
	}
	return []*discordgo.MessageEmbedField{{Name: "Recent Matches", Value: lines}}
}

// profileFields renders a player's per-game ratings. names maps game types
// to display names; unmapped types fall back to the raw type.
func profileFields(entries []*models.RatingRecord, names map[string]string) []*discordgo.MessageEmbedField {
	lines := ""
	for _, entry := range entries {
		name := names[entry.GameType]
		if name == "" {
			name = entry.GameType
		}
		lines += fmt.Sprintf("**%s** — **%.0f** (µ %s, %d played)\n",
			name, entry.Conservative(), formatRating(entry.Mu, entry.Sigma), entry.MatchesPlayed)
	}
	if lines == "" {
		lines = "No rated games yet."
	}
	return []*discordgo.MessageEmbedField{{Name: "Ratings", Value: lines}}
}

func resultWord(part *models.MatchParticipant) string {
	switch {
	case part.Rank == 0 && part.Tied:
		return "drew"
	case part.Rank == 0:
		return "won"
	default:
		return fmt.Sprintf("placed %d", part.Rank+1)
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
