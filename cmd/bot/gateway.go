package main

import (
	"context"

	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/session"
)

// sessionGateway adapts the session service to the matchmaking service's
// view of it.
type sessionGateway struct {
	sessions session.Service
}

func (g *sessionGateway) StartGame(ctx context.Context, request *matchmaking.StartGameRequest) (string, error) {
	output, err := g.sessions.StartGame(ctx, &session.StartGameInput{
		LobbyID:   request.LobbyID,
		GuildID:   request.GuildID,
		ChannelID: request.ChannelID,
		GameType:  request.GameType,
		Rated:     request.Rated,
		CreatorID: request.CreatorID,
		Players:   request.Players,
	})
	if err != nil {
		return "", err
	}
	return output.SessionID, nil
}

func (g *sessionGateway) InSession(playerID string) bool {
	return g.sessions.InSession(playerID)
}

var _ matchmaking.SessionGateway = (*sessionGateway)(nil)
