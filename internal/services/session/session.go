package session

import (
	"sync"
	"time"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/transport"
)

// session is the mutable aggregate behind one running game. All access after
// registration happens while holding the session's keyed lock.
type session struct {
	id        string
	guildID   string
	channelID string
	threadID  string
	gameType  string
	gameName  string
	rated     bool
	creatorID string

	// players is the seating order fixed at creation; plugins receive this
	// exact slice and report turns and outcomes against it
	players []*models.Player

	plugin games.Plugin

	// msgMu guards message: deliveries run outside the move lock
	msgMu   sync.Mutex
	message *transport.MessageHandle

	// ending flips when the terminal outcome is reached; no move may pass it
	ending bool

	// settled guards settlement so ratings move at most once per session
	settled bool

	startedAt time.Time
}

func (s *session) player(playerID string) *models.Player {
	for _, p := range s.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (s *session) snapshot() *SessionSnapshot {
	players := make([]*models.Player, len(s.players))
	for i, p := range s.players {
		copied := *p
		players[i] = &copied
	}

	snap := &SessionSnapshot{
		ID:        s.id,
		GuildID:   s.guildID,
		ChannelID: s.channelID,
		ThreadID:  s.threadID,
		GameType:  s.gameType,
		GameName:  s.gameName,
		Rated:     s.rated,
		CreatorID: s.creatorID,
		Players:   players,
		Ended:     s.ending,
		StartedAt: s.startedAt,
	}
	if current := s.plugin.CurrentTurn(); current != nil {
		snap.CurrentTurnID = current.ID
	}
	return snap
}
