package matchmaking

import (
	"time"

	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/transport"
)

// lobby is the mutable aggregate behind one queue. All access happens while
// holding the lobby's keyed lock.
type lobby struct {
	id        string
	guildID   string
	channelID string
	gameType  string
	creatorID string
	rated     bool
	private   bool

	// queue holds joined players in join order, unique by ID
	queue []*models.Player

	// whitelist gates joining when the lobby is private
	whitelist map[string]bool

	// blacklist blocks joining when the lobby is public
	blacklist map[string]bool

	message   *transport.MessageHandle
	createdAt time.Time
}

func (l *lobby) indexOf(playerID string) int {
	for i, p := range l.queue {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (l *lobby) contains(playerID string) bool {
	return l.indexOf(playerID) >= 0
}

// remove takes a player out of the queue and reassigns the creator to the
// earliest remaining joiner if the creator left. Reports whether the queue
// is now empty.
func (l *lobby) remove(playerID string) (empty bool, newCreatorID string) {
	i := l.indexOf(playerID)
	if i < 0 {
		return len(l.queue) == 0, ""
	}

	l.queue = append(l.queue[:i], l.queue[i+1:]...)
	if len(l.queue) == 0 {
		return true, ""
	}
	if l.creatorID == playerID {
		l.creatorID = l.queue[0].ID
		return false, l.creatorID
	}
	return false, ""
}

// LobbySnapshot is an immutable copy of a lobby handed out by the service.
type LobbySnapshot struct {
	ID        string
	GuildID   string
	ChannelID string
	GameType  string
	CreatorID string
	Rated     bool
	Private   bool

	// Players is the queue in join order
	Players []*models.Player

	Message   *transport.MessageHandle
	CreatedAt time.Time
}

func (l *lobby) snapshot() *LobbySnapshot {
	players := make([]*models.Player, len(l.queue))
	for i, p := range l.queue {
		copied := *p
		players[i] = &copied
	}

	return &LobbySnapshot{
		ID:        l.id,
		GuildID:   l.guildID,
		ChannelID: l.channelID,
		GameType:  l.gameType,
		CreatorID: l.creatorID,
		Rated:     l.rated,
		Private:   l.private,
		Players:   players,
		Message:   l.message,
		CreatedAt: l.createdAt,
	}
}
