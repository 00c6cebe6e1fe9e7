package discord

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/parlorbot/parlor/internal/transport"
)

// customIDLimit is Discord's maximum component custom ID length.
const customIDLimit = 100

// Custom ID prefixes. Lobby buttons carry the lobby ID; move buttons carry
// the session ID, the move name and the url-encoded arguments. "c" marks a
// turn-bound move, "n" a move anyone in the game may press.
const (
	prefixJoin     = "join"
	prefixLeave    = "leave"
	prefixStart    = "start"
	prefixMoveTurn = "c"
	prefixMoveFree = "n"
)

// EncodeAction packs an action into a component custom ID.
func EncodeAction(action *transport.Action) (string, error) {
	if action == nil {
		return "", fmt.Errorf("action cannot be nil")
	}

	var id string
	switch action.Type {
	case transport.ActionJoinLobby:
		id = prefixJoin + "/" + action.LobbyID
	case transport.ActionLeaveLobby:
		id = prefixLeave + "/" + action.LobbyID
	case transport.ActionStartLobby:
		id = prefixStart + "/" + action.LobbyID
	case transport.ActionMove:
		prefix := prefixMoveFree
		if action.TurnRequired {
			prefix = prefixMoveTurn
		}
		args := url.Values{}
		for name, value := range action.Args {
			args.Set(name, value)
		}
		id = prefix + "/" + action.SessionID + "/" + action.Move + "/" + args.Encode()
	default:
		return "", fmt.Errorf("unknown action type %q", action.Type)
	}

	if len(id) > customIDLimit {
		return "", fmt.Errorf("custom ID exceeds %d characters: %s", customIDLimit, id)
	}
	return id, nil
}

// DecodeAction unpacks a component custom ID back into an action.
func DecodeAction(customID string) (*transport.Action, error) {
	parts := strings.SplitN(customID, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed custom ID: %s", customID)
	}

	switch parts[0] {
	case prefixJoin:
		return &transport.Action{Type: transport.ActionJoinLobby, LobbyID: parts[1]}, nil
	case prefixLeave:
		return &transport.Action{Type: transport.ActionLeaveLobby, LobbyID: parts[1]}, nil
	case prefixStart:
		return &transport.Action{Type: transport.ActionStartLobby, LobbyID: parts[1]}, nil
	case prefixMoveTurn, prefixMoveFree:
		segments := strings.SplitN(parts[1], "/", 3)
		if len(segments) != 3 {
			return nil, fmt.Errorf("malformed move custom ID: %s", customID)
		}
		values, err := url.ParseQuery(segments[2])
		if err != nil {
			return nil, fmt.Errorf("malformed move arguments in %s: %w", customID, err)
		}
		action := &transport.Action{
			Type:         transport.ActionMove,
			SessionID:    segments[0],
			Move:         segments[1],
			TurnRequired: parts[0] == prefixMoveTurn,
		}
		if len(values) > 0 {
			action.Args = make(map[string]string, len(values))
			for name := range values {
				action.Args[name] = values.Get(name)
			}
		}
		return action, nil
	default:
		return nil, fmt.Errorf("unknown custom ID prefix: %s", customID)
	}
}
