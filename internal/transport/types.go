package transport

import "github.com/parlorbot/parlor/internal/games"

// MessageHandle identifies a message the bot owns and may later edit or
// delete.
type MessageHandle struct {
	ChannelID string
	MessageID string
}

// ActionType classifies what pressing a button does.
type ActionType string

const (
	// ActionJoinLobby adds the pressing player to a lobby queue
	ActionJoinLobby ActionType = "join"

	// ActionLeaveLobby removes the pressing player from a lobby queue
	ActionLeaveLobby ActionType = "leave"

	// ActionStartLobby starts the lobby's game
	ActionStartLobby ActionType = "start"

	// ActionMove submits a game move
	ActionMove ActionType = "move"
)

// Action is the platform-neutral description of a button press target. The
// handler encodes it into a custom ID and decodes it back on interaction.
type Action struct {
	// Type selects which fields below are meaningful
	Type ActionType

	// LobbyID targets a lobby for join, leave and start actions
	LobbyID string

	// SessionID targets a session for move actions
	SessionID string

	// Move is the move name for move actions
	Move string

	// Args are the raw string arguments submitted with the move
	Args map[string]string

	// TurnRequired marks a move button only the current-turn holder may use
	TurnRequired bool
}

// Button is one interactive element of a message.
type Button struct {
	Label    string
	Emoji    string
	Style    games.ButtonStyle
	Row      int
	Disabled bool
	Action   Action
}

// Field is one labelled text block of a message.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// MessageContent is the platform-neutral body of a message.
type MessageContent struct {
	Title       string
	Description string
	Fields      []Field
	Buttons     []Button
}
