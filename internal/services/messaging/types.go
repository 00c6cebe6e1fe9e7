package messaging

// ButtonKind selects which lobby button a label is for
type ButtonKind string

const (
	// ButtonJoin is the lobby join button
	ButtonJoin ButtonKind = "join"

	// ButtonLeave is the lobby leave button
	ButtonLeave ButtonKind = "leave"

	// ButtonStart is the lobby start button
	ButtonStart ButtonKind = "start"
)

// GetTurnMessageInput contains parameters for a turn announcement
type GetTurnMessageInput struct {
	// PlayerMention is the mention string of the player whose turn it is
	PlayerMention string
}

// GetTurnMessageOutput contains the generated turn announcement
type GetTurnMessageOutput struct {
	Message string
}

// GetGameStartedMessageInput contains parameters for a game-start announcement
type GetGameStartedMessageInput struct {
	// PlayerMentions are the mention strings of everyone in the game
	PlayerMentions []string
}

// GetGameStartedMessageOutput contains the generated announcement
type GetGameStartedMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains parameters for a winner announcement
type GetGameOverMessageInput struct {
	// WinnerMention is the mention string of the winning player
	WinnerMention string
}

// GetGameOverMessageOutput contains the generated announcement
type GetGameOverMessageOutput struct {
	Message string
}

// GetDrawMessageInput contains parameters for a draw announcement
type GetDrawMessageInput struct{}

// GetDrawMessageOutput contains the generated announcement
type GetDrawMessageOutput struct {
	Message string
}

// GetButtonLabelInput contains parameters for a button label
type GetButtonLabelInput struct {
	Kind ButtonKind
}

// GetButtonLabelOutput contains the generated label
type GetButtonLabelOutput struct {
	Label string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// RandSeed seeds the phrase picker; 0 seeds from the current time
	RandSeed int64
}
