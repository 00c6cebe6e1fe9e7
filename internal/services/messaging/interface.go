package messaging

import "context"

// Service is the interface for the messaging service. Every operation picks
// a phrasing at random from a weighted table, so repeated announcements do
// not read like a robot wrote them.
type Service interface {
	// GetTurnMessage returns an announcement that it is a player's turn
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetGameStartedMessage returns an announcement that a game has begun
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetGameOverMessage returns an announcement of the winner
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetDrawMessage returns an announcement that the game ended in a draw
	GetDrawMessage(ctx context.Context, input *GetDrawMessageInput) (*GetDrawMessageOutput, error)

	// GetButtonLabel returns a label for one of the lobby buttons
	GetButtonLabel(ctx context.Context, input *GetButtonLabelInput) (*GetButtonLabelOutput, error)
}
