// Package transport abstracts the chat platform. Services compose messages
// and actions in platform-neutral terms; the Discord handler is the only
// code that knows what a custom ID or an embed is.
package transport

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/parlorbot/parlor/internal/transport Messenger

import "context"

// Messenger sends and maintains platform messages and game threads.
type Messenger interface {
	// SendMessage posts a new message to a channel
	SendMessage(ctx context.Context, channelID string, content *MessageContent) (*MessageHandle, error)

	// EditMessage replaces the content of an existing message
	EditMessage(ctx context.Context, handle *MessageHandle, content *MessageContent) error

	// DeleteMessage removes a message
	DeleteMessage(ctx context.Context, handle *MessageHandle) error

	// CreateGameThread opens a thread for a game session and returns its
	// channel ID
	CreateGameThread(ctx context.Context, channelID, name string) (string, error)

	// AddThreadMember pulls a player into a game thread
	AddThreadMember(ctx context.Context, threadID, playerID string) error

	// CloseThread archives a game thread
	CloseThread(ctx context.Context, threadID string) error
}
