package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/transport"
)

// threadArchiveMinutes is how long an idle game thread stays unarchived.
const threadArchiveMinutes = 60

// Messenger implements transport.Messenger over a Discord session.
type Messenger struct {
	session *discordgo.Session
	logger  zerolog.Logger
}

// NewMessenger creates a Messenger over an open Discord session.
func NewMessenger(session *discordgo.Session, logger zerolog.Logger) (*Messenger, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	return &Messenger{session: session, logger: logger}, nil
}

// SendMessage posts a new message to a channel
func (m *Messenger) SendMessage(ctx context.Context, channelID string, content *transport.MessageContent) (*transport.MessageHandle, error) {
	components, err := buildComponents(content.Buttons)
	if err != nil {
		return nil, err
	}

	msg, err := m.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{buildEmbed(content)},
		Components: components,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &transport.MessageHandle{ChannelID: channelID, MessageID: msg.ID}, nil
}

// EditMessage replaces the content of an existing message
func (m *Messenger) EditMessage(ctx context.Context, handle *transport.MessageHandle, content *transport.MessageContent) error {
	if handle == nil {
		return errors.New("message handle cannot be nil")
	}

	components, err := buildComponents(content.Buttons)
	if err != nil {
		return err
	}
	if components == nil {
		// A nil slice leaves stale components on the message
		components = []discordgo.MessageComponent{}
	}
	embeds := []*discordgo.MessageEmbed{buildEmbed(content)}

	_, err = m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    handle.ChannelID,
		ID:         handle.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// DeleteMessage removes a message
func (m *Messenger) DeleteMessage(ctx context.Context, handle *transport.MessageHandle) error {
	if handle == nil {
		return errors.New("message handle cannot be nil")
	}
	if err := m.session.ChannelMessageDelete(handle.ChannelID, handle.MessageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// CreateGameThread opens a private thread for a game session
func (m *Messenger) CreateGameThread(ctx context.Context, channelID, name string) (string, error) {
	thread, err := m.session.ThreadStartComplex(channelID, &discordgo.ThreadStart{
		Name:                name,
		Type:                discordgo.ChannelTypeGuildPrivateThread,
		AutoArchiveDuration: threadArchiveMinutes,
		Invitable:           false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create thread: %w", err)
	}
	return thread.ID, nil
}

// AddThreadMember pulls a player into a game thread
func (m *Messenger) AddThreadMember(ctx context.Context, threadID, playerID string) error {
	if err := m.session.ThreadMemberAdd(threadID, playerID); err != nil {
		return fmt.Errorf("failed to add thread member: %w", err)
	}
	return nil
}

// CloseThread archives a game thread
func (m *Messenger) CloseThread(ctx context.Context, threadID string) error {
	archived := true
	locked := true
	_, err := m.session.ChannelEdit(threadID, &discordgo.ChannelEdit{
		Archived: &archived,
		Locked:   &locked,
	})
	if err != nil {
		return fmt.Errorf("failed to archive thread: %w", err)
	}
	return nil
}

var _ transport.Messenger = (*Messenger)(nil)
