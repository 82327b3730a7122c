package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/murahdahla/internal/chat"
)

// MaxMessageLen is Discord's limit on message content
const MaxMessageLen = 2000

// Session is the part of *discordgo.Session the gateway calls
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Gateway implements chat.Gateway and chat.Directory on a Discord session
type Gateway struct {
	session Session
}

// NewGateway wraps a session
func NewGateway(session Session) (*Gateway, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Gateway{session: session}, nil
}

var (
	_ chat.Gateway   = (*Gateway)(nil)
	_ chat.Directory = (*Gateway)(nil)
)

func (g *Gateway) Send(ctx context.Context, channelID, content string) (string, error) {
	msg, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return msg.ID, nil
}

func (g *Gateway) Edit(ctx context.Context, channelID, messageID, content string) error {
	if _, err := g.session.ChannelMessageEdit(channelID, messageID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message %s: %w", messageID, err)
	}
	return nil
}

// Delete treats a message that is already gone as deleted
func (g *Gateway) Delete(ctx context.Context, channelID, messageID string) error {
	err := g.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil && !hasCode(err, discordgo.ErrCodeUnknownMessage) {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	return nil
}

func (g *Gateway) GrantRole(ctx context.Context, serverID, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(serverID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

// RevokeRole ignores members who have left the server
func (g *Gateway) RevokeRole(ctx context.Context, serverID, userID, roleID string) error {
	err := g.session.GuildMemberRoleRemove(serverID, userID, roleID, discordgo.WithContext(ctx))
	if err != nil && !hasCode(err, discordgo.ErrCodeUnknownMember) {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

func (g *Gateway) MaxMessageLen() int {
	return MaxMessageLen
}

// DirectMessage opens a DM channel with the user and posts to it
func (g *Gateway) DirectMessage(ctx context.Context, userID, content string) error {
	channel, err := g.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = g.Send(ctx, channel.ID, content)
	return err
}

// ChannelID finds a text channel by name. A leading # is ignored
func (g *Gateway) ChannelID(ctx context.Context, serverID, name string) (string, error) {
	channels, err := g.session.GuildChannels(serverID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list channels: %w", err)
	}

	name = strings.TrimPrefix(strings.TrimSpace(name), "#")
	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText && c.Name == name {
			return c.ID, nil
		}
	}

	return "", chat.ErrNameNotFound
}

// RoleID finds a role by name. A leading @ is ignored
func (g *Gateway) RoleID(ctx context.Context, serverID, name string) (string, error) {
	roles, err := g.session.GuildRoles(serverID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list roles: %w", err)
	}

	name = strings.TrimPrefix(strings.TrimSpace(name), "@")
	for _, r := range roles {
		if r.Name == name {
			return r.ID, nil
		}
	}

	return "", chat.ErrNameNotFound
}

func hasCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == code
}
