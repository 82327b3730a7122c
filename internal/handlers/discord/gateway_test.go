package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/murahdahla/internal/chat"
)

// fakeSession records calls and returns canned results
type fakeSession struct {
	sent      map[string]string
	edited    map[string]string
	deleted   []string
	granted   []string
	revoked   []string
	channels  []*discordgo.Channel
	roles     []*discordgo.Role
	deleteErr error
	revokeErr error
}

func newFakeSession() *fakeSession {
	return &fakeSession{sent: map[string]string{}, edited: map[string]string{}}
}

func (f *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent[channelID] = content
	return &discordgo.Message{ID: "msg-" + channelID, ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageEdit(channelID, messageID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edited[messageID] = content
	return &discordgo.Message{ID: messageID}, nil
}

func (f *fakeSession) ChannelMessageDelete(_, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return f.deleteErr
}

func (f *fakeSession) GuildMemberRoleAdd(_, userID, _ string, _ ...discordgo.RequestOption) error {
	f.granted = append(f.granted, userID)
	return nil
}

func (f *fakeSession) GuildMemberRoleRemove(_, userID, _ string, _ ...discordgo.RequestOption) error {
	f.revoked = append(f.revoked, userID)
	return f.revokeErr
}

func (f *fakeSession) GuildChannels(string, ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	return f.channels, nil
}

func (f *fakeSession) GuildRoles(string, ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	return f.roles, nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func restError(code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: "unknown"},
	}
}

func TestGateway_Messages(t *testing.T) {
	session := newFakeSession()
	gateway, err := NewGateway(session)
	require.NoError(t, err)
	ctx := context.Background()

	id, err := gateway.Send(ctx, "chan-1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "msg-chan-1", id)
	assert.Equal(t, "hello", session.sent["chan-1"])

	require.NoError(t, gateway.Edit(ctx, "chan-1", id, "edited"))
	assert.Equal(t, "edited", session.edited[id])

	require.NoError(t, gateway.DirectMessage(ctx, "user-1", "ping"))
	assert.Equal(t, "ping", session.sent["dm-user-1"])

	assert.Equal(t, 2000, gateway.MaxMessageLen())
}

func TestGateway_DeleteIgnoresMissingMessage(t *testing.T) {
	session := newFakeSession()
	gateway, _ := NewGateway(session)

	session.deleteErr = restError(discordgo.ErrCodeUnknownMessage)
	assert.NoError(t, gateway.Delete(context.Background(), "chan-1", "msg-1"))

	session.deleteErr = restError(discordgo.ErrCodeMissingPermissions)
	assert.Error(t, gateway.Delete(context.Background(), "chan-1", "msg-2"))

	assert.Equal(t, []string{"msg-1", "msg-2"}, session.deleted)
}

func TestGateway_RevokeIgnoresDepartedMember(t *testing.T) {
	session := newFakeSession()
	gateway, _ := NewGateway(session)

	session.revokeErr = restError(discordgo.ErrCodeUnknownMember)
	assert.NoError(t, gateway.RevokeRole(context.Background(), "server-1", "user-1", "role-1"))

	session.revokeErr = errors.New("connection reset")
	assert.Error(t, gateway.RevokeRole(context.Background(), "server-1", "user-2", "role-1"))
}

func TestGateway_Directory(t *testing.T) {
	session := newFakeSession()
	session.channels = []*discordgo.Channel{
		{ID: "voice-1", Name: "weekly-submit", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "text-1", Name: "weekly-submit", Type: discordgo.ChannelTypeGuildText},
	}
	session.roles = []*discordgo.Role{{ID: "role-1", Name: "weekly-finished"}}
	gateway, _ := NewGateway(session)
	ctx := context.Background()

	id, err := gateway.ChannelID(ctx, "server-1", "#weekly-submit")
	require.NoError(t, err)
	assert.Equal(t, "text-1", id)

	_, err = gateway.ChannelID(ctx, "server-1", "missing")
	assert.ErrorIs(t, err, chat.ErrNameNotFound)

	id, err = gateway.RoleID(ctx, "server-1", "@weekly-finished")
	require.NoError(t, err)
	assert.Equal(t, "role-1", id)

	_, err = gateway.RoleID(ctx, "server-1", "missing")
	assert.ErrorIs(t, err, chat.ErrNameNotFound)
}

func TestNewGateway_NilSession(t *testing.T) {
	_, err := NewGateway(nil)
	assert.Error(t, err)
}
