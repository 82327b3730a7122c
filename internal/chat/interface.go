// Package chat describes the message operations the race engine needs from
// a chat platform.
package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/KirkDiggler/murahdahla/internal/chat Gateway

import "context"

// Gateway sends, edits and deletes messages and manages spoiler roles
type Gateway interface {
	// Send posts a message and returns its ID
	Send(ctx context.Context, channelID, content string) (string, error)

	// Edit replaces the content of a message
	Edit(ctx context.Context, channelID, messageID, content string) error

	// Delete removes a message
	Delete(ctx context.Context, channelID, messageID string) error

	// GrantRole adds a role to a member of a server
	GrantRole(ctx context.Context, serverID, userID, roleID string) error

	// RevokeRole removes a role from a member. Removing a role the member
	// does not have is not an error
	RevokeRole(ctx context.Context, serverID, userID, roleID string) error

	// MaxMessageLen is the longest message content, in characters, the
	// platform accepts
	MaxMessageLen() int
}
