package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_directory.go github.com/KirkDiggler/murahdahla/internal/chat Directory

import (
	"context"
	"errors"
)

// ErrNameNotFound is returned when no channel or role has the given name
var ErrNameNotFound = errors.New("name not found in server")

// Directory resolves channel and role names of a server to their IDs
type Directory interface {
	ChannelID(ctx context.Context, serverID, name string) (string, error)
	RoleID(ctx context.Context, serverID, name string) (string, error)
}
