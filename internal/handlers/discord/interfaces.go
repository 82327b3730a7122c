package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/KirkDiggler/murahdahla/internal/handlers/discord Resolver
//go:generate mockgen -package=mocks -destination=mocks/mock_downloader.go github.com/KirkDiggler/murahdahla/internal/handlers/discord Downloader
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/murahdahla/internal/handlers/discord Notifier

import (
	"context"

	"github.com/KirkDiggler/murahdahla/internal/games"
)

// Resolver turns the start command's arguments into a game descriptor
type Resolver interface {
	Resolve(ctx context.Context, input *games.ResolveInput) (games.Descriptor, error)
}

// Downloader fetches attachments
type Downloader interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// Notifier sends a direct message to a user
type Notifier interface {
	DirectMessage(ctx context.Context, userID, content string) error
}
