package paginator

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/murahdahla/internal/services/paginator Service

import "context"

// Service lays rendered text out over a race's chat messages
type Service interface {
	// Publish writes text into the race's slots of one kind, posting new
	// messages when the existing ones cannot hold it
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)
}
