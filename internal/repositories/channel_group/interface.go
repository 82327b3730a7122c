package channel_group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/murahdahla/internal/repositories/channel_group Repository

import (
	"context"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// Repository defines the interface for channel group persistence
type Repository interface {
	// SaveGroup creates or replaces a channel group
	SaveGroup(ctx context.Context, input *SaveGroupInput) error

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*models.ChannelGroup, error)

	// GetGroupBySubmissionChannel retrieves the group owning a submission channel
	GetGroupBySubmissionChannel(ctx context.Context, input *GetGroupBySubmissionChannelInput) (*models.ChannelGroup, error)

	// ListGroupsByServer retrieves every group of a server ordered by name
	ListGroupsByServer(ctx context.Context, input *ListGroupsByServerInput) (*ListGroupsByServerOutput, error)

	// DeleteGroup removes a group
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error
}
