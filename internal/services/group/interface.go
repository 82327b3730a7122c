package group

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/murahdahla/internal/services/group Service

import "context"

// Service manages the channel groups of a server
type Service interface {
	// ImportGroup creates a group from a YAML definition naming its channels
	// and spoiler role
	ImportGroup(ctx context.Context, input *ImportGroupInput) (*ImportGroupOutput, error)

	// ListGroups returns the groups of a server ordered by name
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)

	// RemoveGroup deletes a group by name
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error)

	// FindGroup returns the group whose submission channel is given
	FindGroup(ctx context.Context, input *FindGroupInput) (*FindGroupOutput, error)
}
