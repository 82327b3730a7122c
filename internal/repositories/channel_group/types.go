package channel_group

import "github.com/KirkDiggler/murahdahla/internal/models"

type SaveGroupInput struct {
	Group *models.ChannelGroup
}

type GetGroupInput struct {
	GroupID string
}

type GetGroupBySubmissionChannelInput struct {
	ChannelID string
}

type ListGroupsByServerInput struct {
	ServerID string
}

type ListGroupsByServerOutput struct {
	Groups []*models.ChannelGroup
}

type DeleteGroupInput struct {
	GroupID string
}
