package group

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/common/uuid"
	"github.com/KirkDiggler/murahdahla/internal/models"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
)

// MaxGroupsPerServer bounds how many groups one server may define
const MaxGroupsPerServer = 10

// Config holds the dependencies of the group service
type Config struct {
	GroupRepo     groupRepo.Repository
	RaceRepo      raceRepo.Repository
	Directory     chat.Directory
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	Logger logrus.FieldLogger
}

// Definition is the YAML document describing a group. Channels and the
// role are given by name
type Definition struct {
	GroupName   string `yaml:"group_name" validate:"required,max=255"`
	Submission  string `yaml:"submission" validate:"required"`
	Leaderboard string `yaml:"leaderboard" validate:"required"`
	Spoiler     string `yaml:"spoiler" validate:"required"`
	SpoilerRole string `yaml:"spoiler_role" validate:"required,max=255"`
}

type ImportGroupInput struct {
	ServerID string

	// Document is the raw YAML definition
	Document []byte
}

type ImportGroupOutput struct {
	Group *models.ChannelGroup
}

type ListGroupsInput struct {
	ServerID string
}

type ListGroupsOutput struct {
	Groups []*models.ChannelGroup
}

type RemoveGroupInput struct {
	ServerID string
	Name     string
}

type RemoveGroupOutput struct {
	Group *models.ChannelGroup
}

type FindGroupInput struct {
	ChannelID string
}

type FindGroupOutput struct {
	// Group is nil when the channel is not a submission channel
	Group *models.ChannelGroup
}
