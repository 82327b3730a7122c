package race

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
	"github.com/KirkDiggler/murahdahla/internal/services/leaderboard"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
)

// Config holds the dependencies of the race service
type Config struct {
	// Repository dependencies
	RaceRepo       raceRepo.Repository
	SubmissionRepo submissionRepo.Repository
	SlotRepo       slotRepo.Repository
	GroupRepo      groupRepo.Repository

	// Service dependencies
	Paginator paginator.Service
	Renderer  leaderboard.Renderer
	Gateway   chat.Gateway
	Clock     clock.Clock

	Logger  logrus.FieldLogger
	Metrics *metrics.Metrics
}

// StartRaceInput contains parameters for starting a race
type StartRaceInput struct {
	// Group is the channel group the race runs in
	Group *models.ChannelGroup

	// Descriptor supplies the game and its settings text
	Descriptor games.Descriptor

	// Type is the timing mode runners are ranked by
	Type models.RaceType
}

// StartRaceOutput contains the result of starting a race
type StartRaceOutput struct {
	// Race is the newly active race
	Race *models.Race

	// Archived is the race that was stopped to make room, if any
	Archived *models.Race
}

// StopRaceInput contains parameters for stopping a race
type StopRaceInput struct {
	Group *models.ChannelGroup
}

// StopRaceOutput contains the result of stopping a race
type StopRaceOutput struct {
	// Race is the archived race
	Race *models.Race

	// Runners is how many runners had the spoiler role revoked
	Runners int
}

// RefreshRaceInput contains parameters for refreshing a leaderboard
type RefreshRaceInput struct {
	Group *models.ChannelGroup
}

// RefreshRaceOutput contains the result of a refresh
type RefreshRaceOutput struct {
	// Race is nil when the group has no active race
	Race *models.Race

	// Ranked is the number of runners on the leaderboard
	Ranked int
}

type RefreshActiveRacesInput struct{}

type RefreshActiveRacesOutput struct {
	// Refreshed is the number of leaderboards republished
	Refreshed int
}

// GetActiveRaceInput contains parameters for finding a group's race
type GetActiveRaceInput struct {
	GroupID string
}

// GetActiveRaceOutput contains the active race
type GetActiveRaceOutput struct {
	// Race is nil when the group has no active race
	Race *models.Race
}
