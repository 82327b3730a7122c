package ledger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/common/uuid"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
)

// Config holds the dependencies of the ledger
type Config struct {
	SubmissionRepo submissionRepo.Repository
	Gateway        chat.Gateway
	Hooks          *games.Hooks
	Clock          clock.Clock
	UUIDGenerator  uuid.UUID

	Logger  logrus.FieldLogger
	Metrics *metrics.Metrics
}

type SubmitInput struct {
	Race       *models.Race
	Group      *models.ChannelGroup
	RunnerID   string
	RunnerName string
	Text       string

	// Attachment is the content of a save file sent with the message
	Attachment []byte
}

type SubmitOutput struct {
	Submission *models.Submission
	Duplicate  bool
}

type AmendTimeInput struct {
	Race       *models.Race
	RunnerName string
	Duration   time.Duration
}

type AmendTimeOutput struct {
	Submission *models.Submission
}

type AmendScoreInput struct {
	Race       *models.Race
	RunnerName string
	Score      int
}

type AmendScoreOutput struct {
	Submission *models.Submission
}

type RemoveInput struct {
	Race       *models.Race
	Group      *models.ChannelGroup
	RunnerName string
}

type RemoveOutput struct {
	Submission *models.Submission
}
