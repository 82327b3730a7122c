package paginator

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
)

// Placeholder is the content of a freshly allocated slot
const Placeholder = "Placeholder"

// Config holds the dependencies of the paginator
type Config struct {
	SlotRepo slotRepo.Repository
	Gateway  chat.Gateway
	Clock    clock.Clock

	Logger  logrus.FieldLogger
	Metrics *metrics.Metrics
}

type PublishInput struct {
	Race      *models.Race
	Kind      models.SlotKind
	ServerID  string
	ChannelID string
	Text      string
}

type PublishOutput struct {
	// Slots are all of the race's slots of this kind, oldest first
	Slots []*models.MessageSlot

	// Pages is how many slots received text
	Pages int

	// Created is how many slots this call allocated
	Created int
}
