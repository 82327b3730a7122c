package paginator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
)

type service struct {
	slotRepo slotRepo.Repository
	gateway  chat.Gateway
	clock    clock.Clock
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
}

// New creates a new paginator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		slotRepo: cfg.SlotRepo,
		gateway:  cfg.Gateway,
		clock:    cfg.Clock,
		log:      logger.Component(cfg.Logger, "paginator"),
		metrics:  cfg.Metrics,
	}, nil
}

// Publish packs text line by line into slots, oldest first. Slots past the
// last page keep their previous content
func (s *service) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil || input.Race == nil || input.Race.ID == "" || input.Kind == "" {
		return nil, ErrInvalidInput
	}
	start := s.clock.Now()

	maxLen := s.gateway.MaxMessageLen()
	pages, err := Paginate(input.Text, maxLen)
	if err != nil {
		return nil, err
	}

	listed, err := s.slotRepo.ListSlots(ctx, &slotRepo.ListSlotsInput{
		RaceID: input.Race.ID,
		Kind:   input.Kind,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list message slots: %w", err)
	}
	slots := listed.Slots

	needed := pagesNeeded(input.Text, maxLen, len(pages))
	created := 0
	for len(slots) < needed {
		slot, err := s.allocate(ctx, input)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
		created++
	}

	if len(pages) > len(slots) {
		return nil, fmt.Errorf("%w: %d pages for %d slots", ErrPaginationOverflow, len(pages), len(slots))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, page := range pages {
		slot := slots[i]
		content := page
		g.Go(func() error {
			if err := s.gateway.Edit(gctx, slot.ChannelID, slot.MessageID, content); err != nil {
				return fmt.Errorf("failed to edit message %s: %w", slot.MessageID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.ObservePublish(string(input.Kind), s.clock.Now().Sub(start))
	s.log.WithFields(logrus.Fields{
		"race_id": input.Race.ID,
		"kind":    input.Kind,
		"pages":   len(pages),
		"slots":   len(slots),
		"created": created,
	}).Debug("Published text")

	return &PublishOutput{
		Slots:   slots,
		Pages:   len(pages),
		Created: created,
	}, nil
}

// allocate posts a placeholder and records it as the race's newest slot
func (s *service) allocate(ctx context.Context, input *PublishInput) (*models.MessageSlot, error) {
	messageID, err := s.gateway.Send(ctx, input.ChannelID, Placeholder)
	if err != nil {
		return nil, fmt.Errorf("failed to post placeholder: %w", err)
	}

	slot := &models.MessageSlot{
		MessageID: messageID,
		CreatedAt: s.clock.Now(),
		RaceID:    input.Race.ID,
		ServerID:  input.ServerID,
		ChannelID: input.ChannelID,
		Kind:      input.Kind,
	}

	if err := s.slotRepo.SaveSlot(ctx, &slotRepo.SaveSlotInput{Slot: slot}); err != nil {
		s.log.WithError(err).WithField("message_id", messageID).Error("Posted placeholder could not be recorded")
		return nil, fmt.Errorf("failed to save message slot: %w", err)
	}
	s.metrics.SlotCreated(string(input.Kind))

	return slot, nil
}

// Paginate splits text on line boundaries into pages of at most maxLen
// characters. Joining the pages with newlines gives back text
func Paginate(text string, maxLen int) ([]string, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("%w: message limit %d", ErrPaginationOverflow, maxLen)
	}

	var (
		pages   []string
		buf     strings.Builder
		bufLen  int
		started bool
	)

	for _, line := range strings.Split(text, "\n") {
		lineLen := utf8.RuneCountInString(line)
		if lineLen > maxLen {
			return nil, fmt.Errorf("%w: line of %d characters exceeds %d", ErrPaginationOverflow, lineLen, maxLen)
		}

		if started && bufLen+1+lineLen <= maxLen {
			buf.WriteByte('\n')
			buf.WriteString(line)
			bufLen += 1 + lineLen
			continue
		}

		if started {
			pages = append(pages, buf.String())
			buf.Reset()
		}
		buf.WriteString(line)
		bufLen = lineLen
		started = true
	}
	pages = append(pages, buf.String())

	return pages, nil
}

// pagesNeeded is the slot count to hold text: its length in messages, at
// least the packed page count, and never zero
func pagesNeeded(text string, maxLen, pages int) int {
	n := utf8.RuneCountInString(text)
	needed := (n + maxLen - 1) / maxLen
	if pages > needed {
		needed = pages
	}
	if needed < 1 {
		needed = 1
	}
	return needed
}
