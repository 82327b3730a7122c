package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/KirkDiggler/murahdahla/internal/services/group"
	"github.com/KirkDiggler/murahdahla/internal/services/ledger"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
)

// SubmissionHandlerConfig holds the dependencies of the submission handler
type SubmissionHandlerConfig struct {
	RaceService   race.Service
	LedgerService ledger.Service
	GroupService  group.Service
	Gateway       chat.Gateway
	Downloader    Downloader

	Notifier          Notifier
	MaintenanceUserID string

	Logger logrus.FieldLogger
}

// SubmissionMessage is a message posted in a server channel
type SubmissionMessage struct {
	ServerID   string
	ChannelID  string
	MessageID  string
	AuthorID   string
	AuthorName string
	AuthorBot  bool
	Content    string

	// AttachmentURL is the first attachment, if any
	AttachmentURL string
}

// SubmissionHandler turns messages in submission channels into leaderboard
// entries. Every message in a submission channel is deleted so times stay
// hidden from runners who have not finished
type SubmissionHandler struct {
	raceService       race.Service
	ledgerService     ledger.Service
	groupService      group.Service
	gateway           chat.Gateway
	downloader        Downloader
	notifier          Notifier
	maintenanceUserID string
	log               logrus.FieldLogger
}

// NewSubmissionHandler creates a submission handler
func NewSubmissionHandler(cfg *SubmissionHandlerConfig) (*SubmissionHandler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RaceService == nil {
		return nil, ErrNilRaceService
	}

	if cfg.LedgerService == nil {
		return nil, ErrNilLedgerService
	}

	if cfg.GroupService == nil {
		return nil, ErrNilGroupService
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Downloader == nil {
		return nil, ErrNilDownloader
	}

	return &SubmissionHandler{
		raceService:       cfg.RaceService,
		ledgerService:     cfg.LedgerService,
		groupService:      cfg.GroupService,
		gateway:           cfg.Gateway,
		downloader:        cfg.Downloader,
		notifier:          cfg.Notifier,
		maintenanceUserID: cfg.MaintenanceUserID,
		log:               logger.Component(cfg.Logger, "submissions"),
	}, nil
}

// HandleMessage records a submission and refreshes the leaderboard.
// Messages outside submission channels and from bots are ignored
func (h *SubmissionHandler) HandleMessage(ctx context.Context, msg *SubmissionMessage) error {
	if msg == nil || msg.AuthorBot || msg.ServerID == "" {
		return nil
	}

	found, err := h.groupService.FindGroup(ctx, &group.FindGroupInput{ChannelID: msg.ChannelID})
	if err != nil {
		return err
	}
	if found.Group == nil {
		return nil
	}
	g := found.Group

	log := h.log.WithFields(logrus.Fields{
		"group_id":  g.ID,
		"runner_id": msg.AuthorID,
	})

	active, err := h.raceService.GetActiveRace(ctx, &race.GetActiveRaceInput{GroupID: g.ID})
	if err != nil {
		h.deleteMessage(ctx, msg)
		return err
	}
	if active.Race == nil {
		h.deleteMessage(ctx, msg)
		return nil
	}

	out, err := h.submit(ctx, msg, g, active.Race)
	h.deleteMessage(ctx, msg)
	if err != nil {
		if errors.Is(err, ledger.ErrMalformedSubmission) {
			log.WithError(err).Info("Rejected submission")
			h.notify(ctx, fmt.Sprintf("Submission from %s rejected: %v", msg.AuthorName, err))
			return nil
		}
		return err
	}
	if out.Duplicate {
		log.Info("Duplicate submission dropped")
		return nil
	}

	if _, err := h.raceService.RefreshRace(ctx, &race.RefreshRaceInput{Group: g}); err != nil {
		return fmt.Errorf("failed to refresh leaderboard: %w", err)
	}

	return nil
}

func (h *SubmissionHandler) submit(ctx context.Context, msg *SubmissionMessage, g *models.ChannelGroup, r *models.Race) (*ledger.SubmitOutput, error) {
	input := &ledger.SubmitInput{
		Race:       r,
		Group:      g,
		RunnerID:   msg.AuthorID,
		RunnerName: msg.AuthorName,
		Text:       msg.Content,
	}

	// only in-game time races read save files
	if r.Type == models.RaceTypeIGT && msg.AttachmentURL != "" {
		data, err := h.downloader.Get(ctx, msg.AttachmentURL)
		if err != nil {
			return nil, fmt.Errorf("failed to download save file: %w", err)
		}
		input.Attachment = data
	}

	return h.ledgerService.Submit(ctx, input)
}

func (h *SubmissionHandler) deleteMessage(ctx context.Context, msg *SubmissionMessage) {
	if err := h.gateway.Delete(ctx, msg.ChannelID, msg.MessageID); err != nil {
		h.log.WithError(err).WithField("message_id", msg.MessageID).Warn("Could not delete submission message")
	}
}

// notify DMs the maintenance user; failures are only logged
func (h *SubmissionHandler) notify(ctx context.Context, content string) {
	if h.notifier == nil || h.maintenanceUserID == "" {
		return
	}
	if err := h.notifier.DirectMessage(ctx, h.maintenanceUserID, content); err != nil {
		h.log.WithError(err).Warn("Could not message maintenance user")
	}
}

// Report sends an unexpected handler failure to the maintenance user
func (h *SubmissionHandler) Report(ctx context.Context, err error) {
	h.log.WithError(err).Error("Submission handling failed")
	h.notify(ctx, fmt.Sprintf("Submission handling failed: %v", err))
}
