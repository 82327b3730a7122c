package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/common/uuid"
	"github.com/KirkDiggler/murahdahla/internal/games"
	"github.com/KirkDiggler/murahdahla/internal/games/sram"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
)

type service struct {
	submissionRepo submissionRepo.Repository
	gateway        chat.Gateway
	hooks          *games.Hooks
	clock          clock.Clock
	uuid           uuid.UUID
	log            logrus.FieldLogger
	metrics        *metrics.Metrics
}

// New creates a new submission ledger
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SubmissionRepo == nil {
		return nil, ErrNilSubmissionRepo
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Hooks == nil {
		return nil, ErrNilHooks
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		submissionRepo: cfg.SubmissionRepo,
		gateway:        cfg.Gateway,
		hooks:          cfg.Hooks,
		clock:          cfg.Clock,
		uuid:           cfg.UUIDGenerator,
		log:            logger.Component(cfg.Logger, "ledger"),
		metrics:        cfg.Metrics,
	}, nil
}

func isForfeit(token string) bool {
	return strings.EqualFold(token, "ff") || strings.EqualFold(token, "forfeit")
}

// Submit records a runner's first submission for a race
func (s *service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil || input.Race == nil || input.Group == nil || input.RunnerID == "" {
		return nil, ErrInvalidInput
	}
	game := input.Race.Game.String()

	sub, err := s.parse(input)
	if err != nil {
		s.metrics.SubmissionRecorded(game, "rejected")
		return nil, err
	}

	existing, err := s.submissionRepo.GetSubmissionByRunner(ctx, &submissionRepo.GetSubmissionByRunnerInput{
		RaceID:   input.Race.ID,
		RunnerID: input.RunnerID,
	})
	if err == nil && existing != nil {
		return s.duplicate(input, existing), nil
	}
	if err != nil && !errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("failed to look up submission: %w", err)
	}

	sub.ID = s.uuid.NewUUID()
	sub.RaceID = input.Race.ID
	sub.RunnerID = input.RunnerID
	sub.RunnerName = input.RunnerName
	sub.SubmittedAt = s.clock.Now()

	err = s.submissionRepo.CreateSubmission(ctx, &submissionRepo.CreateSubmissionInput{Submission: sub})
	if errors.Is(err, submissionRepo.ErrDuplicateSubmission) {
		return s.duplicate(input, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	if err := s.gateway.GrantRole(ctx, input.Group.ServerID, input.RunnerID, input.Group.SpoilerRoleID); err != nil {
		return nil, fmt.Errorf("failed to grant spoiler role: %w", err)
	}

	outcome := "accepted"
	if sub.Forfeit {
		outcome = "forfeit"
	}
	s.metrics.SubmissionRecorded(game, outcome)
	s.log.WithFields(logrus.Fields{
		"race_id":   sub.RaceID,
		"runner_id": sub.RunnerID,
		"forfeit":   sub.Forfeit,
	}).Info("Recorded submission")

	return &SubmitOutput{Submission: sub}, nil
}

func (s *service) duplicate(input *SubmitInput, existing *models.Submission) *SubmitOutput {
	s.metrics.SubmissionRecorded(input.Race.Game.String(), "duplicate")
	s.log.WithFields(logrus.Fields{
		"race_id":   input.Race.ID,
		"runner_id": input.RunnerID,
	}).Info("Dropped duplicate submission")

	return &SubmitOutput{Submission: existing, Duplicate: true}
}

// parse builds the result part of a submission from the message text or
// an attached save file
func (s *service) parse(input *SubmitInput) (*models.Submission, error) {
	tokens := strings.Fields(input.Text)
	if len(tokens) > 0 && isForfeit(tokens[0]) {
		return &models.Submission{Forfeit: true}, nil
	}

	hook := s.hooks.For(input.Race.Game)

	if input.Race.Type == models.RaceTypeIGT && len(input.Attachment) > 0 && sram.Supports(input.Race.Game) {
		return s.parseSave(input, hook)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no finish time", ErrMalformedSubmission)
	}

	d, err := ParseDuration(tokens[0])
	if err != nil {
		return nil, err
	}

	sub := &models.Submission{Duration: &d}
	if err := hook.ParseExtras(tokens[1:], sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	return sub, nil
}

func (s *service) parseSave(input *SubmitInput, hook games.Hook) (*models.Submission, error) {
	save, err := sram.Parse(input.Race.Game, input.Attachment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	if !save.Finished() {
		return nil, fmt.Errorf("%w: save file is not finished", ErrMalformedSubmission)
	}

	d, err := save.Duration()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	sub := &models.Submission{Duration: &d}
	if score, ok := save.Score(); ok {
		if err := hook.ValidateScore(score); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
		}
		sub.Score = &score
	}

	return sub, nil
}

func (s *service) findByName(ctx context.Context, race *models.Race, runnerName string) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetSubmissionByRunnerName(ctx, &submissionRepo.GetSubmissionByRunnerNameInput{
		RaceID:     race.ID,
		RunnerName: runnerName,
	})
	if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("%w: no submission from %s", ErrSubmissionNotFound, runnerName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up submission: %w", err)
	}
	return sub, nil
}

// AmendTime replaces only the finish time
func (s *service) AmendTime(ctx context.Context, input *AmendTimeInput) (*AmendTimeOutput, error) {
	if input == nil || input.Race == nil || input.RunnerName == "" {
		return nil, ErrInvalidInput
	}

	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: time must be positive", ErrMalformedSubmission)
	}

	sub, err := s.findByName(ctx, input.Race, input.RunnerName)
	if err != nil {
		return nil, err
	}

	d := input.Duration
	sub.Duration = &d
	if err := s.submissionRepo.UpdateSubmission(ctx, &submissionRepo.UpdateSubmissionInput{Submission: sub}); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	return &AmendTimeOutput{Submission: sub}, nil
}

// AmendScore replaces only the collection rate, within the game's bounds
func (s *service) AmendScore(ctx context.Context, input *AmendScoreInput) (*AmendScoreOutput, error) {
	if input == nil || input.Race == nil || input.RunnerName == "" {
		return nil, ErrInvalidInput
	}

	if err := s.hooks.For(input.Race.Game).ValidateScore(input.Score); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	sub, err := s.findByName(ctx, input.Race, input.RunnerName)
	if err != nil {
		return nil, err
	}

	score := input.Score
	sub.Score = &score
	if err := s.submissionRepo.UpdateSubmission(ctx, &submissionRepo.UpdateSubmissionInput{Submission: sub}); err != nil {
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	return &AmendScoreOutput{Submission: sub}, nil
}

// Remove deletes the submission. Role revocation failures are only logged
func (s *service) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.Race == nil || input.Group == nil || input.RunnerName == "" {
		return nil, ErrInvalidInput
	}

	sub, err := s.findByName(ctx, input.Race, input.RunnerName)
	if err != nil {
		return nil, err
	}

	err = s.submissionRepo.DeleteSubmission(ctx, &submissionRepo.DeleteSubmissionInput{
		RaceID:   sub.RaceID,
		RunnerID: sub.RunnerID,
	})
	if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("%w: no submission from %s", ErrSubmissionNotFound, input.RunnerName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete submission: %w", err)
	}

	if err := s.gateway.RevokeRole(ctx, input.Group.ServerID, sub.RunnerID, input.Group.SpoilerRoleID); err != nil {
		s.log.WithError(err).WithField("runner_id", sub.RunnerID).Warn("Could not revoke spoiler role")
	}

	return &RemoveOutput{Submission: sub}, nil
}
