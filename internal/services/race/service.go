package race

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/metrics"
	"github.com/KirkDiggler/murahdahla/internal/models"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
	"github.com/KirkDiggler/murahdahla/internal/services/leaderboard"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
)

// service implements the Service interface
type service struct {
	raceRepo       raceRepo.Repository
	submissionRepo submissionRepo.Repository
	slotRepo       slotRepo.Repository
	groupRepo      groupRepo.Repository
	paginator      paginator.Service
	renderer       leaderboard.Renderer
	gateway        chat.Gateway
	clock          clock.Clock
	log            logrus.FieldLogger
	metrics        *metrics.Metrics
}

// New creates a new race service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RaceRepo == nil {
		return nil, ErrNilRaceRepo
	}

	if cfg.SubmissionRepo == nil {
		return nil, ErrNilSubmissionRepo
	}

	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.Paginator == nil {
		return nil, ErrNilPaginator
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		raceRepo:       cfg.RaceRepo,
		submissionRepo: cfg.SubmissionRepo,
		slotRepo:       cfg.SlotRepo,
		groupRepo:      cfg.GroupRepo,
		paginator:      cfg.Paginator,
		renderer:       cfg.Renderer,
		gateway:        cfg.Gateway,
		clock:          cfg.Clock,
		log:            logger.Component(cfg.Logger, "race"),
		metrics:        cfg.Metrics,
	}, nil
}

// activeRace returns nil without error when the group has no active race
func (s *service) activeRace(ctx context.Context, groupID string) (*models.Race, error) {
	race, err := s.raceRepo.GetActiveRace(ctx, &raceRepo.GetActiveRaceInput{GroupID: groupID})
	if errors.Is(err, raceRepo.ErrRaceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active race: %w", err)
	}
	return race, nil
}

// GetActiveRace returns the active race of a group
func (s *service) GetActiveRace(ctx context.Context, input *GetActiveRaceInput) (*GetActiveRaceOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, ErrInvalidInput
	}

	race, err := s.activeRace(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetActiveRaceOutput{Race: race}, nil
}

// StartRace archives the group's active race, if any, then opens a new one
// and posts its description and an empty leaderboard
func (s *service) StartRace(ctx context.Context, input *StartRaceInput) (*StartRaceOutput, error) {
	if input == nil || input.Group == nil || input.Descriptor == nil {
		return nil, ErrInvalidInput
	}
	group := input.Group

	raceType := input.Type
	if raceType == "" {
		raceType = models.RaceTypeRTA
	}

	summary, err := input.Descriptor.SettingsSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStart, err)
	}

	previous, err := s.activeRace(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		if _, err := s.stop(ctx, group, previous); err != nil {
			return nil, fmt.Errorf("failed to archive race %s: %w", previous.ID, err)
		}
	}

	now := s.clock.Now()
	game := input.Descriptor.Name()
	sourceURL := input.Descriptor.SourceURL()

	created, err := s.raceRepo.CreateRace(ctx, &raceRepo.CreateRaceInput{
		Race: &models.Race{
			GroupID:     group.ID,
			Active:      true,
			CreatedAt:   now,
			Game:        game,
			Type:        raceType,
			Description: Describe(now, game, summary, sourceURL),
			SourceURL:   sourceURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStart, err)
	}
	race := created.Race

	if err := s.postInitial(ctx, group, race); err != nil {
		race.Active = false
		if saveErr := s.raceRepo.SaveRace(ctx, &raceRepo.SaveRaceInput{Race: race}); saveErr != nil {
			s.log.WithError(saveErr).WithField("race_id", race.ID).Error("Could not deactivate race after failed start")
		}
		return nil, fmt.Errorf("%w: %v", ErrStart, err)
	}

	s.metrics.RaceStarted(game.String())
	s.log.WithFields(logrus.Fields{
		"race_id":  race.ID,
		"group_id": group.ID,
		"game":     game,
	}).Info("Race started")

	return &StartRaceOutput{Race: race, Archived: previous}, nil
}

// postInitial publishes the race description and the empty leaderboard
func (s *service) postInitial(ctx context.Context, group *models.ChannelGroup, race *models.Race) error {
	if _, err := s.paginator.Publish(ctx, &paginator.PublishInput{
		Race:      race,
		Kind:      models.SlotKindSubmission,
		ServerID:  group.ServerID,
		ChannelID: group.SubmissionChannelID,
		Text:      race.Description,
	}); err != nil {
		return fmt.Errorf("failed to post race description: %w", err)
	}

	board, err := s.renderer.Render(&leaderboard.RenderInput{Race: race, View: leaderboard.ViewLeaderboard})
	if err != nil {
		return err
	}

	if _, err := s.paginator.Publish(ctx, &paginator.PublishInput{
		Race:      race,
		Kind:      models.SlotKindLeaderboard,
		ServerID:  group.ServerID,
		ChannelID: group.LeaderboardChannelID,
		Text:      board.Text,
	}); err != nil {
		return fmt.Errorf("failed to post leaderboard: %w", err)
	}

	return nil
}

// StopRace archives the group's active race
func (s *service) StopRace(ctx context.Context, input *StopRaceInput) (*StopRaceOutput, error) {
	if input == nil || input.Group == nil {
		return nil, ErrInvalidInput
	}

	race, err := s.activeRace(ctx, input.Group.ID)
	if err != nil {
		return nil, err
	}
	if race == nil {
		return nil, ErrRaceNotActive
	}

	return s.stop(ctx, input.Group, race)
}

// stop marks the race inactive, moves the final leaderboard into the
// submission channel, clears the leaderboard channel and revokes roles
func (s *service) stop(ctx context.Context, group *models.ChannelGroup, race *models.Race) (*StopRaceOutput, error) {
	race.Active = false
	if err := s.raceRepo.SaveRace(ctx, &raceRepo.SaveRaceInput{Race: race}); err != nil {
		return nil, fmt.Errorf("failed to deactivate race: %w", err)
	}

	subs, err := s.submissionRepo.ListSubmissions(ctx, &submissionRepo.ListSubmissionsInput{RaceID: race.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	board, err := s.renderer.Render(&leaderboard.RenderInput{
		Race:        race,
		Submissions: subs.Submissions,
		View:        leaderboard.ViewArchive,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.paginator.Publish(ctx, &paginator.PublishInput{
		Race:      race,
		Kind:      models.SlotKindSubmission,
		ServerID:  group.ServerID,
		ChannelID: group.SubmissionChannelID,
		Text:      board.Text,
	}); err != nil {
		return nil, fmt.Errorf("failed to archive leaderboard: %w", err)
	}

	if err := s.clearLeaderboard(ctx, race); err != nil {
		return nil, err
	}

	revoked := 0
	for _, sub := range subs.Submissions {
		if err := s.gateway.RevokeRole(ctx, group.ServerID, sub.RunnerID, group.SpoilerRoleID); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"race_id":   race.ID,
				"runner_id": sub.RunnerID,
			}).Warn("Could not revoke spoiler role")
			continue
		}
		revoked++
	}

	s.metrics.RaceStopped()
	s.log.WithFields(logrus.Fields{
		"race_id":     race.ID,
		"group_id":    group.ID,
		"submissions": len(subs.Submissions),
	}).Info("Race archived")

	return &StopRaceOutput{Race: race, Runners: revoked}, nil
}

// clearLeaderboard deletes every leaderboard message of the race, then its slot
func (s *service) clearLeaderboard(ctx context.Context, race *models.Race) error {
	slots, err := s.slotRepo.ListSlots(ctx, &slotRepo.ListSlotsInput{
		RaceID: race.ID,
		Kind:   models.SlotKindLeaderboard,
	})
	if err != nil {
		return fmt.Errorf("failed to list leaderboard slots: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, slot := range slots.Slots {
		g.Go(func() error {
			if err := s.gateway.Delete(gctx, slot.ChannelID, slot.MessageID); err != nil {
				return fmt.Errorf("failed to delete message %s: %w", slot.MessageID, err)
			}
			if err := s.slotRepo.DeleteSlot(gctx, &slotRepo.DeleteSlotInput{Slot: slot}); err != nil {
				return fmt.Errorf("failed to delete slot %s: %w", slot.MessageID, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// RefreshRace republishes the live leaderboard. A group without an active
// race is left alone
func (s *service) RefreshRace(ctx context.Context, input *RefreshRaceInput) (*RefreshRaceOutput, error) {
	if input == nil || input.Group == nil {
		return nil, ErrInvalidInput
	}

	race, err := s.activeRace(ctx, input.Group.ID)
	if err != nil {
		return nil, err
	}
	if race == nil {
		return &RefreshRaceOutput{}, nil
	}

	ranked, err := s.refresh(ctx, input.Group, race)
	if err != nil {
		return nil, err
	}

	return &RefreshRaceOutput{Race: race, Ranked: ranked}, nil
}

func (s *service) refresh(ctx context.Context, group *models.ChannelGroup, race *models.Race) (int, error) {
	subs, err := s.submissionRepo.ListSubmissions(ctx, &submissionRepo.ListSubmissionsInput{RaceID: race.ID})
	if err != nil {
		return 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	board, err := s.renderer.Render(&leaderboard.RenderInput{
		Race:        race,
		Submissions: subs.Submissions,
		View:        leaderboard.ViewLeaderboard,
	})
	if err != nil {
		return 0, err
	}

	if _, err := s.paginator.Publish(ctx, &paginator.PublishInput{
		Race:      race,
		Kind:      models.SlotKindLeaderboard,
		ServerID:  group.ServerID,
		ChannelID: group.LeaderboardChannelID,
		Text:      board.Text,
	}); err != nil {
		return 0, fmt.Errorf("failed to publish leaderboard: %w", err)
	}

	return board.Ranked, nil
}

// RefreshActiveRaces refreshes every active race. One failing race does
// not stop the others; all failures are returned joined
func (s *service) RefreshActiveRaces(ctx context.Context, input *RefreshActiveRacesInput) (*RefreshActiveRacesOutput, error) {
	active, err := s.raceRepo.ListActiveRaces(ctx, &raceRepo.ListActiveRacesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active races: %w", err)
	}
	s.metrics.SetActiveRaces(len(active.Races))

	var errs []error
	refreshed := 0
	for _, race := range active.Races {
		group, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{GroupID: race.GroupID})
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.log.WithField("race_id", race.ID).Warn("Active race has no channel group")
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("race %s: %w", race.ID, err))
			continue
		}

		if _, err := s.refresh(ctx, group, race); err != nil {
			errs = append(errs, fmt.Errorf("race %s: %w", race.ID, err))
			continue
		}
		refreshed++
	}

	return &RefreshActiveRacesOutput{Refreshed: refreshed}, errors.Join(errs...)
}
