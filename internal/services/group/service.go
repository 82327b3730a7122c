package group

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/murahdahla/internal/chat"
	"github.com/KirkDiggler/murahdahla/internal/common/clock"
	"github.com/KirkDiggler/murahdahla/internal/common/uuid"
	"github.com/KirkDiggler/murahdahla/internal/logger"
	"github.com/KirkDiggler/murahdahla/internal/models"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
)

type service struct {
	groupRepo     groupRepo.Repository
	raceRepo      raceRepo.Repository
	directory     chat.Directory
	clock         clock.Clock
	uuidGenerator uuid.UUID
	validate      *validator.Validate
	log           logrus.FieldLogger
}

// New creates a new group service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}

	if cfg.RaceRepo == nil {
		return nil, ErrNilRaceRepo
	}

	if cfg.Directory == nil {
		return nil, ErrNilDirectory
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		groupRepo:     cfg.GroupRepo,
		raceRepo:      cfg.RaceRepo,
		directory:     cfg.Directory,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		log:           logger.Component(cfg.Logger, "group"),
	}, nil
}

// ParseDefinition decodes and validates a group YAML document. Unknown
// keys are rejected
func (s *service) ParseDefinition(document []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(document))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	if err := s.validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	return &def, nil
}

// ImportGroup resolves the names in a definition and stores the new group
func (s *service) ImportGroup(ctx context.Context, input *ImportGroupInput) (*ImportGroupOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, ErrInvalidInput
	}

	def, err := s.ParseDefinition(input.Document)
	if err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.ListGroupsByServer(ctx, &groupRepo.ListGroupsByServerInput{ServerID: input.ServerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	if len(existing.Groups) >= MaxGroupsPerServer {
		return nil, ErrGroupLimit
	}

	for _, g := range existing.Groups {
		if g.Name == def.GroupName {
			return nil, ErrDuplicateName
		}
	}

	group := &models.ChannelGroup{
		ID:        s.uuidGenerator.NewUUID(),
		ServerID:  input.ServerID,
		Name:      def.GroupName,
		CreatedAt: s.clock.Now(),
	}

	channels := []struct {
		name string
		dest *string
	}{
		{def.Submission, &group.SubmissionChannelID},
		{def.Leaderboard, &group.LeaderboardChannelID},
		{def.Spoiler, &group.SpoilerChannelID},
	}
	for _, c := range channels {
		id, err := s.directory.ChannelID(ctx, input.ServerID, c.name)
		if err != nil {
			return nil, s.nameError(c.name, err)
		}
		*c.dest = id
	}

	roleID, err := s.directory.RoleID(ctx, input.ServerID, def.SpoilerRole)
	if err != nil {
		return nil, s.nameError(def.SpoilerRole, err)
	}
	group.SpoilerRoleID = roleID

	owner, err := s.groupRepo.GetGroupBySubmissionChannel(ctx, &groupRepo.GetGroupBySubmissionChannelInput{
		ChannelID: group.SubmissionChannelID,
	})
	if err != nil && !errors.Is(err, groupRepo.ErrGroupNotFound) {
		return nil, fmt.Errorf("failed to check submission channel: %w", err)
	}
	if owner != nil {
		return nil, ErrChannelTaken
	}

	if err := s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{Group: group}); err != nil {
		if errors.Is(err, groupRepo.ErrSubmissionChannelTaken) {
			return nil, ErrChannelTaken
		}
		return nil, fmt.Errorf("failed to save group: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"group_id":  group.ID,
		"server_id": group.ServerID,
		"name":      group.Name,
	}).Info("Channel group added")

	return &ImportGroupOutput{Group: group}, nil
}

func (s *service) nameError(name string, err error) error {
	if errors.Is(err, chat.ErrNameNotFound) {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return fmt.Errorf("failed to resolve %q: %w", name, err)
}

// ListGroups returns the groups of a server
func (s *service) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	if input == nil || input.ServerID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.groupRepo.ListGroupsByServer(ctx, &groupRepo.ListGroupsByServerInput{ServerID: input.ServerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &ListGroupsOutput{Groups: out.Groups}, nil
}

// RemoveGroup deletes a server's group by name. A group with an active
// race is kept
func (s *service) RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*RemoveGroupOutput, error) {
	if input == nil || input.ServerID == "" || input.Name == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.groupRepo.ListGroupsByServer(ctx, &groupRepo.ListGroupsByServerInput{ServerID: input.ServerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var group *models.ChannelGroup
	for _, g := range out.Groups {
		if g.Name == input.Name {
			group = g
			break
		}
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	_, err = s.raceRepo.GetActiveRace(ctx, &raceRepo.GetActiveRaceInput{GroupID: group.ID})
	if err == nil {
		return nil, ErrGroupHasActiveRace
	}
	if !errors.Is(err, raceRepo.ErrRaceNotFound) {
		return nil, fmt.Errorf("failed to check active race: %w", err)
	}

	if err := s.groupRepo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{GroupID: group.ID}); err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"group_id":  group.ID,
		"server_id": group.ServerID,
	}).Info("Channel group removed")

	return &RemoveGroupOutput{Group: group}, nil
}

// FindGroup maps a submission channel to its group
func (s *service) FindGroup(ctx context.Context, input *FindGroupInput) (*FindGroupOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	group, err := s.groupRepo.GetGroupBySubmissionChannel(ctx, &groupRepo.GetGroupBySubmissionChannelInput{
		ChannelID: input.ChannelID,
	})
	if errors.Is(err, groupRepo.ErrGroupNotFound) {
		return &FindGroupOutput{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	return &FindGroupOutput{Group: group}, nil
}
