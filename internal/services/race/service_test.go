package race

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	chatMocks "github.com/KirkDiggler/murahdahla/internal/chat/mocks"
	"github.com/KirkDiggler/murahdahla/internal/common/clock/mocks"
	gameMocks "github.com/KirkDiggler/murahdahla/internal/games/mocks"
	"github.com/KirkDiggler/murahdahla/internal/models"
	groupRepo "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group"
	groupMocks "github.com/KirkDiggler/murahdahla/internal/repositories/channel_group/mocks"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
	slotMocks "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot/mocks"
	raceRepo "github.com/KirkDiggler/murahdahla/internal/repositories/race"
	raceMocks "github.com/KirkDiggler/murahdahla/internal/repositories/race/mocks"
	submissionRepo "github.com/KirkDiggler/murahdahla/internal/repositories/submission"
	submissionMocks "github.com/KirkDiggler/murahdahla/internal/repositories/submission/mocks"
	"github.com/KirkDiggler/murahdahla/internal/services/leaderboard"
	leaderboardMocks "github.com/KirkDiggler/murahdahla/internal/services/leaderboard/mocks"
	"github.com/KirkDiggler/murahdahla/internal/services/paginator"
	paginatorMocks "github.com/KirkDiggler/murahdahla/internal/services/paginator/mocks"
)

type RaceServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockRaceRepo       *raceMocks.MockRepository
	mockSubmissionRepo *submissionMocks.MockRepository
	mockSlotRepo       *slotMocks.MockRepository
	mockGroupRepo      *groupMocks.MockRepository
	mockPaginator      *paginatorMocks.MockService
	mockRenderer       *leaderboardMocks.MockRenderer
	mockGateway        *chatMocks.MockGateway
	mockClock          *mocks.MockClock
	mockDescriptor     *gameMocks.MockDescriptor
	service            Service
	ctx                context.Context

	testTime  time.Time
	testGroup *models.ChannelGroup
}

func (s *RaceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRaceRepo = raceMocks.NewMockRepository(s.mockCtrl)
	s.mockSubmissionRepo = submissionMocks.NewMockRepository(s.mockCtrl)
	s.mockSlotRepo = slotMocks.NewMockRepository(s.mockCtrl)
	s.mockGroupRepo = groupMocks.NewMockRepository(s.mockCtrl)
	s.mockPaginator = paginatorMocks.NewMockService(s.mockCtrl)
	s.mockRenderer = leaderboardMocks.NewMockRenderer(s.mockCtrl)
	s.mockGateway = chatMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockDescriptor = gameMocks.NewMockDescriptor(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.testGroup = &models.ChannelGroup{
		ID:                   "group-1",
		ServerID:             "server-1",
		Name:                 "weekly",
		SubmissionChannelID:  "chan-sub",
		LeaderboardChannelID: "chan-lb",
		SpoilerChannelID:     "chan-spoiler",
		SpoilerRoleID:        "role-1",
	}

	svc, err := New(&Config{
		RaceRepo:       s.mockRaceRepo,
		SubmissionRepo: s.mockSubmissionRepo,
		SlotRepo:       s.mockSlotRepo,
		GroupRepo:      s.mockGroupRepo,
		Paginator:      s.mockPaginator,
		Renderer:       s.mockRenderer,
		Gateway:        s.mockGateway,
		Clock:          s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RaceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RaceServiceTestSuite) expectDescriptor() {
	s.mockDescriptor.EXPECT().Name().Return(models.GameTagALTTPR).AnyTimes()
	s.mockDescriptor.EXPECT().SettingsSummary(gomock.Any()).Return("Open Defeat Ganon 2/2", nil)
	s.mockDescriptor.EXPECT().SourceURL().Return("https://alttpr.com/h/abc").AnyTimes()
}

func (s *RaceServiceTestSuite) expectNoActiveRace() {
	s.mockRaceRepo.EXPECT().
		GetActiveRace(gomock.Any(), &raceRepo.GetActiveRaceInput{GroupID: "group-1"}).
		Return(nil, raceRepo.ErrRaceNotFound)
}

func (s *RaceServiceTestSuite) expectCreate() {
	s.mockRaceRepo.EXPECT().
		CreateRace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raceRepo.CreateRaceInput) (*raceRepo.CreateRaceOutput, error) {
			created := *input.Race
			created.ID = "42"
			return &raceRepo.CreateRaceOutput{Race: &created}, nil
		})
}

func (s *RaceServiceTestSuite) TestStartRace_PostsDescriptionAndEmptyBoard() {
	s.expectDescriptor()
	s.expectNoActiveRace()
	s.expectCreate()

	var description string
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *paginator.PublishInput) (*paginator.PublishOutput, error) {
			s.Equal(models.SlotKindSubmission, input.Kind)
			s.Equal("chan-sub", input.ChannelID)
			s.Equal("server-1", input.ServerID)
			description = input.Text
			return &paginator.PublishOutput{Pages: 1, Created: 1}, nil
		})
	s.mockRenderer.EXPECT().
		Render(gomock.Any()).
		DoAndReturn(func(input *leaderboard.RenderInput) (*leaderboard.RenderOutput, error) {
			s.Empty(input.Submissions)
			s.Equal(leaderboard.ViewLeaderboard, input.View)
			return &leaderboard.RenderOutput{Text: input.Race.LeaderboardHeader()}, nil
		})
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *paginator.PublishInput) (*paginator.PublishOutput, error) {
			s.Equal(models.SlotKindLeaderboard, input.Kind)
			s.Equal("chan-lb", input.ChannelID)
			s.True(strings.HasPrefix(input.Text, "Leaderboard for 2025-04-05"))
			return &paginator.PublishOutput{Pages: 1, Created: 1}, nil
		})

	output, err := s.service.StartRace(s.ctx, &StartRaceInput{
		Group:      s.testGroup,
		Descriptor: s.mockDescriptor,
		Type:       models.RaceTypeIGT,
	})

	s.Require().NoError(err)
	s.Nil(output.Archived)
	s.Equal("42", output.Race.ID)
	s.True(output.Race.Active)
	s.Equal(models.RaceTypeIGT, output.Race.Type)
	s.Equal(s.testTime, output.Race.CreatedAt)
	s.True(strings.HasPrefix(description, "2025-04-05"))
	s.Contains(description, "ALTTPR")
	s.Contains(description, "Open Defeat Ganon 2/2")
	s.Contains(description, "https://alttpr.com/h/abc")
}

func (s *RaceServiceTestSuite) TestStartRace_DefaultsToRTA() {
	s.expectDescriptor()
	s.expectNoActiveRace()
	s.expectCreate()
	s.mockPaginator.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&paginator.PublishOutput{}, nil).Times(2)
	s.mockRenderer.EXPECT().Render(gomock.Any()).Return(&leaderboard.RenderOutput{}, nil)

	output, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup, Descriptor: s.mockDescriptor})

	s.Require().NoError(err)
	s.Equal(models.RaceTypeRTA, output.Race.Type)
}

func (s *RaceServiceTestSuite) TestStartRace_ArchivesActiveRace() {
	previous := &models.Race{ID: "41", GroupID: "group-1", Active: true, Game: models.GameTagSMZ3}

	s.expectDescriptor()
	s.mockRaceRepo.EXPECT().
		GetActiveRace(gomock.Any(), &raceRepo.GetActiveRaceInput{GroupID: "group-1"}).
		Return(previous, nil)

	// archive of the previous race
	s.mockRaceRepo.EXPECT().
		SaveRace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raceRepo.SaveRaceInput) error {
			s.Equal("41", input.Race.ID)
			s.False(input.Race.Active)
			return nil
		})
	s.mockSubmissionRepo.EXPECT().
		ListSubmissions(gomock.Any(), &submissionRepo.ListSubmissionsInput{RaceID: "41"}).
		Return(&submissionRepo.ListSubmissionsOutput{}, nil)
	s.mockRenderer.EXPECT().
		Render(gomock.Any()).
		DoAndReturn(func(input *leaderboard.RenderInput) (*leaderboard.RenderOutput, error) {
			s.Equal(leaderboard.ViewArchive, input.View)
			return &leaderboard.RenderOutput{Text: "final"}, nil
		})
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *paginator.PublishInput) (*paginator.PublishOutput, error) {
			s.Equal("41", input.Race.ID)
			s.Equal("final", input.Text)
			return &paginator.PublishOutput{}, nil
		})
	s.mockSlotRepo.EXPECT().
		ListSlots(gomock.Any(), &slotRepo.ListSlotsInput{RaceID: "41", Kind: models.SlotKindLeaderboard}).
		Return(&slotRepo.ListSlotsOutput{}, nil)

	// the new race
	s.expectCreate()
	s.mockPaginator.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&paginator.PublishOutput{}, nil).Times(2)
	s.mockRenderer.EXPECT().Render(gomock.Any()).Return(&leaderboard.RenderOutput{}, nil)

	output, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup, Descriptor: s.mockDescriptor})

	s.Require().NoError(err)
	s.Require().NotNil(output.Archived)
	s.Equal("41", output.Archived.ID)
	s.False(output.Archived.Active)
	s.Equal("42", output.Race.ID)
}

func (s *RaceServiceTestSuite) TestStartRace_DescriptorFailureKeepsActiveRace() {
	s.mockDescriptor.EXPECT().SettingsSummary(gomock.Any()).Return("", errors.New("seed not found"))

	output, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup, Descriptor: s.mockDescriptor})

	s.Nil(output)
	s.ErrorIs(err, ErrStart)
	s.Contains(err.Error(), "seed not found")
}

func (s *RaceServiceTestSuite) TestStartRace_PublishFailureDeactivates() {
	s.expectDescriptor()
	s.expectNoActiveRace()
	s.expectCreate()
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("missing permissions"))
	s.mockRaceRepo.EXPECT().
		SaveRace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *raceRepo.SaveRaceInput) error {
			s.Equal("42", input.Race.ID)
			s.False(input.Race.Active)
			return nil
		})

	output, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup, Descriptor: s.mockDescriptor})

	s.Nil(output)
	s.ErrorIs(err, ErrStart)
	s.Contains(err.Error(), "missing permissions")
}

func (s *RaceServiceTestSuite) TestStartRace_CreateConflict() {
	s.expectDescriptor()
	s.expectNoActiveRace()
	s.mockRaceRepo.EXPECT().
		CreateRace(gomock.Any(), gomock.Any()).
		Return(nil, raceRepo.ErrActiveRaceExists)

	_, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup, Descriptor: s.mockDescriptor})

	s.ErrorIs(err, ErrStart)
}

func (s *RaceServiceTestSuite) TestStartRace_InvalidInput() {
	_, err := s.service.StartRace(s.ctx, &StartRaceInput{Group: s.testGroup})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.StartRace(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *RaceServiceTestSuite) TestStopRace_NoActiveRace() {
	s.expectNoActiveRace()

	output, err := s.service.StopRace(s.ctx, &StopRaceInput{Group: s.testGroup})

	s.Nil(output)
	s.ErrorIs(err, ErrRaceNotActive)
}

func (s *RaceServiceTestSuite) TestStopRace_ArchivesInOrder() {
	race := &models.Race{ID: "42", GroupID: "group-1", Active: true, Game: models.GameTagALTTPR}
	subs := []*models.Submission{
		{RaceID: "42", RunnerID: "runner-a", RunnerName: "A"},
		{RaceID: "42", RunnerID: "runner-b", RunnerName: "B"},
	}
	slot := &models.MessageSlot{MessageID: "msg-1", RaceID: "42", ChannelID: "chan-lb", Kind: models.SlotKindLeaderboard}

	s.mockRaceRepo.EXPECT().
		GetActiveRace(gomock.Any(), &raceRepo.GetActiveRaceInput{GroupID: "group-1"}).
		Return(race, nil)

	gomock.InOrder(
		s.mockRaceRepo.EXPECT().SaveRace(gomock.Any(), &raceRepo.SaveRaceInput{Race: race}).Return(nil),
		s.mockSubmissionRepo.EXPECT().
			ListSubmissions(gomock.Any(), &submissionRepo.ListSubmissionsInput{RaceID: "42"}).
			Return(&submissionRepo.ListSubmissionsOutput{Submissions: subs}, nil),
		s.mockRenderer.EXPECT().
			Render(&leaderboard.RenderInput{Race: race, Submissions: subs, View: leaderboard.ViewArchive}).
			Return(&leaderboard.RenderOutput{Text: "final", Ranked: 2}, nil),
		s.mockPaginator.EXPECT().
			Publish(gomock.Any(), &paginator.PublishInput{
				Race:      race,
				Kind:      models.SlotKindSubmission,
				ServerID:  "server-1",
				ChannelID: "chan-sub",
				Text:      "final",
			}).
			Return(&paginator.PublishOutput{Pages: 1}, nil),
		s.mockSlotRepo.EXPECT().
			ListSlots(gomock.Any(), &slotRepo.ListSlotsInput{RaceID: "42", Kind: models.SlotKindLeaderboard}).
			Return(&slotRepo.ListSlotsOutput{Slots: []*models.MessageSlot{slot}}, nil),
		s.mockGateway.EXPECT().Delete(gomock.Any(), "chan-lb", "msg-1").Return(nil),
		s.mockSlotRepo.EXPECT().DeleteSlot(gomock.Any(), &slotRepo.DeleteSlotInput{Slot: slot}).Return(nil),
		s.mockGateway.EXPECT().RevokeRole(gomock.Any(), "server-1", "runner-a", "role-1").Return(nil),
		s.mockGateway.EXPECT().RevokeRole(gomock.Any(), "server-1", "runner-b", "role-1").Return(errors.New("left server")),
	)

	output, err := s.service.StopRace(s.ctx, &StopRaceInput{Group: s.testGroup})

	s.Require().NoError(err)
	s.False(output.Race.Active)
	s.Equal(1, output.Runners)
}

func (s *RaceServiceTestSuite) TestStopRace_DeleteFailure() {
	race := &models.Race{ID: "42", GroupID: "group-1", Active: true}
	slot := &models.MessageSlot{MessageID: "msg-1", RaceID: "42", ChannelID: "chan-lb", Kind: models.SlotKindLeaderboard}

	s.mockRaceRepo.EXPECT().GetActiveRace(gomock.Any(), gomock.Any()).Return(race, nil)
	s.mockRaceRepo.EXPECT().SaveRace(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSubmissionRepo.EXPECT().ListSubmissions(gomock.Any(), gomock.Any()).Return(&submissionRepo.ListSubmissionsOutput{}, nil)
	s.mockRenderer.EXPECT().Render(gomock.Any()).Return(&leaderboard.RenderOutput{Text: "final"}, nil)
	s.mockPaginator.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(&paginator.PublishOutput{}, nil)
	s.mockSlotRepo.EXPECT().ListSlots(gomock.Any(), gomock.Any()).Return(&slotRepo.ListSlotsOutput{Slots: []*models.MessageSlot{slot}}, nil)
	s.mockGateway.EXPECT().Delete(gomock.Any(), "chan-lb", "msg-1").Return(errors.New("unknown message"))

	output, err := s.service.StopRace(s.ctx, &StopRaceInput{Group: s.testGroup})

	s.Nil(output)
	s.Require().Error(err)
	s.Contains(err.Error(), "unknown message")
}

func (s *RaceServiceTestSuite) TestRefreshRace_NoActiveRace() {
	s.expectNoActiveRace()

	output, err := s.service.RefreshRace(s.ctx, &RefreshRaceInput{Group: s.testGroup})

	s.Require().NoError(err)
	s.Nil(output.Race)
	s.Zero(output.Ranked)
}

func (s *RaceServiceTestSuite) TestRefreshRace_PublishesLiveBoard() {
	race := &models.Race{ID: "42", GroupID: "group-1", Active: true}
	subs := []*models.Submission{{RaceID: "42", RunnerID: "runner-a"}}

	s.mockRaceRepo.EXPECT().GetActiveRace(gomock.Any(), gomock.Any()).Return(race, nil)
	s.mockSubmissionRepo.EXPECT().
		ListSubmissions(gomock.Any(), &submissionRepo.ListSubmissionsInput{RaceID: "42"}).
		Return(&submissionRepo.ListSubmissionsOutput{Submissions: subs}, nil)
	s.mockRenderer.EXPECT().
		Render(&leaderboard.RenderInput{Race: race, Submissions: subs, View: leaderboard.ViewLeaderboard}).
		Return(&leaderboard.RenderOutput{Text: "board", Ranked: 1}, nil)
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), &paginator.PublishInput{
			Race:      race,
			Kind:      models.SlotKindLeaderboard,
			ServerID:  "server-1",
			ChannelID: "chan-lb",
			Text:      "board",
		}).
		Return(&paginator.PublishOutput{Pages: 1}, nil)

	output, err := s.service.RefreshRace(s.ctx, &RefreshRaceInput{Group: s.testGroup})

	s.Require().NoError(err)
	s.Equal(race, output.Race)
	s.Equal(1, output.Ranked)
}

func (s *RaceServiceTestSuite) TestRefreshActiveRaces() {
	races := []*models.Race{
		{ID: "1", GroupID: "group-1", Active: true},
		{ID: "2", GroupID: "gone", Active: true},
		{ID: "3", GroupID: "group-3", Active: true},
	}
	other := &models.ChannelGroup{ID: "group-3", ServerID: "server-1", LeaderboardChannelID: "chan-lb-3"}

	s.mockRaceRepo.EXPECT().ListActiveRaces(gomock.Any(), gomock.Any()).Return(&raceRepo.ListActiveRacesOutput{Races: races}, nil)
	s.mockGroupRepo.EXPECT().GetGroup(gomock.Any(), &groupRepo.GetGroupInput{GroupID: "group-1"}).Return(s.testGroup, nil)
	s.mockGroupRepo.EXPECT().GetGroup(gomock.Any(), &groupRepo.GetGroupInput{GroupID: "gone"}).Return(nil, groupRepo.ErrGroupNotFound)
	s.mockGroupRepo.EXPECT().GetGroup(gomock.Any(), &groupRepo.GetGroupInput{GroupID: "group-3"}).Return(other, nil)

	s.mockSubmissionRepo.EXPECT().ListSubmissions(gomock.Any(), gomock.Any()).Return(&submissionRepo.ListSubmissionsOutput{}, nil).Times(2)
	s.mockRenderer.EXPECT().Render(gomock.Any()).Return(&leaderboard.RenderOutput{Text: "board"}, nil).Times(2)
	s.mockPaginator.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *paginator.PublishInput) (*paginator.PublishOutput, error) {
			if input.ChannelID == "chan-lb-3" {
				return nil, errors.New("rate limited")
			}
			return &paginator.PublishOutput{}, nil
		}).
		Times(2)

	output, err := s.service.RefreshActiveRaces(s.ctx, &RefreshActiveRacesInput{})

	s.Require().Error(err)
	s.Contains(err.Error(), "race 3")
	s.Equal(1, output.Refreshed)
}

func (s *RaceServiceTestSuite) TestGetActiveRace() {
	s.expectNoActiveRace()

	output, err := s.service.GetActiveRace(s.ctx, &GetActiveRaceInput{GroupID: "group-1"})

	s.Require().NoError(err)
	s.Nil(output.Race)
}

func (s *RaceServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{RaceRepo: s.mockRaceRepo})
	s.ErrorIs(err, ErrNilSubmissionRepo)
}

func TestDescribe(t *testing.T) {
	date := time.Date(2025, 4, 5, 22, 0, 0, 0, time.UTC)

	if got := Describe(date, models.GameTagOther, "any% glitchless", ""); got != "2025-04-05 - Other - any% glitchless" {
		t.Errorf("unexpected description %q", got)
	}
	if got := Describe(date, models.GameTagSMZ3, "Normal Randomized (abc)", "https://samus.link/seed/x"); got != "2025-04-05 - SMZ3 - Normal Randomized (abc) - https://samus.link/seed/x" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestRaceServiceSuite(t *testing.T) {
	suite.Run(t, new(RaceServiceTestSuite))
}
