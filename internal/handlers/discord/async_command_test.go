package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/murahdahla/internal/games"
	gameMocks "github.com/KirkDiggler/murahdahla/internal/games/mocks"
	"github.com/KirkDiggler/murahdahla/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/KirkDiggler/murahdahla/internal/services/group"
	groupMocks "github.com/KirkDiggler/murahdahla/internal/services/group/mocks"
	"github.com/KirkDiggler/murahdahla/internal/services/ledger"
	ledgerMocks "github.com/KirkDiggler/murahdahla/internal/services/ledger/mocks"
	"github.com/KirkDiggler/murahdahla/internal/services/race"
	raceMocks "github.com/KirkDiggler/murahdahla/internal/services/race/mocks"
)

type AsyncCommandTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRace       *raceMocks.MockService
	mockLedger     *ledgerMocks.MockService
	mockGroup      *groupMocks.MockService
	mockResolver   *mocks.MockResolver
	mockDownloader *mocks.MockDownloader
	mockNotifier   *mocks.MockNotifier
	command        *AsyncCommand
	ctx            context.Context

	testGroup *models.ChannelGroup
	testRace  *models.Race
}

func (s *AsyncCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRace = raceMocks.NewMockService(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.mockGroup = groupMocks.NewMockService(s.mockCtrl)
	s.mockResolver = mocks.NewMockResolver(s.mockCtrl)
	s.mockDownloader = mocks.NewMockDownloader(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.ctx = context.Background()

	s.testGroup = &models.ChannelGroup{ID: "group-1", ServerID: "server-1", Name: "weekly", SubmissionChannelID: "chan-sub"}
	s.testRace = &models.Race{ID: "7", GroupID: "group-1", Active: true, Game: models.GameTagALTTPR}

	cmd, err := NewAsyncCommand(&AsyncCommandConfig{
		RaceService:       s.mockRace,
		LedgerService:     s.mockLedger,
		GroupService:      s.mockGroup,
		Resolver:          s.mockResolver,
		Downloader:        s.mockDownloader,
		Notifier:          s.mockNotifier,
		MaintenanceUserID: "maintainer",
	})
	s.Require().NoError(err)
	s.command = cmd
}

func (s *AsyncCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AsyncCommandTestSuite) request(sub string) *CommandRequest {
	return &CommandRequest{
		ServerID:    "server-1",
		ChannelID:   "chan-sub",
		UserID:      "mod-1",
		Subcommand:  sub,
		Strings:     map[string]string{},
		Integers:    map[string]int64{},
		Attachments: map[string]string{},
	}
}

func (s *AsyncCommandTestSuite) expectGroup() {
	s.mockGroup.EXPECT().
		FindGroup(gomock.Any(), &group.FindGroupInput{ChannelID: "chan-sub"}).
		Return(&group.FindGroupOutput{Group: s.testGroup}, nil)
}

func (s *AsyncCommandTestSuite) expectActiveRace() {
	s.mockRace.EXPECT().
		GetActiveRace(gomock.Any(), &race.GetActiveRaceInput{GroupID: "group-1"}).
		Return(&race.GetActiveRaceOutput{Race: s.testRace}, nil)
}

func (s *AsyncCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()

	s.Equal("async", cmd.Name)
	s.Require().NotNil(cmd.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionManageMessages), *cmd.DefaultMemberPermissions)

	var names []string
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"start", "stop", "refresh", "changetime", "changecollection", "removetime", "addgroup", "listgroups", "removegroup"}, names)
}

func (s *AsyncCommandTestSuite) TestStart() {
	descriptor := gameMocks.NewMockDescriptor(s.mockCtrl)
	req := s.request(SubcommandStart)
	req.Strings[optionSeed] = "https://alttpr.com/h/abc"
	req.Strings[optionType] = "IGT"

	s.expectGroup()
	s.mockResolver.EXPECT().
		Resolve(gomock.Any(), &games.ResolveInput{Args: "https://alttpr.com/h/abc"}).
		Return(descriptor, nil)
	s.mockRace.EXPECT().
		StartRace(gomock.Any(), &race.StartRaceInput{Group: s.testGroup, Descriptor: descriptor, Type: models.RaceTypeIGT}).
		Return(&race.StartRaceOutput{Race: &models.Race{Description: "2025-04-05 - ALTTPR - Open (x)"}}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Started race: 2025-04-05 - ALTTPR - Open (x)", reply)
}

func (s *AsyncCommandTestSuite) TestStart_TextRaceWithGame() {
	descriptor := gameMocks.NewMockDescriptor(s.mockCtrl)
	req := s.request(SubcommandStart)
	req.Strings[optionSeed] = "any% no major glitches"
	req.Strings[optionGame] = "FF4 FE"

	s.expectGroup()
	s.mockResolver.EXPECT().
		Resolve(gomock.Any(), &games.ResolveInput{Args: "any% no major glitches", Game: models.GameTagFF4FE}).
		Return(descriptor, nil)
	s.mockRace.EXPECT().
		StartRace(gomock.Any(), &race.StartRaceInput{Group: s.testGroup, Descriptor: descriptor, Type: models.RaceTypeRTA}).
		Return(&race.StartRaceOutput{
			Race:     &models.Race{Description: "d"},
			Archived: &models.Race{ID: "6"},
		}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Archived the previous race.\nStarted race: d", reply)
}

func (s *AsyncCommandTestSuite) TestRaceCommand_OutsideSubmissionChannel() {
	s.mockGroup.EXPECT().FindGroup(gomock.Any(), gomock.Any()).Return(&group.FindGroupOutput{}, nil)

	_, err := s.command.Execute(s.ctx, s.request(SubcommandStop))

	s.ErrorIs(err, ErrNotSubmissionChannel)
}

func (s *AsyncCommandTestSuite) TestStop() {
	s.expectGroup()
	s.mockRace.EXPECT().
		StopRace(gomock.Any(), &race.StopRaceInput{Group: s.testGroup}).
		Return(&race.StopRaceOutput{Race: s.testRace, Runners: 3}, nil)

	reply, err := s.command.Execute(s.ctx, s.request(SubcommandStop))

	s.Require().NoError(err)
	s.Equal("Race stopped. Removed the spoiler role from 3 runner(s).", reply)
}

func (s *AsyncCommandTestSuite) TestStop_NoActiveRace() {
	s.expectGroup()
	s.mockRace.EXPECT().StopRace(gomock.Any(), gomock.Any()).Return(nil, race.ErrRaceNotActive)

	_, err := s.command.Execute(s.ctx, s.request(SubcommandStop))

	s.ErrorIs(err, race.ErrRaceNotActive)
	msg, userCaused := userMessage(err)
	s.True(userCaused)
	s.Equal("No active race in this channel group.", msg)
}

func (s *AsyncCommandTestSuite) TestChangeTime() {
	req := s.request(SubcommandChangeTime)
	req.Strings[optionRunner] = "alice"
	req.Strings[optionTime] = "1:02:03"
	d := time.Hour + 2*time.Minute + 3*time.Second

	s.expectGroup()
	s.expectActiveRace()
	s.mockLedger.EXPECT().
		AmendTime(gomock.Any(), &ledger.AmendTimeInput{Race: s.testRace, RunnerName: "alice", Duration: d}).
		Return(&ledger.AmendTimeOutput{Submission: &models.Submission{RunnerName: "Alice", Duration: &d}}, nil)
	s.mockRace.EXPECT().
		RefreshRace(gomock.Any(), &race.RefreshRaceInput{Group: s.testGroup}).
		Return(&race.RefreshRaceOutput{Race: s.testRace, Ranked: 1}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Changed the time of Alice to 1:02:03.", reply)
}

func (s *AsyncCommandTestSuite) TestChangeTime_BadTime() {
	req := s.request(SubcommandChangeTime)
	req.Strings[optionRunner] = "alice"
	req.Strings[optionTime] = "1:99:00"

	s.expectGroup()
	s.expectActiveRace()

	_, err := s.command.Execute(s.ctx, req)

	s.ErrorIs(err, ledger.ErrMalformedSubmission)
}

func (s *AsyncCommandTestSuite) TestChangeCollection() {
	req := s.request(SubcommandChangeCollection)
	req.Strings[optionRunner] = "bob"
	req.Integers[optionCollection] = 200
	score := 200

	s.expectGroup()
	s.expectActiveRace()
	s.mockLedger.EXPECT().
		AmendScore(gomock.Any(), &ledger.AmendScoreInput{Race: s.testRace, RunnerName: "bob", Score: 200}).
		Return(&ledger.AmendScoreOutput{Submission: &models.Submission{RunnerName: "bob", Score: &score}}, nil)
	s.mockRace.EXPECT().RefreshRace(gomock.Any(), gomock.Any()).Return(&race.RefreshRaceOutput{}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Changed the collection rate of bob to 200.", reply)
}

func (s *AsyncCommandTestSuite) TestRemoveTime_NoActiveRace() {
	req := s.request(SubcommandRemoveTime)
	req.Strings[optionRunner] = "carol"

	s.expectGroup()
	s.mockRace.EXPECT().GetActiveRace(gomock.Any(), gomock.Any()).Return(&race.GetActiveRaceOutput{}, nil)

	_, err := s.command.Execute(s.ctx, req)

	s.ErrorIs(err, race.ErrRaceNotActive)
}

func (s *AsyncCommandTestSuite) TestRemoveTime() {
	req := s.request(SubcommandRemoveTime)
	req.Strings[optionRunner] = "carol"

	s.expectGroup()
	s.expectActiveRace()
	s.mockLedger.EXPECT().
		Remove(gomock.Any(), &ledger.RemoveInput{Race: s.testRace, Group: s.testGroup, RunnerName: "carol"}).
		Return(&ledger.RemoveOutput{Submission: &models.Submission{RunnerName: "Carol"}}, nil)
	s.mockRace.EXPECT().RefreshRace(gomock.Any(), gomock.Any()).Return(&race.RefreshRaceOutput{}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Removed Carol from the leaderboard.", reply)
}

func (s *AsyncCommandTestSuite) TestAddGroup() {
	req := s.request(SubcommandAddGroup)
	req.Attachments[optionDefinition] = "https://cdn.discordapp.com/group.yaml"
	document := []byte("group_name: weekly\n")

	s.mockDownloader.EXPECT().Get(gomock.Any(), "https://cdn.discordapp.com/group.yaml").Return(document, nil)
	s.mockGroup.EXPECT().
		ImportGroup(gomock.Any(), &group.ImportGroupInput{ServerID: "server-1", Document: document}).
		Return(&group.ImportGroupOutput{Group: s.testGroup}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Added group weekly.", reply)
}

func (s *AsyncCommandTestSuite) TestListGroups() {
	s.mockGroup.EXPECT().
		ListGroups(gomock.Any(), &group.ListGroupsInput{ServerID: "server-1"}).
		Return(&group.ListGroupsOutput{Groups: []*models.ChannelGroup{{Name: "daily"}, {Name: "weekly"}}}, nil)

	reply, err := s.command.Execute(s.ctx, s.request(SubcommandListGroups))

	s.Require().NoError(err)
	s.Equal("```\ndaily, weekly\n```", reply)
}

func (s *AsyncCommandTestSuite) TestRemoveGroup() {
	req := s.request(SubcommandRemoveGroup)
	req.Strings[optionName] = "weekly"

	s.mockGroup.EXPECT().
		RemoveGroup(gomock.Any(), &group.RemoveGroupInput{ServerID: "server-1", Name: "weekly"}).
		Return(&group.RemoveGroupOutput{Group: s.testGroup}, nil)

	reply, err := s.command.Execute(s.ctx, req)

	s.Require().NoError(err)
	s.Equal("Removed group weekly.", reply)
}

func (s *AsyncCommandTestSuite) TestUnknownSubcommand() {
	_, err := s.command.Execute(s.ctx, s.request("dance"))
	s.ErrorIs(err, ErrUnknownSubcommand)
}

func (s *AsyncCommandTestSuite) TestReportError_NotifiesMaintainer() {
	s.mockNotifier.EXPECT().
		DirectMessage(gomock.Any(), "maintainer", gomock.Any()).
		Return(nil)

	reply := s.command.reportError(s.ctx, SubcommandRefresh, errors.New("redis: connection refused"))

	s.Equal(internalErrorMessage, reply)
}

func (s *AsyncCommandTestSuite) TestReportError_UserMistake() {
	reply := s.command.reportError(s.ctx, SubcommandRemoveGroup, group.ErrGroupNotFound)

	s.Equal("No group with this name in the server.", reply)
}

func TestAsyncCommandSuite(t *testing.T) {
	suite.Run(t, new(AsyncCommandTestSuite))
}
