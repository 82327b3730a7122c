package paginator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	chatMocks "github.com/KirkDiggler/murahdahla/internal/chat/mocks"
	"github.com/KirkDiggler/murahdahla/internal/common/clock/mocks"
	"github.com/KirkDiggler/murahdahla/internal/models"
	slotRepo "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot"
	slotMocks "github.com/KirkDiggler/murahdahla/internal/repositories/message_slot/mocks"
)

const testMaxLen = 2000

type PaginatorTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSlotRepo *slotMocks.MockRepository
	mockGateway  *chatMocks.MockGateway
	mockClock    *mocks.MockClock
	paginator    Service
	ctx          context.Context

	testTime      time.Time
	testRace      *models.Race
	testChannelID string
	testServerID  string
}

func (s *PaginatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSlotRepo = slotMocks.NewMockRepository(s.mockCtrl)
	s.mockGateway = chatMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testRace = &models.Race{ID: "42", GroupID: "group-1", Active: true}
	s.testChannelID = "leaderboard-channel"
	s.testServerID = "server-1"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockGateway.EXPECT().MaxMessageLen().Return(testMaxLen).AnyTimes()

	svc, err := New(&Config{
		SlotRepo: s.mockSlotRepo,
		Gateway:  s.mockGateway,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	s.paginator = svc
}

func (s *PaginatorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PaginatorTestSuite) slot(messageID string) *models.MessageSlot {
	return &models.MessageSlot{
		MessageID: messageID,
		CreatedAt: s.testTime,
		RaceID:    s.testRace.ID,
		ServerID:  s.testServerID,
		ChannelID: s.testChannelID,
		Kind:      models.SlotKindLeaderboard,
	}
}

func (s *PaginatorTestSuite) input(text string) *PublishInput {
	return &PublishInput{
		Race:      s.testRace,
		Kind:      models.SlotKindLeaderboard,
		ServerID:  s.testServerID,
		ChannelID: s.testChannelID,
		Text:      text,
	}
}

func (s *PaginatorTestSuite) expectSlots(slots ...*models.MessageSlot) {
	s.mockSlotRepo.EXPECT().
		ListSlots(gomock.Any(), &slotRepo.ListSlotsInput{RaceID: s.testRace.ID, Kind: models.SlotKindLeaderboard}).
		Return(&slotRepo.ListSlotsOutput{Slots: slots}, nil)
}

// longText is 4500 characters of 99 and 100 character lines
func longText() string {
	lines := make([]string, 45)
	for i := range lines {
		lines[i] = strings.Repeat("x", 99)
	}
	lines[44] += "y"
	return strings.Join(lines, "\n")
}

func (s *PaginatorTestSuite) TestPublish_GrowsByFullDeficit() {
	text := longText()
	s.Require().Equal(4500, len(text))
	pages, err := Paginate(text, testMaxLen)
	s.Require().NoError(err)
	s.Require().Len(pages, 3)

	s.expectSlots(s.slot("m1"))

	gomock.InOrder(
		s.mockGateway.EXPECT().Send(gomock.Any(), s.testChannelID, Placeholder).Return("m2", nil),
		s.mockSlotRepo.EXPECT().SaveSlot(gomock.Any(), &slotRepo.SaveSlotInput{Slot: s.slot("m2")}).Return(nil),
		s.mockGateway.EXPECT().Send(gomock.Any(), s.testChannelID, Placeholder).Return("m3", nil),
		s.mockSlotRepo.EXPECT().SaveSlot(gomock.Any(), &slotRepo.SaveSlotInput{Slot: s.slot("m3")}).Return(nil),
	)

	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m1", pages[0]).Return(nil)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m2", pages[1]).Return(nil)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m3", pages[2]).Return(nil)

	output, err := s.paginator.Publish(s.ctx, s.input(text))

	s.Require().NoError(err)
	s.Equal(2, output.Created)
	s.Equal(3, output.Pages)
	s.Len(output.Slots, 3)
	s.Equal(text, strings.Join(pages, "\n"))
}

func (s *PaginatorTestSuite) TestPublish_RepublishAllocatesNothing() {
	text := longText()
	pages, err := Paginate(text, testMaxLen)
	s.Require().NoError(err)

	s.expectSlots(s.slot("m1"), s.slot("m2"), s.slot("m3"))
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m1", pages[0]).Return(nil)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m2", pages[1]).Return(nil)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m3", pages[2]).Return(nil)

	output, err := s.paginator.Publish(s.ctx, s.input(text))

	s.Require().NoError(err)
	s.Equal(0, output.Created)
}

func (s *PaginatorTestSuite) TestPublish_ShorterTextLeavesTrailingSlots() {
	s.expectSlots(s.slot("m1"), s.slot("m2"))
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m1", "Leaderboard for race\n1) Alice - 1:10:00").Return(nil)

	output, err := s.paginator.Publish(s.ctx, s.input("Leaderboard for race\n1) Alice - 1:10:00"))

	s.Require().NoError(err)
	s.Equal(1, output.Pages)
	s.Len(output.Slots, 2)
}

func (s *PaginatorTestSuite) TestPublish_FirstSlot() {
	s.expectSlots()
	s.mockGateway.EXPECT().Send(gomock.Any(), s.testChannelID, Placeholder).Return("m1", nil)
	s.mockSlotRepo.EXPECT().SaveSlot(gomock.Any(), &slotRepo.SaveSlotInput{Slot: s.slot("m1")}).Return(nil)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m1", "Leaderboard for race").Return(nil)

	output, err := s.paginator.Publish(s.ctx, s.input("Leaderboard for race"))

	s.Require().NoError(err)
	s.Equal(1, output.Created)
}

func (s *PaginatorTestSuite) TestPublish_LineTooLong() {
	output, err := s.paginator.Publish(s.ctx, s.input("header\n"+strings.Repeat("z", testMaxLen+1)))

	s.ErrorIs(err, ErrPaginationOverflow)
	s.Nil(output)
}

func (s *PaginatorTestSuite) TestPublish_SendError() {
	expectedError := errors.New("discord unavailable")
	s.expectSlots()
	s.mockGateway.EXPECT().Send(gomock.Any(), s.testChannelID, Placeholder).Return("", expectedError)

	_, err := s.paginator.Publish(s.ctx, s.input("text"))

	s.ErrorIs(err, expectedError)
}

func (s *PaginatorTestSuite) TestPublish_SaveSlotError() {
	expectedError := errors.New("redis down")
	s.expectSlots()
	s.mockGateway.EXPECT().Send(gomock.Any(), s.testChannelID, Placeholder).Return("m1", nil)
	s.mockSlotRepo.EXPECT().SaveSlot(gomock.Any(), gomock.Any()).Return(expectedError)

	_, err := s.paginator.Publish(s.ctx, s.input("text"))

	s.ErrorIs(err, expectedError)
}

func (s *PaginatorTestSuite) TestPublish_EditErrorSurfaces() {
	text := longText()
	pages, err := Paginate(text, testMaxLen)
	s.Require().NoError(err)
	expectedError := errors.New("unknown message")

	s.expectSlots(s.slot("m1"), s.slot("m2"), s.slot("m3"))
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m1", pages[0]).Return(nil).MaxTimes(1)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m2", pages[1]).Return(expectedError)
	s.mockGateway.EXPECT().Edit(gomock.Any(), s.testChannelID, "m3", pages[2]).Return(nil).MaxTimes(1)

	_, err = s.paginator.Publish(s.ctx, s.input(text))

	s.ErrorIs(err, expectedError)
}

func (s *PaginatorTestSuite) TestPublish_InvalidInput() {
	_, err := s.paginator.Publish(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.paginator.Publish(s.ctx, &PublishInput{Race: &models.Race{}, Kind: models.SlotKindLeaderboard})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *PaginatorTestSuite) TestPaginate_RoundTrip() {
	faker := gofakeit.New(7)

	for run := 0; run < 20; run++ {
		lines := make([]string, faker.Number(1, 200))
		for i := range lines {
			lines[i] = faker.Sentence(faker.Number(1, 30))
		}
		text := strings.Join(lines, "\n")

		maxLen := faker.Number(400, 2000)
		pages, err := Paginate(text, maxLen)
		s.Require().NoError(err)

		s.Equal(text, strings.Join(pages, "\n"))
		for _, page := range pages {
			s.LessOrEqual(utf8.RuneCountInString(page), maxLen)
		}
		s.LessOrEqual(len(pages), pagesNeeded(text, maxLen, len(pages)))
	}
}

func (s *PaginatorTestSuite) TestPaginate_KeepsBlankLines() {
	pages, err := Paginate("a\n\n\nb", 3)

	s.Require().NoError(err)
	s.Equal([]string{"a\n\n", "b"}, pages)
}

func (s *PaginatorTestSuite) TestPaginate_CountsRunes() {
	pages, err := Paginate("ééé\nééé", 7)

	s.Require().NoError(err)
	s.Equal([]string{"ééé\nééé"}, pages)
}

func (s *PaginatorTestSuite) TestNew_InvalidConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Gateway: s.mockGateway, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilSlotRepo)

	_, err = New(&Config{SlotRepo: s.mockSlotRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilGateway)

	_, err = New(&Config{SlotRepo: s.mockSlotRepo, Gateway: s.mockGateway})
	s.ErrorIs(err, ErrNilClock)
}

func TestPaginatorSuite(t *testing.T) {
	suite.Run(t, new(PaginatorTestSuite))
}
