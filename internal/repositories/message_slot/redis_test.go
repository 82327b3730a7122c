package message_slot

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/murahdahla/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) slot(messageID string, kind models.SlotKind) *models.MessageSlot {
	return &models.MessageSlot{
		MessageID: messageID,
		CreatedAt: s.testNow,
		RaceID:    "race-1",
		ServerID:  "server-1",
		ChannelID: "channel-" + string(kind),
		Kind:      kind,
	}
}

func (s *RedisRepositoryTestSuite) TestListSlotsKeepsCreationOrder() {
	// identical timestamps and message IDs that sort the other way
	for _, id := range []string{"300", "200", "100"} {
		s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot(id, models.SlotKindLeaderboard)}))
	}

	out, err := s.repo.ListSlots(s.ctx, &ListSlotsInput{RaceID: "race-1", Kind: models.SlotKindLeaderboard})
	s.Require().NoError(err)
	s.Require().Len(out.Slots, 3)
	s.Equal("300", out.Slots[0].MessageID)
	s.Equal("200", out.Slots[1].MessageID)
	s.Equal("100", out.Slots[2].MessageID)
	s.Equal("channel-leaderboard", out.Slots[0].ChannelID)
	s.Equal(models.SlotKindLeaderboard, out.Slots[0].Kind)
}

func (s *RedisRepositoryTestSuite) TestListSlotsSeparatesKinds() {
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("1", models.SlotKindSubmission)}))
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("2", models.SlotKindLeaderboard)}))

	subs, err := s.repo.ListSlots(s.ctx, &ListSlotsInput{RaceID: "race-1", Kind: models.SlotKindSubmission})
	s.Require().NoError(err)
	s.Require().Len(subs.Slots, 1)
	s.Equal("1", subs.Slots[0].MessageID)

	other, err := s.repo.ListSlots(s.ctx, &ListSlotsInput{RaceID: "race-2", Kind: models.SlotKindSubmission})
	s.Require().NoError(err)
	s.Empty(other.Slots)
}

func (s *RedisRepositoryTestSuite) TestSaveSlotTwiceKeepsPosition() {
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("a", models.SlotKindLeaderboard)}))
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("b", models.SlotKindLeaderboard)}))
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("a", models.SlotKindLeaderboard)}))

	out, err := s.repo.ListSlots(s.ctx, &ListSlotsInput{RaceID: "race-1", Kind: models.SlotKindLeaderboard})
	s.Require().NoError(err)
	s.Require().Len(out.Slots, 2)
	s.Equal("a", out.Slots[0].MessageID)
	s.Equal("b", out.Slots[1].MessageID)
}

func (s *RedisRepositoryTestSuite) TestDeleteSlot() {
	first := s.slot("1", models.SlotKindLeaderboard)
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: first}))
	s.Require().NoError(s.repo.SaveSlot(s.ctx, &SaveSlotInput{Slot: s.slot("2", models.SlotKindLeaderboard)}))

	s.Require().NoError(s.repo.DeleteSlot(s.ctx, &DeleteSlotInput{Slot: first}))

	out, err := s.repo.ListSlots(s.ctx, &ListSlotsInput{RaceID: "race-1", Kind: models.SlotKindLeaderboard})
	s.Require().NoError(err)
	s.Require().Len(out.Slots, 1)
	s.Equal("2", out.Slots[0].MessageID)

	s.ErrorIs(s.repo.DeleteSlot(s.ctx, &DeleteSlotInput{Slot: first}), ErrSlotNotFound)
}
