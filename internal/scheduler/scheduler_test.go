package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/murahdahla/internal/services/race"
	raceMocks "github.com/KirkDiggler/murahdahla/internal/services/race/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRace *raceMocks.MockService
	ctx      context.Context
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRace = raceMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SchedulerTestSuite) newScheduler() *Scheduler {
	sched, err := New(&Config{Schedule: "*/5 * * * *", RaceService: s.mockRace})
	s.Require().NoError(err)
	return sched
}

func (s *SchedulerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Schedule: "*/5 * * * *"})
	s.Error(err)

	_, err = New(&Config{Schedule: "every five minutes", RaceService: s.mockRace})
	s.Error(err)
	s.Contains(err.Error(), "invalid schedule")
}

func (s *SchedulerTestSuite) TestRunOnce() {
	s.mockRace.EXPECT().
		RefreshActiveRaces(gomock.Any(), &race.RefreshActiveRacesInput{}).
		Return(&race.RefreshActiveRacesOutput{Refreshed: 3}, nil)

	s.Equal(3, s.newScheduler().runOnce(s.ctx))
}

func (s *SchedulerTestSuite) TestRunOnce_PartialFailure() {
	s.mockRace.EXPECT().
		RefreshActiveRaces(gomock.Any(), gomock.Any()).
		Return(&race.RefreshActiveRacesOutput{Refreshed: 1}, errors.New("race 4: rate limited"))

	s.Equal(1, s.newScheduler().runOnce(s.ctx))
}

func (s *SchedulerTestSuite) TestRunOnce_Failure() {
	log, hook := test.NewNullLogger()
	sched, err := New(&Config{Schedule: "@every 1m", RaceService: s.mockRace, Logger: log})
	s.Require().NoError(err)

	s.mockRace.EXPECT().
		RefreshActiveRaces(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("store unavailable"))

	s.Equal(0, sched.runOnce(s.ctx))
	s.Require().NotNil(hook.LastEntry())
	s.Equal(logrus.ErrorLevel, hook.LastEntry().Level)
	s.Equal("Leaderboard refresh failed", hook.LastEntry().Message)
}

func (s *SchedulerTestSuite) TestStartStop() {
	sched := s.newScheduler()
	s.True(sched.Next().IsZero())

	sched.Start()
	s.False(sched.Next().IsZero())

	sched.Stop(s.ctx)
	sched.Stop(s.ctx)
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}
