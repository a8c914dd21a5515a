package dal_test

import (
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
)

func (s *BoltDBTestSuite) TestStatuses_Empty() {
	status, ok, err := s.store.GetLatestStatus()
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(status)

	statuses, err := s.store.GetStatuses(10)
	s.Require().NoError(err)
	s.Empty(statuses)
}

func (s *BoltDBTestSuite) TestStatuses_LatestFollowsClock() {
	s.Require().NoError(s.store.PutStatus(dal.StatusOnline))
	s.advance(7 * time.Minute)
	s.Require().NoError(s.store.PutStatus(dal.StatusOffline))
	s.advance(7 * time.Minute)
	s.Require().NoError(s.store.PutStatus(dal.StatusOnline))

	latest, ok, err := s.store.GetLatestStatus()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(dal.StatusOnline, latest.Status)
	s.True(latest.At.Equal(s.now.Now()), "At should be the last observation time")
}

func (s *BoltDBTestSuite) TestStatuses_GetStatusesNewestFirst() {
	want := []string{dal.StatusOnline, dal.StatusOffline, dal.StatusOnline, dal.StatusOffline}
	for _, status := range want {
		s.Require().NoError(s.store.PutStatus(status))
		s.advance(7 * time.Minute)
	}

	statuses, err := s.store.GetStatuses(3)
	s.Require().NoError(err)
	s.Require().Len(statuses, 3)
	s.Equal(dal.StatusOffline, statuses[0].Status)
	s.Equal(dal.StatusOnline, statuses[1].Status)
	s.Equal(dal.StatusOffline, statuses[2].Status)
	s.True(statuses[0].At.After(statuses[1].At))
	s.True(statuses[1].At.After(statuses[2].At))
}

func (s *BoltDBTestSuite) TestStatuses_Cleanup() {
	s.Require().NoError(s.store.PutStatus(dal.StatusOffline))
	s.advance(48 * time.Hour)
	s.Require().NoError(s.store.PutStatus(dal.StatusOnline))
	s.advance(time.Hour)

	s.Require().NoError(s.store.CleanupStatuses(24*time.Hour))

	statuses, err := s.store.GetStatuses(10)
	s.Require().NoError(err)
	s.Require().Len(statuses, 1)
	s.Equal(dal.StatusOnline, statuses[0].Status)
}

func (s *BoltDBTestSuite) TestStatuses_CleanupZeroTTLKeepsAll() {
	s.Require().NoError(s.store.PutStatus(dal.StatusOffline))
	s.advance(time.Hour)
	s.Require().NoError(s.store.PutStatus(dal.StatusOnline))

	s.Require().NoError(s.store.CleanupStatuses(0))

	statuses, err := s.store.GetStatuses(10)
	s.Require().NoError(err)
	s.Len(statuses, 2)
}
