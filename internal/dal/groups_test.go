package dal_test

import (
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
)

func (s *BoltDBTestSuite) TestGroupsState_Empty() {
	_, ok, err := s.store.GetLatestGroupsState()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestGroupsState_LatestWins() {
	first := []dal.Group{
		{ID: "1.1", Date: "07.11.2025", Schedule: "08:00-11:00"},
		{ID: "2.2", Date: "07.11.2025", Schedule: "14:30-17:00"},
	}
	second := []dal.Group{
		{ID: "1.1", Date: "08.11.2025", Schedule: ""},
		{ID: "2.2", Date: "08.11.2025", Schedule: "21:30-24:00"},
	}

	s.Require().NoError(s.store.PutGroupsState(first))
	s.advance(24 * time.Hour)
	s.Require().NoError(s.store.PutGroupsState(second))

	latest, ok, err := s.store.GetLatestGroupsState()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(second, latest.Groups)
	s.True(latest.At.Equal(s.now.Now()))
}

func (s *BoltDBTestSuite) TestGroupsState_PreservesSourceOrder() {
	groups := []dal.Group{
		{ID: "3.2", Date: "07.11.2025", Schedule: "18:00-21:00"},
		{ID: "1.1", Date: "07.11.2025", Schedule: "08:00-11:00"},
	}
	s.Require().NoError(s.store.PutGroupsState(groups))

	latest, ok, err := s.store.GetLatestGroupsState()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(groups, latest.Groups)
}
