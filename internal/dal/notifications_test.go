package dal_test

import "time"

func (s *BoltDBTestSuite) TestNotifications_Empty() {
	_, ok, err := s.store.GetLatestNotification()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestNotifications_LatestWins() {
	s.Require().NoError(s.store.PutNextNotification("07.11.2025 14:30"))
	s.advance(7 * time.Minute)
	s.Require().NoError(s.store.PutNextNotification("07.11.2025 18:00"))

	latest, ok, err := s.store.GetLatestNotification()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("07.11.2025 18:00", latest.Target)
}

func (s *BoltDBTestSuite) TestNotifications_RepeatedTargetSuppressed() {
	s.Require().NoError(s.store.PutNextNotification("07.11.2025 14:30"))
	firstAt := s.now.Now()

	s.advance(7 * time.Minute)
	s.Require().NoError(s.store.PutNextNotification("07.11.2025 14:30"))

	latest, ok, err := s.store.GetLatestNotification()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("07.11.2025 14:30", latest.Target)
	s.True(latest.At.Equal(firstAt), "suppressed write must not touch the stored record")
}

func (s *BoltDBTestSuite) TestNotifications_EmptyTargetRecorded() {
	s.Require().NoError(s.store.PutNextNotification("07.11.2025 14:30"))
	s.advance(7 * time.Minute)
	s.Require().NoError(s.store.PutNextNotification(""))

	latest, ok, err := s.store.GetLatestNotification()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Empty(latest.Target)
}
