package dal_test

import "time"

func (s *BoltDBTestSuite) TestImages_Empty() {
	_, ok, err := s.store.GetLatestImage()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestImages_LatestWins() {
	s.Require().NoError(s.store.PutImage("media/GPV/07.11.2025.png"))
	s.advance(24 * time.Hour)
	s.Require().NoError(s.store.PutImage("media/GPV/08.11.2025.png"))

	latest, ok, err := s.store.GetLatestImage()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("media/GPV/08.11.2025.png", latest.URL)
	s.True(latest.At.Equal(s.now.Now()))
}
