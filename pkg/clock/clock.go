package clock

import "time"

// Clock yields the current time in a fixed location. Services take it as a
// narrow interface so tests can pin "now".
type Clock struct {
	loc *time.Location
}

func New(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	now := time.Now()
	if c.loc != nil {
		now = now.In(c.loc)
	}
	return now
}

// Mock is a settable Clock for tests.
type Mock struct {
	value time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{value: value}
}

func (m *Mock) Now() time.Time {
	return m.value
}

func (m *Mock) Set(t time.Time) {
	m.value = t
}

// Kyiv returns the utility's civil timezone. Falls back to a fixed UTC+2
// zone when the tz database is unavailable.
func Kyiv() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return time.FixedZone("Kyiv", 2*60*60)
	}
	return loc
}
