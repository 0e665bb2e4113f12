package clock

import "time"

// Clock abstracts time so "today" stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time; goal windows are calendar
// dates in the user's timezone, so UTC would shift the day boundary.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
