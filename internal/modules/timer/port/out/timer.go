package out

import (
	"context"
	"time"
)

// SessionCounter persists the lifetime count of completed work sessions.
// It is the only timer state that survives a restart.
type SessionCounter interface {
	SessionCount(ctx context.Context) (int, error)
	SaveSessionCount(ctx context.Context, count int) error
}

// WorkSession is one completed working phase, recorded for statistics.
type WorkSession struct {
	CompletedAt time.Time
	GoalID      string
	GoalName    string
}

type DayCount struct {
	Day      string
	Sessions int
}

// SessionLog is a derived history projection; losing it never corrupts
// the primary store.
type SessionLog interface {
	Record(ctx context.Context, session WorkSession) error
	DailyStats(ctx context.Context, days int) ([]DayCount, error)
}
