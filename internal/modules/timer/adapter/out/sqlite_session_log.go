package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	timerout "flowcat/internal/modules/timer/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteSessionLog struct {
	db *sql.DB
}

func NewSQLiteSessionLog(dbPath string) (*SQLiteSessionLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log := &SQLiteSessionLog{db: db}
	if err := log.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *SQLiteSessionLog) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS work_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  completed_at TEXT NOT NULL,
  goal_id TEXT,
  goal_name TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create work_sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionLog) Record(ctx context.Context, session timerout.WorkSession) error {
	const stmt = `INSERT INTO work_sessions (completed_at, goal_id, goal_name) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		session.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		session.GoalID,
		session.GoalName,
	)
	if err != nil {
		return fmt.Errorf("record work session: %w", err)
	}
	return nil
}

// DailyStats aggregates completed sessions per calendar day, most recent
// first, limited to the given number of days.
func (s *SQLiteSessionLog) DailyStats(ctx context.Context, days int) ([]timerout.DayCount, error) {
	if days <= 0 {
		days = 7
	}
	const query = `
SELECT substr(completed_at, 1, 10) AS day, COUNT(*) AS sessions
FROM work_sessions
GROUP BY day
ORDER BY day DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []timerout.DayCount
	for rows.Next() {
		var c timerout.DayCount
		if err := rows.Scan(&c.Day, &c.Sessions); err != nil {
			return nil, fmt.Errorf("scan daily stats: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily stats: %w", err)
	}
	return counts, nil
}

var _ timerout.SessionLog = (*SQLiteSessionLog)(nil)
