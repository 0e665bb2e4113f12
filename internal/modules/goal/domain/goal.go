package domain

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DateLayout is the calendar-date format used for goal windows.
const DateLayout = "2006-01-02"

// Goal is a multi-level task with a date-bounded active window. Progress
// advances either manually or after enough credited work sessions.
type Goal struct {
	// ID is assigned by the store and never serialized: identifiers stay
	// stable while the process runs, so deleting one goal cannot
	// invalidate references to any other.
	ID string `json:"-"`

	Name              string     `json:"name"`
	Difficulty        Difficulty `json:"difficulty"`
	Levels            int        `json:"levels"`
	Progress          int        `json:"progress"`
	PomodorosPerLevel int        `json:"pomodorosPerLevel"`
	CurrentPomodoros  int        `json:"currentPomodoros"`
	Start             string     `json:"start"`
	End               string     `json:"end"`
}

// State is the whole persisted document, overwritten on every mutation.
type State struct {
	Goals            []Goal `json:"goals"`
	PomodoroSessions int    `json:"pomodoroSessions"`
}

func (d Difficulty) Validate() error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", string(d))
	}
}

// Validate checks field constraints. Start <= End is deliberately not
// enforced: an inverted window simply never matches a today query.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := g.Difficulty.Validate(); err != nil {
		return err
	}
	if g.Levels <= 0 {
		return fmt.Errorf("levels must be positive, got %d", g.Levels)
	}
	if g.PomodorosPerLevel <= 0 {
		return fmt.Errorf("pomodoros per level must be positive, got %d", g.PomodorosPerLevel)
	}
	if g.Progress < 0 || g.Progress > g.Levels {
		return fmt.Errorf("progress %d outside [0, %d]", g.Progress, g.Levels)
	}
	if g.CurrentPomodoros < 0 || g.CurrentPomodoros > g.PomodorosPerLevel {
		return fmt.Errorf("current pomodoros %d outside [0, %d]", g.CurrentPomodoros, g.PomodorosPerLevel)
	}
	if _, err := time.Parse(DateLayout, g.Start); err != nil {
		return fmt.Errorf("start date %q: want YYYY-MM-DD", g.Start)
	}
	if _, err := time.Parse(DateLayout, g.End); err != nil {
		return fmt.Errorf("end date %q: want YYYY-MM-DD", g.End)
	}
	return nil
}

// InWindow reports whether date falls inside the goal's inclusive range.
// Lexicographic comparison is exact for YYYY-MM-DD strings.
func (g Goal) InWindow(date string) bool {
	return g.Start <= date && date <= g.End
}

// ApplyWorkSession credits one completed work session. At the
// per-level threshold the counter always resets; progress only advances
// while below the level cap, so surplus pomodoros past a finished goal
// are discarded rather than carried over.
func (g *Goal) ApplyWorkSession() (leveledUp bool) {
	g.CurrentPomodoros++
	if g.CurrentPomodoros >= g.PomodorosPerLevel {
		if g.Progress < g.Levels {
			g.Progress++
			leveledUp = true
		}
		g.CurrentPomodoros = 0
	}
	return leveledUp
}

// CompleteLevel manually advances one level and resets the pomodoro
// counter. Returns false without mutating once the goal is complete.
func (g *Goal) CompleteLevel() bool {
	if g.Progress >= g.Levels {
		return false
	}
	g.Progress++
	g.CurrentPomodoros = 0
	return true
}

func (g Goal) Completed() bool {
	return g.Progress >= g.Levels
}
