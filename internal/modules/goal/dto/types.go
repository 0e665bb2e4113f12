package dto

type GoalInput struct {
	Name              string
	Difficulty        string
	Levels            int
	PomodorosPerLevel int
	Start             string
	End               string
}

type GoalOutput struct {
	ID                string
	Name              string
	Difficulty        string
	Levels            int
	Progress          int
	PomodorosPerLevel int
	CurrentPomodoros  int
	Start             string
	End               string
	Active            bool
	Completed         bool
}

// CreditOutput reports how a completed work session landed on the
// active goal. Credited is false when no goal was active.
type CreditOutput struct {
	Credited          bool
	GoalID            string
	GoalName          string
	CurrentPomodoros  int
	PomodorosPerLevel int
	Progress          int
	Levels            int
	LeveledUp         bool
}

// CompleteLevelOutput reports a manual level completion. Advanced is
// false when the goal was already complete (a documented no-op).
type CompleteLevelOutput struct {
	Goal     GoalOutput
	Advanced bool
}
