package domain_test

import (
	"testing"

	"flowcat/internal/modules/goal/domain"
)

func validGoal() domain.Goal {
	return domain.Goal{
		ID:                "goal-1",
		Name:              "Read",
		Difficulty:        domain.DifficultyMedium,
		Levels:            3,
		PomodorosPerLevel: 2,
		Start:             "2024-06-01",
		End:               "2024-06-30",
	}
}

func TestDifficultyValidate(t *testing.T) {
	t.Parallel()
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		if err := d.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", d, err)
		}
	}
	if err := domain.Difficulty("Brutal").Validate(); err == nil {
		t.Fatalf("unknown difficulty should fail")
	}
}

func TestGoalValidate(t *testing.T) {
	t.Parallel()
	if err := validGoal().Validate(); err != nil {
		t.Fatalf("goal should be valid: %v", err)
	}

	emptyName := validGoal()
	emptyName.Name = "   "
	if err := emptyName.Validate(); err == nil {
		t.Fatalf("blank name should fail")
	}

	zeroLevels := validGoal()
	zeroLevels.Levels = 0
	if err := zeroLevels.Validate(); err == nil {
		t.Fatalf("non-positive levels should fail")
	}

	zeroPomodoros := validGoal()
	zeroPomodoros.PomodorosPerLevel = 0
	if err := zeroPomodoros.Validate(); err == nil {
		t.Fatalf("non-positive pomodoros per level should fail")
	}

	overProgress := validGoal()
	overProgress.Progress = 4
	if err := overProgress.Validate(); err == nil {
		t.Fatalf("progress above levels should fail")
	}

	badDate := validGoal()
	badDate.Start = "June 1st"
	if err := badDate.Validate(); err == nil {
		t.Fatalf("malformed start date should fail")
	}

	// An inverted window is accepted; it just never matches a today query.
	inverted := validGoal()
	inverted.Start, inverted.End = inverted.End, inverted.Start
	if err := inverted.Validate(); err != nil {
		t.Fatalf("inverted window should still validate: %v", err)
	}
	if inverted.InWindow("2024-06-15") {
		t.Fatalf("inverted window must never contain a date")
	}
}

func TestInWindow(t *testing.T) {
	t.Parallel()
	g := validGoal()
	for date, want := range map[string]bool{
		"2024-05-31": false,
		"2024-06-01": true,
		"2024-06-15": true,
		"2024-06-30": true,
		"2024-07-01": false,
	} {
		if got := g.InWindow(date); got != want {
			t.Fatalf("InWindow(%s) = %t, want %t", date, got, want)
		}
	}
}

func TestApplyWorkSessionAdvancesAtThreshold(t *testing.T) {
	t.Parallel()
	g := validGoal()

	if leveled := g.ApplyWorkSession(); leveled {
		t.Fatalf("first session should not complete a level")
	}
	if g.CurrentPomodoros != 1 || g.Progress != 0 {
		t.Fatalf("after one session got pomodoros=%d progress=%d", g.CurrentPomodoros, g.Progress)
	}

	if leveled := g.ApplyWorkSession(); !leveled {
		t.Fatalf("second session should complete a level")
	}
	if g.CurrentPomodoros != 0 || g.Progress != 1 {
		t.Fatalf("after threshold got pomodoros=%d progress=%d", g.CurrentPomodoros, g.Progress)
	}
}

func TestApplyWorkSessionDiscardsSurplus(t *testing.T) {
	t.Parallel()
	g := validGoal()
	g.Progress = g.Levels

	if leveled := g.ApplyWorkSession(); leveled {
		t.Fatalf("completed goal must not level up")
	}
	if g.CurrentPomodoros != 1 {
		t.Fatalf("counter should still track, got %d", g.CurrentPomodoros)
	}
	if leveled := g.ApplyWorkSession(); leveled {
		t.Fatalf("completed goal must not level up at threshold")
	}
	if g.CurrentPomodoros != 0 {
		t.Fatalf("threshold must reset counter even at max progress, got %d", g.CurrentPomodoros)
	}
	if g.Progress != g.Levels {
		t.Fatalf("progress must not overflow, got %d", g.Progress)
	}
}

func TestCompleteLevelIdempotentAtMax(t *testing.T) {
	t.Parallel()
	g := validGoal()
	g.CurrentPomodoros = 1

	if !g.CompleteLevel() {
		t.Fatalf("incomplete goal should advance")
	}
	if g.Progress != 1 || g.CurrentPomodoros != 0 {
		t.Fatalf("complete level should reset pomodoros, got progress=%d pomodoros=%d", g.Progress, g.CurrentPomodoros)
	}

	g.Progress = g.Levels
	for i := 0; i < 3; i++ {
		if g.CompleteLevel() {
			t.Fatalf("completed goal should not advance further")
		}
	}
	if g.Progress != g.Levels {
		t.Fatalf("progress moved past levels: %d", g.Progress)
	}
	if !g.Completed() {
		t.Fatalf("goal at max progress should report completed")
	}
}
