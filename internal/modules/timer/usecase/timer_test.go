package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	goaldto "flowcat/internal/modules/goal/dto"
	timerdomain "flowcat/internal/modules/timer/domain"
	timerout "flowcat/internal/modules/timer/port/out"
	"flowcat/internal/modules/timer/service"
	"flowcat/internal/modules/timer/usecase"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeCounter struct {
	saved []int
}

func (f *fakeCounter) SessionCount(context.Context) (int, error) {
	if len(f.saved) == 0 {
		return 0, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeCounter) SaveSessionCount(_ context.Context, count int) error {
	f.saved = append(f.saved, count)
	return nil
}

type fakeLog struct {
	recorded []timerout.WorkSession
}

func (f *fakeLog) Record(_ context.Context, session timerout.WorkSession) error {
	f.recorded = append(f.recorded, session)
	return nil
}

func (f *fakeLog) DailyStats(context.Context, int) ([]timerout.DayCount, error) {
	return nil, nil
}

// fakeGoals implements goalin.Usecase; only CreditWorkSession matters here.
type fakeGoals struct {
	credit  goaldto.CreditOutput
	credits int
}

func (f *fakeGoals) Create(context.Context, goaldto.GoalInput) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) Update(context.Context, string, goaldto.GoalInput) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) Delete(context.Context, string) error { return nil }
func (f *fakeGoals) Get(context.Context, string) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) List(context.Context) ([]goaldto.GoalOutput, error) { return nil, nil }
func (f *fakeGoals) ListToday(context.Context, string) ([]goaldto.GoalOutput, error) {
	return nil, nil
}
func (f *fakeGoals) CompleteLevel(context.Context, string) (goaldto.CompleteLevelOutput, error) {
	return goaldto.CompleteLevelOutput{}, nil
}
func (f *fakeGoals) SetActive(context.Context, string) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) ClearActive(context.Context) error { return nil }
func (f *fakeGoals) Active(context.Context) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) PickToday(context.Context, string) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}
func (f *fakeGoals) CreditWorkSession(context.Context) (goaldto.CreditOutput, error) {
	f.credits++
	return f.credit, nil
}

func TestWorkCompletionPersistsCountCreditsGoalAndLogs(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{credit: goaldto.CreditOutput{
		Credited:          true,
		GoalID:            "goal-1",
		GoalName:          "Read",
		CurrentPomodoros:  0,
		PomodorosPerLevel: 2,
		Progress:          1,
		Levels:            3,
		LeveledUp:         true,
	}}
	counter := &fakeCounter{}
	log := &fakeLog{}
	clk := fakeClock{now: time.Date(2024, 6, 15, 11, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewTimerService(timerdomain.NewTimer(0, 0, 3)), goals, counter, log, clk)

	out, err := uc.Skip(context.Background())
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if out.Sessions != 4 {
		t.Fatalf("expected session count 4, got %d", out.Sessions)
	}
	if len(counter.saved) != 1 || counter.saved[0] != 4 {
		t.Fatalf("counter should persist 4, got %+v", counter.saved)
	}
	if goals.credits != 1 {
		t.Fatalf("expected one goal credit, got %d", goals.credits)
	}
	if len(log.recorded) != 1 || log.recorded[0].GoalName != "Read" || !log.recorded[0].CompletedAt.Equal(clk.now) {
		t.Fatalf("unexpected log entry %+v", log.recorded)
	}
	if !strings.Contains(out.Message, "Work period complete") {
		t.Fatalf("message missing phase line: %q", out.Message)
	}
	if !strings.Contains(out.Message, "Read: 0/2 pomodoros") {
		t.Fatalf("message missing credit line: %q", out.Message)
	}
	if !strings.Contains(out.Message, "Progress 1/3") {
		t.Fatalf("message missing level line: %q", out.Message)
	}
	if out.Phase != "break" || out.Running || out.Clock != "05:00" {
		t.Fatalf("timer should rest idle in break at 05:00, got %+v", out)
	}
}

func TestWorkCompletionWithoutActiveGoalOmitsProgressLine(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{}
	counter := &fakeCounter{}
	log := &fakeLog{}
	uc := usecase.NewInteractor(service.NewTimerService(timerdomain.NewTimer(0, 0, 0)), goals, counter, log, fakeClock{now: time.Now()})

	out, err := uc.Skip(context.Background())
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if out.Message != "Work period complete — time for a break." {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if goals.credits != 1 {
		t.Fatalf("linker must still consume the event, got %d", goals.credits)
	}
	if len(log.recorded) != 1 || log.recorded[0].GoalID != "" {
		t.Fatalf("uncredited session should log without a goal, got %+v", log.recorded)
	}
}

func TestBreakCompletionReportsWithoutSideEffects(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{}
	counter := &fakeCounter{}
	log := &fakeLog{}
	uc := usecase.NewInteractor(service.NewTimerService(timerdomain.NewTimer(0, 0, 0)), goals, counter, log, fakeClock{now: time.Now()})

	if _, err := uc.Skip(context.Background()); err != nil {
		t.Fatalf("skip into break: %v", err)
	}
	out, err := uc.Skip(context.Background())
	if err != nil {
		t.Fatalf("skip break: %v", err)
	}
	if out.Message != "Break over — back to work." {
		t.Fatalf("unexpected break message %q", out.Message)
	}
	if len(counter.saved) != 1 || goals.credits != 1 || len(log.recorded) != 1 {
		t.Fatalf("break completion must add no side effects: saves=%d credits=%d logs=%d",
			len(counter.saved), goals.credits, len(log.recorded))
	}
	if out.Phase != "working" || out.Clock != "25:00" {
		t.Fatalf("expected idle working at 25:00, got %+v", out)
	}
}

func TestTicksDriveExactlyOneCompletion(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{credit: goaldto.CreditOutput{Credited: true, GoalName: "Read", PomodorosPerLevel: 2, Levels: 3}}
	counter := &fakeCounter{}
	log := &fakeLog{}
	uc := usecase.NewInteractor(service.NewTimerService(timerdomain.NewTimer(0, 0, 0)), goals, counter, log, fakeClock{now: time.Now()})

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	completions := 0
	for i := 0; i < 1500; i++ {
		out, err := uc.Tick(context.Background())
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if out.Message != "" {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected exactly one completion over 1500 ticks, got %d", completions)
	}
	if goals.credits != 1 || len(counter.saved) != 1 {
		t.Fatalf("expected one credit and one save, got credits=%d saves=%d", goals.credits, len(counter.saved))
	}

	snap, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Phase != "break" || snap.Running || snap.Clock != "05:00" {
		t.Fatalf("expected idle break at 05:00, got %+v", snap)
	}
}
