package usecase

import (
	"context"
	"fmt"

	goalin "flowcat/internal/modules/goal/port/in"
	"flowcat/internal/modules/timer/domain"
	"flowcat/internal/modules/timer/dto"
	timerin "flowcat/internal/modules/timer/port/in"
	timerout "flowcat/internal/modules/timer/port/out"
	"flowcat/internal/modules/timer/service"
	"flowcat/internal/platform/clock"
)

// Interactor drives the timer and links completed work sessions to the
// active goal: every finished working phase bumps the persisted session
// counter, credits the goal layer, and lands in the history log.
type Interactor struct {
	svc     *service.TimerService
	goals   goalin.Usecase
	counter timerout.SessionCounter
	log     timerout.SessionLog
	clock   clock.Clock
}

func NewInteractor(svc *service.TimerService, goals goalin.Usecase, counter timerout.SessionCounter, log timerout.SessionLog, clk clock.Clock) timerin.Usecase {
	return &Interactor{svc: svc, goals: goals, counter: counter, log: log, clock: clk}
}

func (i *Interactor) Start(_ context.Context) (dto.TimerOutput, error) {
	return toOutput(i.svc.Start(), ""), nil
}

func (i *Interactor) Pause(_ context.Context) (dto.TimerOutput, error) {
	return toOutput(i.svc.Pause(), ""), nil
}

func (i *Interactor) Reset(_ context.Context) (dto.TimerOutput, error) {
	return toOutput(i.svc.Reset(), ""), nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.TimerOutput, error) {
	timer, completion := i.svc.Tick()
	return i.afterTransition(ctx, timer, completion)
}

func (i *Interactor) Skip(ctx context.Context) (dto.TimerOutput, error) {
	timer, completion := i.svc.Skip()
	return i.afterTransition(ctx, timer, completion)
}

func (i *Interactor) Snapshot(_ context.Context) (dto.TimerOutput, error) {
	return toOutput(i.svc.Snapshot(), ""), nil
}

func (i *Interactor) Stats(ctx context.Context, days int) ([]dto.DayStatsOutput, error) {
	counts, err := i.log.DailyStats(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayStatsOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.DayStatsOutput{Day: c.Day, Sessions: c.Sessions})
	}
	return out, nil
}

// afterTransition applies the linker side effects of a phase completion
// and composes the user-facing message. The in-memory timer state is
// already advanced; a persistence failure is reported alongside it.
func (i *Interactor) afterTransition(ctx context.Context, timer domain.Timer, completion domain.Completion) (dto.TimerOutput, error) {
	if !completion.Occurred {
		return toOutput(timer, ""), nil
	}

	if !completion.WorkFinished {
		return toOutput(timer, "Break over — back to work."), nil
	}

	message := "Work period complete — time for a break."
	if err := i.counter.SaveSessionCount(ctx, timer.Sessions); err != nil {
		return toOutput(timer, message), err
	}

	credit, err := i.goals.CreditWorkSession(ctx)
	if err != nil {
		return toOutput(timer, message), err
	}
	logged := timerout.WorkSession{CompletedAt: i.clock.Now()}
	if credit.Credited {
		message += fmt.Sprintf(" %s: %d/%d pomodoros.", credit.GoalName, credit.CurrentPomodoros, credit.PomodorosPerLevel)
		if credit.LeveledUp {
			message += fmt.Sprintf(" Level complete! Progress %d/%d.", credit.Progress, credit.Levels)
		}
		logged.GoalID = credit.GoalID
		logged.GoalName = credit.GoalName
	}
	// The history log is a derived projection; its failure never blocks
	// the completion itself.
	_ = i.log.Record(ctx, logged)

	return toOutput(timer, message), nil
}

func toOutput(t domain.Timer, message string) dto.TimerOutput {
	return dto.TimerOutput{
		Phase:      string(t.Phase),
		PhaseLabel: t.Phase.Label(),
		Running:    t.Running,
		Remaining:  t.Remaining,
		PhaseTotal: t.PhaseSeconds(),
		Clock:      domain.FormatClock(t.Remaining),
		Sessions:   t.Sessions,
		Message:    message,
	}
}
