package service

import (
	"context"
	"fmt"

	"flowcat/internal/modules/goal/domain"
	goalout "flowcat/internal/modules/goal/port/out"
	"flowcat/internal/platform/clock"
	apperrors "flowcat/internal/platform/errors"
	"flowcat/internal/platform/id"
	"flowcat/internal/platform/randgen"
)

const defaultWindowDays = 7

// Credit is the result of applying one completed work session to the
// active goal.
type Credit struct {
	Credited  bool
	Goal      domain.Goal
	LeveledUp bool
}

type GoalService struct {
	clock clock.Clock
	ids   id.Generator
	store goalout.Store
	rnd   randgen.Source
}

func NewGoalService(clock clock.Clock, ids id.Generator, store goalout.Store, rnd randgen.Source) *GoalService {
	return &GoalService{clock: clock, ids: ids, store: store, rnd: rnd}
}

func (s *GoalService) Create(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	goal.ID = s.ids.New()
	goal.Progress = 0
	goal.CurrentPomodoros = 0
	if goal.Start == "" {
		goal.Start = s.today()
	}
	if goal.End == "" {
		goal.End = s.clock.Now().AddDate(0, 0, defaultWindowDays).Format(domain.DateLayout)
	}
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}

	goals, err := s.store.Goals(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	goals = append(goals, goal)
	if err := s.store.ReplaceGoals(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// Update replaces the editable fields of a goal. Progress and the
// pomodoro counter carry over, clamped when the new bounds shrink.
func (s *GoalService) Update(ctx context.Context, goalID string, updated domain.Goal) (domain.Goal, error) {
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return domain.Goal{}, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	current := goals[idx]
	updated.ID = current.ID
	updated.Progress = current.Progress
	if updated.Progress > updated.Levels {
		updated.Progress = updated.Levels
	}
	updated.CurrentPomodoros = current.CurrentPomodoros
	if updated.CurrentPomodoros > updated.PomodorosPerLevel {
		updated.CurrentPomodoros = updated.PomodorosPerLevel
	}
	if err := updated.Validate(); err != nil {
		return domain.Goal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}

	goals[idx] = updated
	if err := s.store.ReplaceGoals(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	return updated, nil
}

// Delete removes a goal. Deleting the active goal clears the active
// reference; every other goal keeps its identity.
func (s *GoalService) Delete(ctx context.Context, goalID string) error {
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	if active, ok := s.store.ActiveGoalID(ctx); ok && active == goalID {
		s.store.ClearActiveGoalID(ctx)
	}
	goals = append(goals[:idx], goals[idx+1:]...)
	return s.store.ReplaceGoals(ctx, goals)
}

func (s *GoalService) Get(ctx context.Context, goalID string) (domain.Goal, error) {
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return domain.Goal{}, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	return goals[idx], nil
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.store.Goals(ctx)
}

// ListToday returns goals whose window contains date, in store order.
func (s *GoalService) ListToday(ctx context.Context, date string) ([]domain.Goal, error) {
	if date == "" {
		date = s.today()
	}
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return nil, err
	}
	today := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		if g.InWindow(date) {
			today = append(today, g)
		}
	}
	return today, nil
}

// CompleteLevel manually advances one level. A goal already at max
// progress is reported via advanced=false, never as an error.
func (s *GoalService) CompleteLevel(ctx context.Context, goalID string) (domain.Goal, bool, error) {
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		return domain.Goal{}, false, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	advanced := goals[idx].CompleteLevel()
	if !advanced {
		return goals[idx], false, nil
	}
	if err := s.store.ReplaceGoals(ctx, goals); err != nil {
		return domain.Goal{}, false, err
	}
	return goals[idx], true, nil
}

func (s *GoalService) SetActive(ctx context.Context, goalID string) (domain.Goal, error) {
	goal, err := s.Get(ctx, goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	s.store.SetActiveGoalID(ctx, goal.ID)
	return goal, nil
}

func (s *GoalService) ClearActive(ctx context.Context) {
	s.store.ClearActiveGoalID(ctx)
}

func (s *GoalService) ActiveID(ctx context.Context) (string, bool) {
	return s.store.ActiveGoalID(ctx)
}

func (s *GoalService) Active(ctx context.Context) (domain.Goal, error) {
	goalID, ok := s.store.ActiveGoalID(ctx)
	if !ok {
		return domain.Goal{}, apperrors.ErrNoActiveGoal
	}
	return s.Get(ctx, goalID)
}

// PickToday activates a uniformly random goal among today's goals.
func (s *GoalService) PickToday(ctx context.Context, date string) (domain.Goal, error) {
	today, err := s.ListToday(ctx, date)
	if err != nil {
		return domain.Goal{}, err
	}
	if len(today) == 0 {
		return domain.Goal{}, fmt.Errorf("%w: no goals scheduled for today", apperrors.ErrNotFound)
	}
	picked := today[s.rnd.IntN(len(today))]
	s.store.SetActiveGoalID(ctx, picked.ID)
	return picked, nil
}

// CreditWorkSession applies one completed work session to the active
// goal and persists the result. With no active goal nothing changes.
func (s *GoalService) CreditWorkSession(ctx context.Context) (Credit, error) {
	goalID, ok := s.store.ActiveGoalID(ctx)
	if !ok {
		return Credit{}, nil
	}
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return Credit{}, err
	}
	idx := indexOf(goals, goalID)
	if idx < 0 {
		// Stale reference; treat as no active goal.
		s.store.ClearActiveGoalID(ctx)
		return Credit{}, nil
	}
	leveledUp := goals[idx].ApplyWorkSession()
	if err := s.store.ReplaceGoals(ctx, goals); err != nil {
		return Credit{}, err
	}
	return Credit{Credited: true, Goal: goals[idx], LeveledUp: leveledUp}, nil
}

func (s *GoalService) today() string {
	return s.clock.Now().Format(domain.DateLayout)
}

func indexOf(goals []domain.Goal, goalID string) int {
	for i := range goals {
		if goals[i].ID == goalID {
			return i
		}
	}
	return -1
}
