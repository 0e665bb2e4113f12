package usecase

import (
	"context"

	"flowcat/internal/modules/goal/domain"
	"flowcat/internal/modules/goal/dto"
	goalin "flowcat/internal/modules/goal/port/in"
	"flowcat/internal/modules/goal/service"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, input dto.GoalInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Create(ctx, fromInput(input))
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.GoalInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Update(ctx, id, fromInput(input))
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.GoalOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return i.toOutputs(ctx, goals), nil
}

func (i *Interactor) ListToday(ctx context.Context, date string) ([]dto.GoalOutput, error) {
	goals, err := i.svc.ListToday(ctx, date)
	if err != nil {
		return nil, err
	}
	return i.toOutputs(ctx, goals), nil
}

func (i *Interactor) CompleteLevel(ctx context.Context, id string) (dto.CompleteLevelOutput, error) {
	goal, advanced, err := i.svc.CompleteLevel(ctx, id)
	if err != nil {
		return dto.CompleteLevelOutput{}, err
	}
	return dto.CompleteLevelOutput{Goal: i.toOutput(ctx, goal), Advanced: advanced}, nil
}

func (i *Interactor) SetActive(ctx context.Context, id string) (dto.GoalOutput, error) {
	goal, err := i.svc.SetActive(ctx, id)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) ClearActive(ctx context.Context) error {
	i.svc.ClearActive(ctx)
	return nil
}

func (i *Interactor) Active(ctx context.Context) (dto.GoalOutput, error) {
	goal, err := i.svc.Active(ctx)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) PickToday(ctx context.Context, date string) (dto.GoalOutput, error) {
	goal, err := i.svc.PickToday(ctx, date)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return i.toOutput(ctx, goal), nil
}

func (i *Interactor) CreditWorkSession(ctx context.Context) (dto.CreditOutput, error) {
	credit, err := i.svc.CreditWorkSession(ctx)
	if err != nil {
		return dto.CreditOutput{}, err
	}
	if !credit.Credited {
		return dto.CreditOutput{}, nil
	}
	return dto.CreditOutput{
		Credited:          true,
		GoalID:            credit.Goal.ID,
		GoalName:          credit.Goal.Name,
		CurrentPomodoros:  credit.Goal.CurrentPomodoros,
		PomodorosPerLevel: credit.Goal.PomodorosPerLevel,
		Progress:          credit.Goal.Progress,
		Levels:            credit.Goal.Levels,
		LeveledUp:         credit.LeveledUp,
	}, nil
}

func fromInput(input dto.GoalInput) domain.Goal {
	return domain.Goal{
		Name:              input.Name,
		Difficulty:        domain.Difficulty(input.Difficulty),
		Levels:            input.Levels,
		PomodorosPerLevel: input.PomodorosPerLevel,
		Start:             input.Start,
		End:               input.End,
	}
}

func (i *Interactor) toOutputs(ctx context.Context, goals []domain.Goal) []dto.GoalOutput {
	activeID, _ := i.svc.ActiveID(ctx)
	out := make([]dto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, toOutput(g, activeID))
	}
	return out
}

func (i *Interactor) toOutput(ctx context.Context, goal domain.Goal) dto.GoalOutput {
	activeID, _ := i.svc.ActiveID(ctx)
	return toOutput(goal, activeID)
}

func toOutput(g domain.Goal, activeID string) dto.GoalOutput {
	return dto.GoalOutput{
		ID:                g.ID,
		Name:              g.Name,
		Difficulty:        string(g.Difficulty),
		Levels:            g.Levels,
		Progress:          g.Progress,
		PomodorosPerLevel: g.PomodorosPerLevel,
		CurrentPomodoros:  g.CurrentPomodoros,
		Start:             g.Start,
		End:               g.End,
		Active:            g.ID == activeID && activeID != "",
		Completed:         g.Completed(),
	}
}
