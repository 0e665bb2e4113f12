package in

import (
	"context"

	"flowcat/internal/modules/goal/dto"
	goalin "flowcat/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name, difficulty string, levels, pomodorosPerLevel int, start, end string) (dto.GoalOutput, error) {
	return h.usecase.Create(ctx, dto.GoalInput{
		Name:              name,
		Difficulty:        difficulty,
		Levels:            levels,
		PomodorosPerLevel: pomodorosPerLevel,
		Start:             start,
		End:               end,
	})
}

func (h CLIHandler) Update(ctx context.Context, id, name, difficulty string, levels, pomodorosPerLevel int, start, end string) (dto.GoalOutput, error) {
	return h.usecase.Update(ctx, id, dto.GoalInput{
		Name:              name,
		Difficulty:        difficulty,
		Levels:            levels,
		PomodorosPerLevel: pomodorosPerLevel,
		Start:             start,
		End:               end,
	})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) ListToday(ctx context.Context, date string) ([]dto.GoalOutput, error) {
	return h.usecase.ListToday(ctx, date)
}

func (h CLIHandler) CompleteLevel(ctx context.Context, id string) (dto.CompleteLevelOutput, error) {
	return h.usecase.CompleteLevel(ctx, id)
}

func (h CLIHandler) SetActive(ctx context.Context, id string) (dto.GoalOutput, error) {
	return h.usecase.SetActive(ctx, id)
}

func (h CLIHandler) ClearActive(ctx context.Context) error {
	return h.usecase.ClearActive(ctx)
}

func (h CLIHandler) Active(ctx context.Context) (dto.GoalOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) PickToday(ctx context.Context, date string) (dto.GoalOutput, error) {
	return h.usecase.PickToday(ctx, date)
}
