package in

import (
	"context"

	"flowcat/internal/modules/timer/dto"
	timerin "flowcat/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Skip(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Skip(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.TimerOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) Stats(ctx context.Context, days int) ([]dto.DayStatsOutput, error) {
	return h.usecase.Stats(ctx, days)
}
