package in

import (
	"context"

	"flowcat/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.TimerOutput, error)
	Pause(ctx context.Context) (dto.TimerOutput, error)
	Reset(ctx context.Context) (dto.TimerOutput, error)
	// Tick advances one second of running countdown; completions carry a
	// user-facing message and have already been applied to the goal layer.
	Tick(ctx context.Context) (dto.TimerOutput, error)
	// Skip force-completes the current phase regardless of state.
	Skip(ctx context.Context) (dto.TimerOutput, error)
	Snapshot(ctx context.Context) (dto.TimerOutput, error)
	Stats(ctx context.Context, days int) ([]dto.DayStatsOutput, error)
}
