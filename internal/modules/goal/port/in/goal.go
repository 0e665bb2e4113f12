package in

import (
	"context"

	"flowcat/internal/modules/goal/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.GoalInput) (dto.GoalOutput, error)
	Update(ctx context.Context, id string, input dto.GoalInput) (dto.GoalOutput, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.GoalOutput, error)
	List(ctx context.Context) ([]dto.GoalOutput, error)
	// ListToday filters goals whose window contains date; an empty date
	// means the current calendar day. Store order is preserved.
	ListToday(ctx context.Context, date string) ([]dto.GoalOutput, error)
	CompleteLevel(ctx context.Context, id string) (dto.CompleteLevelOutput, error)
	SetActive(ctx context.Context, id string) (dto.GoalOutput, error)
	ClearActive(ctx context.Context) error
	Active(ctx context.Context) (dto.GoalOutput, error)
	// PickToday selects a uniformly random goal among today's goals and
	// makes it active.
	PickToday(ctx context.Context, date string) (dto.GoalOutput, error)
	// CreditWorkSession applies a completed work session to the active
	// goal. With no active goal it reports an uncredited result.
	CreditWorkSession(ctx context.Context) (dto.CreditOutput, error)
}
