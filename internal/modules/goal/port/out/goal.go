package out

import (
	"context"

	"flowcat/internal/modules/goal/domain"
)

// Store is the single in-memory goal store backed by one file. Every
// ReplaceGoals rewrites the file wholesale. The active-goal reference is
// session state only and is never persisted.
type Store interface {
	Goals(ctx context.Context) ([]domain.Goal, error)
	ReplaceGoals(ctx context.Context, goals []domain.Goal) error
	ActiveGoalID(ctx context.Context) (string, bool)
	SetActiveGoalID(ctx context.Context, id string)
	ClearActiveGoalID(ctx context.Context)
}
