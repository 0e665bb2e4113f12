package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoActiveGoal = errors.New("no active goal")
	ErrPersistence  = errors.New("persistence failure")
)
