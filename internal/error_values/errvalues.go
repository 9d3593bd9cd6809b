package errorvalues

import (
	"errors"
	"fmt"
)

// Kinds. Every error returned by services wraps exactly one of them.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("invalid reference")
	ErrTimeout          = errors.New("store timeout")
	ErrInternal         = errors.New("internal error")
)

var (
	ErrUserNotFound     = fmt.Errorf("user doesn't exists: %w", ErrNotFound)
	ErrPlanNotFound     = fmt.Errorf("workout plan: %w", ErrNotFound)
	ErrExerciseNotFound = fmt.Errorf("exercise: %w", ErrNotFound)
	ErrLogNotFound      = fmt.Errorf("workout log: %w", ErrNotFound)
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)
