package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type Kind int

const (
	KindPlan Kind = iota
	KindExercise
	KindLog
)

func (k Kind) String() string {
	switch k {
	case KindPlan:
		return "plan"
	case KindExercise:
		return "exercise"
	case KindLog:
		return "log"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) notFound() error {
	switch k {
	case KindPlan:
		return errorvalues.ErrPlanNotFound
	case KindExercise:
		return errorvalues.ErrExerciseNotFound
	case KindLog:
		return errorvalues.ErrLogNotFound
	}
	return errorvalues.ErrNotFound
}

type loader func(ctx context.Context, id uuid.UUID) (entity.Owned, error)

// OwnershipGuard resolves an entity and checks that it belongs to the caller.
// A missing entity and a foreign one produce the same not-found error.
type OwnershipGuard struct {
	loaders map[Kind]loader
}

func NewOwnershipGuard(
	plans repository.PlansRepositoryI,
	exercises repository.ExercisesRepositoryI,
	logs repository.WorkoutLogsRepositoryI,
) *OwnershipGuard {
	if plans == nil || exercises == nil || logs == nil {
		log.Fatal("provided nil repository for ownership guard")
	}
	return &OwnershipGuard{
		loaders: map[Kind]loader{
			KindPlan: func(ctx context.Context, id uuid.UUID) (entity.Owned, error) {
				p, err := plans.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return p, nil
			},
			// exercise owner is resolved by joining its plan
			KindExercise: func(ctx context.Context, id uuid.UUID) (entity.Owned, error) {
				e, err := exercises.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return e, nil
			},
			KindLog: func(ctx context.Context, id uuid.UUID) (entity.Owned, error) {
				l, err := logs.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				return l, nil
			},
		},
	}
}

func (g *OwnershipGuard) AssertOwned(ctx context.Context, callerID uuid.UUID, kind Kind, id uuid.UUID) (entity.Owned, error) {
	load, ok := g.loaders[kind]
	if !ok {
		return nil, fmt.Errorf("no loader for %s: %w", kind, errorvalues.ErrInternal)
	}
	owned, err := load(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return nil, kind.notFound()
		}
		return nil, fmt.Errorf("resolving %s: %w", kind, err)
	}
	if owned.OwnerID() != callerID {
		return nil, kind.notFound()
	}
	return owned, nil
}

func (g *OwnershipGuard) Plan(ctx context.Context, callerID, planID uuid.UUID) (*entity.WorkoutPlan, error) {
	owned, err := g.AssertOwned(ctx, callerID, KindPlan, planID)
	if err != nil {
		return nil, err
	}
	return owned.(*entity.WorkoutPlan), nil
}

func (g *OwnershipGuard) Exercise(ctx context.Context, callerID, exerciseID uuid.UUID) (*entity.Exercise, error) {
	owned, err := g.AssertOwned(ctx, callerID, KindExercise, exerciseID)
	if err != nil {
		return nil, err
	}
	return owned.(*entity.Exercise), nil
}

func (g *OwnershipGuard) Log(ctx context.Context, callerID, logID uuid.UUID) (*entity.WorkoutLog, error) {
	owned, err := g.AssertOwned(ctx, callerID, KindLog, logID)
	if err != nil {
		return nil, err
	}
	return owned.(*entity.WorkoutLog), nil
}
