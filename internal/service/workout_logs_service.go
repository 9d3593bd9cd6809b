package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type WorkoutLogsService struct {
	logs      repository.WorkoutLogsRepositoryI
	exercises repository.ExercisesRepositoryI
	guard     *OwnershipGuard
	observer  WorkoutObserver
}

type WorkoutLogsOption func(*WorkoutLogsService)

func WithWorkoutObserver(o WorkoutObserver) WorkoutLogsOption {
	return func(s *WorkoutLogsService) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewWorkoutLogsService(
	logsRepo repository.WorkoutLogsRepositoryI,
	exercisesRepo repository.ExercisesRepositoryI,
	guard *OwnershipGuard,
	opts ...WorkoutLogsOption,
) *WorkoutLogsService {
	if logsRepo == nil || exercisesRepo == nil || guard == nil {
		log.Fatal("provided nil dependency for workout logs service")
	}
	s := &WorkoutLogsService{
		logs:      logsRepo,
		exercises: exercisesRepo,
		guard:     guard,
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordWorkout checks plan ownership, validates the payload, checks that
// every referenced exercise belongs to the plan and only then writes the
// log with its results in one transaction. Nothing is written on failure.
func (ls *WorkoutLogsService) RecordWorkout(ctx context.Context, uid uuid.UUID, req *RecordWorkoutRequest) (*entity.WorkoutLog, error) {
	if req == nil {
		req = &RecordWorkoutRequest{}
	}
	plan, err := ls.guard.Plan(ctx, uid, req.PlanID)
	if err != nil {
		ls.observer.WorkoutRejected("plan_not_found")
		return nil, err
	}
	if err = validateWorkout(req); err != nil {
		ls.observer.WorkoutRejected("invalid_input")
		return nil, err
	}
	if err = ls.checkReferences(ctx, plan.ID, req.Exercises); err != nil {
		ls.observer.WorkoutRejected("invalid_reference")
		return nil, err
	}

	wl := &entity.WorkoutLog{
		UserID:      uid,
		PlanID:      plan.ID,
		PlanTitle:   plan.Title,
		WorkoutDate: calendarDay(req.Date),
		Notes:       req.Notes,
		Duration:    valueOr(req.Duration, 0),
		Exercises:   make([]*entity.ExerciseLog, 0, len(req.Exercises)),
	}
	for _, res := range req.Exercises {
		wl.Exercises = append(wl.Exercises, &entity.ExerciseLog{
			ExerciseID:    res.ExerciseID,
			SetsCompleted: res.SetsCompleted,
			RepsCompleted: res.RepsCompleted,
			WeightUsed:    valueOr(res.WeightUsed, 0),
			Notes:         res.Notes,
		})
	}
	if err = ls.logs.CreateWithExercises(ctx, wl); err != nil {
		ls.observer.WorkoutRejected("store_error")
		return nil, repoError("workout logs", err)
	}
	ls.observer.WorkoutRecorded(len(wl.Exercises))
	return wl, nil
}

func (ls *WorkoutLogsService) ListLogs(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutLog, error) {
	logs, err := ls.logs.ListByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	return logs, nil
}

func (ls *WorkoutLogsService) GetLog(ctx context.Context, uid, logID uuid.UUID) (*entity.WorkoutLog, error) {
	return ls.guard.Log(ctx, uid, logID)
}

func (ls *WorkoutLogsService) checkReferences(ctx context.Context, planID uuid.UUID, results []ExerciseResult) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(results))
	seen := make(map[uuid.UUID]struct{}, len(results))
	for _, res := range results {
		if _, ok := seen[res.ExerciseID]; ok {
			continue
		}
		seen[res.ExerciseID] = struct{}{}
		ids = append(ids, res.ExerciseID)
	}
	found, err := ls.exercises.GetByIDs(ctx, ids)
	if err != nil {
		return repoError("exercises", err)
	}
	planOf := make(map[uuid.UUID]uuid.UUID, len(found))
	for _, ex := range found {
		planOf[ex.ID] = ex.PlanID
	}
	for _, id := range ids {
		if p, ok := planOf[id]; !ok || p != planID {
			return fmt.Errorf("exercise %s is not part of plan %s: %w", id, planID, errorvalues.ErrInvalidReference)
		}
	}
	return nil
}

func validateWorkout(req *RecordWorkoutRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: workout date is required", errorvalues.ErrInvalidInput)
	}
	return validateStruct(req)
}

// calendarDay drops the time of day keeping the date as the caller sees it.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
