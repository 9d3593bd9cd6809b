package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type PlansService struct {
	plans     repository.PlansRepositoryI
	exercises repository.ExercisesRepositoryI
	guard     *OwnershipGuard
}

func NewPlansService(plansRepo repository.PlansRepositoryI, exercisesRepo repository.ExercisesRepositoryI, guard *OwnershipGuard) *PlansService {
	if plansRepo == nil || exercisesRepo == nil || guard == nil {
		log.Fatal("provided nil dependency for plans service")
	}
	return &PlansService{
		plans:     plansRepo,
		exercises: exercisesRepo,
		guard:     guard,
	}
}

func (ps *PlansService) CreatePlan(ctx context.Context, uid uuid.UUID, req *PlanRequest) (*entity.WorkoutPlan, error) {
	req = normalizePlan(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	plan := &entity.WorkoutPlan{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := ps.plans.Create(ctx, plan); err != nil {
		return nil, repoError("plans", err)
	}
	return plan, nil
}

func (ps *PlansService) ListPlans(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	plans, err := ps.plans.ListByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("plans", err)
	}
	return plans, nil
}

func (ps *PlansService) GetPlan(ctx context.Context, uid, planID uuid.UUID) (*entity.WorkoutPlan, error) {
	return ps.guard.Plan(ctx, uid, planID)
}

func (ps *PlansService) UpdatePlan(ctx context.Context, uid, planID uuid.UUID, req *PlanRequest) (int64, error) {
	req = normalizePlan(req)
	if err := validateStruct(req); err != nil {
		return 0, err
	}
	plan, err := ps.guard.Plan(ctx, uid, planID)
	if err != nil {
		return 0, err
	}
	plan.Title = req.Title
	plan.Description = req.Description
	count, err := ps.plans.Update(ctx, plan)
	if err != nil {
		return 0, repoError("plans", err)
	}
	return count, nil
}

func (ps *PlansService) DeletePlan(ctx context.Context, uid, planID uuid.UUID) (int64, error) {
	if _, err := ps.guard.Plan(ctx, uid, planID); err != nil {
		return 0, err
	}
	count, err := ps.plans.Delete(ctx, planID)
	if err != nil {
		return 0, repoError("plans", err)
	}
	return count, nil
}

func (ps *PlansService) CreateExercise(ctx context.Context, uid, planID uuid.UUID, req *ExerciseRequest) (*entity.Exercise, error) {
	req = normalizeExercise(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ps.guard.Plan(ctx, uid, planID); err != nil {
		return nil, err
	}
	exercise := &entity.Exercise{
		PlanID:      planID,
		Name:        req.Name,
		Sets:        req.Sets,
		Reps:        req.Reps,
		Weight:      valueOr(req.Weight, 0),
		PlanOwnerID: uid,
	}
	if err := ps.exercises.Create(ctx, exercise); err != nil {
		return nil, repoError("exercises", err)
	}
	return exercise, nil
}

func (ps *PlansService) ListExercises(ctx context.Context, uid, planID uuid.UUID) ([]*entity.Exercise, error) {
	if _, err := ps.guard.Plan(ctx, uid, planID); err != nil {
		return nil, err
	}
	exercises, err := ps.exercises.ListByPlanID(ctx, planID)
	if err != nil {
		return nil, repoError("exercises", err)
	}
	return exercises, nil
}

func (ps *PlansService) UpdateExercise(ctx context.Context, uid, exerciseID uuid.UUID, req *ExerciseRequest) (int64, error) {
	req = normalizeExercise(req)
	if err := validateStruct(req); err != nil {
		return 0, err
	}
	exercise, err := ps.guard.Exercise(ctx, uid, exerciseID)
	if err != nil {
		return 0, err
	}
	exercise.Name = req.Name
	exercise.Sets = req.Sets
	exercise.Reps = req.Reps
	exercise.Weight = valueOr(req.Weight, 0)
	count, err := ps.exercises.Update(ctx, exercise)
	if err != nil {
		return 0, repoError("exercises", err)
	}
	return count, nil
}

func (ps *PlansService) DeleteExercise(ctx context.Context, uid, exerciseID uuid.UUID) (int64, error) {
	if _, err := ps.guard.Exercise(ctx, uid, exerciseID); err != nil {
		return 0, err
	}
	count, err := ps.exercises.Delete(ctx, exerciseID)
	if err != nil {
		return 0, repoError("exercises", err)
	}
	return count, nil
}

func normalizePlan(req *PlanRequest) *PlanRequest {
	if req == nil {
		return &PlanRequest{}
	}
	return &PlanRequest{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	}
}

func normalizeExercise(req *ExerciseRequest) *ExerciseRequest {
	if req == nil {
		return &ExerciseRequest{}
	}
	normalized := *req
	normalized.Name = strings.TrimSpace(req.Name)
	return &normalized
}

// repoError keeps not-found errors as is and wraps the rest with the
// repository name. Error kinds survive wrapping.
func repoError(repo string, err error) error {
	if errors.Is(err, errorvalues.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s repository error: %w", repo, err)
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
