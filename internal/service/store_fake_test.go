package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

// memStore keeps plans, exercises and logs in memory with the same
// visibility rules as the postgres repositories. Writes of a log and its
// results happen under one lock.
type memStore struct {
	mu        sync.RWMutex
	plans     map[uuid.UUID]entity.WorkoutPlan
	exercises map[uuid.UUID]entity.Exercise
	logs      map[uuid.UUID]entity.WorkoutLog
	// writes counts stored log rows plus exercise log rows
	writes int
	clock  time.Time
}

func newMemStore() *memStore {
	return &memStore{
		plans:     map[uuid.UUID]entity.WorkoutPlan{},
		exercises: map[uuid.UUID]entity.Exercise{},
		logs:      map[uuid.UUID]entity.WorkoutLog{},
		clock:     time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing creation times.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *memStore) rowsWritten() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

type memPlans struct{ *memStore }

func (s memPlans) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan.ID = uuid.New()
	plan.CreatedAt = s.tick()
	plan.UpdatedAt = plan.CreatedAt
	s.plans[plan.ID] = *plan
	return nil
}

func (s memPlans) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	if !ok {
		return nil, errorvalues.ErrPlanNotFound
	}
	return &p, nil
}

func (s memPlans) ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entity.WorkoutPlan, 0)
	for _, p := range s.plans {
		if p.UserID == uid {
			p := p
			result = append(result, &p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (s memPlans) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	plans, _ := s.ListByUserID(ctx, uid)
	return len(plans), nil
}

func (s memPlans) Update(ctx context.Context, plan *entity.WorkoutPlan) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[plan.ID]
	if !ok {
		return 0, errorvalues.ErrPlanNotFound
	}
	p.Title, p.Description, p.UpdatedAt = plan.Title, plan.Description, s.tick()
	s.plans[p.ID] = p
	return 1, nil
}

func (s memPlans) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[id]; !ok {
		return 0, errorvalues.ErrPlanNotFound
	}
	delete(s.plans, id)
	return 1, nil
}

type memExercises struct{ *memStore }

func (s memExercises) Create(ctx context.Context, exercise *entity.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exercise.ID = uuid.New()
	exercise.CreatedAt = s.tick()
	stored := *exercise
	stored.PlanOwnerID = uuid.Nil
	s.exercises[exercise.ID] = stored
	return nil
}

func (s memExercises) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.exercises[id]
	if !ok {
		return nil, errorvalues.ErrExerciseNotFound
	}
	p, ok := s.plans[e.PlanID]
	if !ok {
		return nil, errorvalues.ErrExerciseNotFound
	}
	e.PlanOwnerID = p.UserID
	return &e, nil
}

func (s memExercises) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entity.Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.exercises[id]; ok {
			result = append(result, &e)
		}
	}
	return result, nil
}

func (s memExercises) ListByPlanID(ctx context.Context, planID uuid.UUID) ([]*entity.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entity.Exercise, 0)
	for _, e := range s.exercises {
		if e.PlanID == planID {
			e := e
			result = append(result, &e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (s memExercises) Update(ctx context.Context, exercise *entity.Exercise) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exercises[exercise.ID]
	if !ok {
		return 0, errorvalues.ErrExerciseNotFound
	}
	e.Name, e.Sets, e.Reps, e.Weight = exercise.Name, exercise.Sets, exercise.Reps, exercise.Weight
	s.exercises[e.ID] = e
	return 1, nil
}

func (s memExercises) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exercises[id]; !ok {
		return 0, errorvalues.ErrExerciseNotFound
	}
	delete(s.exercises, id)
	return 1, nil
}

type memLogs struct{ *memStore }

func (s memLogs) CreateWithExercises(ctx context.Context, wl *entity.WorkoutLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wl.ID = uuid.New()
	wl.CreatedAt = s.tick()
	stored := *wl
	stored.PlanTitle = ""
	stored.Exercises = make([]*entity.ExerciseLog, 0, len(wl.Exercises))
	for _, el := range wl.Exercises {
		el.ID = uuid.New()
		el.LogID = wl.ID
		copied := *el
		stored.Exercises = append(stored.Exercises, &copied)
	}
	s.logs[wl.ID] = stored
	s.writes += 1 + len(wl.Exercises)
	return nil
}

func (s memLogs) hydrate(l entity.WorkoutLog) *entity.WorkoutLog {
	if p, ok := s.plans[l.PlanID]; ok {
		l.PlanTitle = p.Title
	}
	children := make([]*entity.ExerciseLog, 0, len(l.Exercises))
	for _, el := range l.Exercises {
		copied := *el
		children = append(children, &copied)
	}
	l.Exercises = children
	return &l
}

func (s memLogs) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.logs[id]
	if !ok {
		return nil, errorvalues.ErrLogNotFound
	}
	return s.hydrate(l), nil
}

func (s memLogs) ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*entity.WorkoutLog, 0)
	for _, l := range s.logs {
		if l.UserID == uid {
			result = append(result, s.hydrate(l))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].WorkoutDate.Equal(result[j].WorkoutDate) {
			return result[i].WorkoutDate.After(result[j].WorkoutDate)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
