package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PlanRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

type ExerciseRequest struct {
	Name string `validate:"required,max=200"`
	Sets int    `validate:"min=1,max=1000"`
	Reps int    `validate:"min=1,max=1000"`
	// nil means no weight
	Weight *float64 `validate:"omitempty,finite,min=0,max=10000"`
}

type ExerciseResult struct {
	ExerciseID    uuid.UUID `validate:"required"`
	SetsCompleted int       `validate:"min=0,max=1000"`
	RepsCompleted int       `validate:"min=0,max=1000"`
	WeightUsed    *float64  `validate:"omitempty,finite,min=0,max=10000"`
	Notes         string    `validate:"max=2000"`
}

type RecordWorkoutRequest struct {
	PlanID uuid.UUID
	// Only the calendar day is kept
	Date      time.Time
	Notes     string           `validate:"max=2000"`
	Duration  *int             `validate:"omitempty,min=0,max=1440"`
	Exercises []ExerciseResult `validate:"dive"`
}

type BucketKind string

const (
	BucketDay   BucketKind = "day"
	BucketWeek  BucketKind = "week"
	BucketMonth BucketKind = "month"
)

// StatsOptions zero values are replaced by service defaults.
type StatsOptions struct {
	WindowDays int        `validate:"min=0,max=366"`
	Buckets    int        `validate:"min=0,max=104"`
	Bucket     BucketKind `validate:"omitempty,oneof=day week month"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}

type PlansServiceI interface {
	CreatePlan(ctx context.Context, uid uuid.UUID, req *PlanRequest) (*entity.WorkoutPlan, error)
	// Lists caller's plans, newest first
	ListPlans(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	GetPlan(ctx context.Context, uid, planID uuid.UUID) (*entity.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, uid, planID uuid.UUID, req *PlanRequest) (int64, error)
	// Deletes the plan only, its exercises stay in store
	DeletePlan(ctx context.Context, uid, planID uuid.UUID) (int64, error)
	CreateExercise(ctx context.Context, uid, planID uuid.UUID, req *ExerciseRequest) (*entity.Exercise, error)
	// Lists plan's exercises in creation order
	ListExercises(ctx context.Context, uid, planID uuid.UUID) ([]*entity.Exercise, error)
	UpdateExercise(ctx context.Context, uid, exerciseID uuid.UUID, req *ExerciseRequest) (int64, error)
	DeleteExercise(ctx context.Context, uid, exerciseID uuid.UUID) (int64, error)
}

type WorkoutLogsServiceI interface {
	// Stores log with its exercise results atomically. Returns hydrated log
	RecordWorkout(ctx context.Context, uid uuid.UUID, req *RecordWorkoutRequest) (*entity.WorkoutLog, error)
	// Lists caller's logs, latest workout first
	ListLogs(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutLog, error)
	GetLog(ctx context.Context, uid, logID uuid.UUID) (*entity.WorkoutLog, error)
}

type StatsServiceI interface {
	GetStats(ctx context.Context, uid uuid.UUID, opts StatsOptions) (*entity.Stats, error)
}

// WorkoutObserver is notified about recording outcomes.
type WorkoutObserver interface {
	WorkoutRecorded(exercises int)
	WorkoutRejected(reason string)
}

type nopObserver struct{}

func (nopObserver) WorkoutRecorded(int)    {}
func (nopObserver) WorkoutRejected(string) {}
