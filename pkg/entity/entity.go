package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
}

type WorkoutPlan struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *WorkoutPlan) OwnerID() uuid.UUID { return p.UserID }

// Exercise belongs to a plan. Ownership is derived through the plan,
// so PlanOwnerID is only filled by lookups that join workout_plans.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	PlanID      uuid.UUID `json:"plan_id"`
	Name        string    `json:"name"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	Weight      float64   `json:"weight"`
	CreatedAt   time.Time `json:"created_at"`
	PlanOwnerID uuid.UUID `json:"-"`
}

func (e *Exercise) OwnerID() uuid.UUID { return e.PlanOwnerID }

type WorkoutLog struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"uid"`
	PlanID      uuid.UUID      `json:"plan_id"`
	PlanTitle   string         `json:"plan_title,omitempty"`
	WorkoutDate time.Time      `json:"workout_date"`
	Notes       string         `json:"notes,omitempty"`
	Duration    int            `json:"duration"`
	CreatedAt   time.Time      `json:"created_at"`
	Exercises   []*ExerciseLog `json:"exercises"`
}

func (l *WorkoutLog) OwnerID() uuid.UUID { return l.UserID }

// Volume is the sum of sets*reps*weight over the log's exercise results.
func (l *WorkoutLog) Volume() float64 {
	var v float64
	for _, el := range l.Exercises {
		v += el.Volume()
	}
	return v
}

type ExerciseLog struct {
	ID            uuid.UUID `json:"id"`
	LogID         uuid.UUID `json:"log_id"`
	ExerciseID    uuid.UUID `json:"exercise_id"`
	SetsCompleted int       `json:"sets_completed"`
	RepsCompleted int       `json:"reps_completed"`
	WeightUsed    float64   `json:"weight_used"`
	Notes         string    `json:"notes,omitempty"`
}

func (el *ExerciseLog) Volume() float64 {
	return float64(el.SetsCompleted) * float64(el.RepsCompleted) * el.WeightUsed
}

// Owned is anything that transitively belongs to a single user.
type Owned interface {
	OwnerID() uuid.UUID
}

type StatsBucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int       `json:"count"`
}

type Stats struct {
	Total         int           `json:"total"`
	WindowDays    int           `json:"window_days"`
	WindowCount   int           `json:"window_count"`
	Series        []StatsBucket `json:"series"`
	AvgDuration   float64       `json:"avg_duration"`
	TotalDuration int           `json:"total_duration"`
	TotalVolume   float64       `json:"total_volume"`
	TotalPlans    int           `json:"total_plans"`
}
