package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Fills user's ID
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type PlansRepositoryI interface {
	// Creates new plan. UserID and Title are necessary, ID and timestamps are filled
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	// Searches plan with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)
	// Lists plans owned by uid, newest first
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Replaces title and description of plan.ID
	Update(ctx context.Context, plan *entity.WorkoutPlan) (int64, error)
	// Deletes plan only. Its exercises are kept
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type ExercisesRepositoryI interface {
	// Creates exercise in plan. ID and CreatedAt are filled
	Create(ctx context.Context, exercise *entity.Exercise) error
	// Searches exercise joined with its plan, PlanOwnerID is filled.
	// Exercises of deleted plans are not found
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Returns exercises that exist among ids, no ownership info
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error)
	// Lists exercises of plan in creation order
	ListByPlanID(ctx context.Context, planID uuid.UUID) ([]*entity.Exercise, error)
	Update(ctx context.Context, exercise *entity.Exercise) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type WorkoutLogsRepositoryI interface {
	// Inserts log and all of its exercise logs in one transaction.
	// IDs and CreatedAt are filled on success only
	CreateWithExercises(ctx context.Context, log *entity.WorkoutLog) error
	// Returns hydrated log
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error)
	// Returns hydrated logs of uid, latest workout first
	ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutLog, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(pgcfg.Username, pgcfg.Password),
		Host:   pgcfg.Address,
		Path:   "/" + pgcfg.DB,
	}
	if pgcfg.SSLMode != "" {
		u.RawQuery = fmt.Sprintf("sslmode=%s", url.QueryEscape(pgcfg.SSLMode))
	}
	return u.String()
}
