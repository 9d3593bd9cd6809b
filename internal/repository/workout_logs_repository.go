package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
	"go.uber.org/multierr"
)

const (
	insertWorkoutLogQuery = `INSERT INTO workout_logs (user_id, plan_id, workout_date, notes, duration) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`

	insertExerciseLogQuery = `INSERT INTO exercise_logs (log_id, exercise_id, sets_completed, reps_completed, weight_used, notes, position) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`

	// One statement reads logs together with their children, so a log is
	// never seen without the exercise logs committed with it.
	selectHydratedLogsQuery = `SELECT l.id, l.user_id, l.plan_id, COALESCE(p.title, ''), l.workout_date, l.notes, l.duration, l.created_at,
	el.id, el.exercise_id, COALESCE(el.sets_completed, 0), COALESCE(el.reps_completed, 0), COALESCE(el.weight_used, 0), COALESCE(el.notes, '')
FROM workout_logs l
LEFT JOIN workout_plans p ON p.id = l.plan_id
LEFT JOIN exercise_logs el ON el.log_id = l.id
`
	listLogsByUserQuery = selectHydratedLogsQuery + `WHERE l.user_id = $1
ORDER BY l.workout_date DESC, l.created_at DESC, l.id, el.position;`

	getLogByIDQuery = selectHydratedLogsQuery + `WHERE l.id = $1
ORDER BY el.position;`
)

type WorkoutLogsRepository struct {
	base
}

func NewWorkoutLogsRepo(conn PgConnection, opts ...Option) *WorkoutLogsRepository {
	return &WorkoutLogsRepository{
		base: newBase(conn, opts),
	}
}

func (lr *WorkoutLogsRepository) CreateWithExercises(ctx context.Context, wl *entity.WorkoutLog) (err error) {
	ctx, cancel := lr.withTimeout(ctx)
	defer cancel()
	tx, err := lr.conn.Begin(ctx)
	if err != nil {
		return storeError("beginning transaction", err)
	}
	pending := true
	defer func() {
		if !pending {
			return
		}
		// ctx may already be expired here
		rbCtx, rbCancel := context.WithTimeout(context.Background(), lr.timeout)
		defer rbCancel()
		if rbErr := tx.Rollback(rbCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	var (
		logID     uuid.UUID
		createdAt time.Time
	)
	row := tx.QueryRow(ctx, insertWorkoutLogQuery, wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration)
	if err = row.Scan(&logID, &createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return storeError("creating workout log", err)
	}
	childIDs := make([]uuid.UUID, len(wl.Exercises))
	for i, el := range wl.Exercises {
		row = tx.QueryRow(ctx, insertExerciseLogQuery,
			logID,
			el.ExerciseID,
			el.SetsCompleted,
			el.RepsCompleted,
			el.WeightUsed,
			el.Notes,
			i,
		)
		if err = row.Scan(&childIDs[i]); err != nil {
			return storeError("creating exercise log", err)
		}
	}
	// a failed commit rolls the transaction back by itself
	pending = false
	if err = tx.Commit(ctx); err != nil {
		return storeError("committing workout log", err)
	}

	wl.ID = logID
	wl.CreatedAt = createdAt
	for i, el := range wl.Exercises {
		el.ID = childIDs[i]
		el.LogID = logID
	}
	return nil
}

func (lr *WorkoutLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error) {
	logs, err := lr.queryHydrated(ctx, "getting workout log", getLogByIDQuery, id)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, errorvalues.ErrLogNotFound
	}
	return logs[0], nil
}

func (lr *WorkoutLogsRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutLog, error) {
	return lr.queryHydrated(ctx, "listing workout logs", listLogsByUserQuery, uid)
}

func (lr *WorkoutLogsRepository) queryHydrated(ctx context.Context, op, query string, arg uuid.UUID) ([]*entity.WorkoutLog, error) {
	ctx, cancel := lr.withTimeout(ctx)
	defer cancel()
	rows, err := lr.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	logs := make([]*entity.WorkoutLog, 0)
	byID := make(map[uuid.UUID]*entity.WorkoutLog)
	for rows.Next() {
		var (
			l          entity.WorkoutLog
			el         entity.ExerciseLog
			childID    uuid.NullUUID
			exerciseID uuid.NullUUID
		)
		err = rows.Scan(
			&l.ID, &l.UserID, &l.PlanID, &l.PlanTitle, &l.WorkoutDate, &l.Notes, &l.Duration, &l.CreatedAt,
			&childID, &exerciseID, &el.SetsCompleted, &el.RepsCompleted, &el.WeightUsed, &el.Notes,
		)
		if err != nil {
			return nil, storeError(op, err)
		}
		current, ok := byID[l.ID]
		if !ok {
			l.Exercises = make([]*entity.ExerciseLog, 0)
			current = &l
			byID[l.ID] = current
			logs = append(logs, current)
		}
		if childID.Valid {
			el.ID = childID.UUID
			el.LogID = current.ID
			el.ExerciseID = exerciseID.UUID
			current.Exercises = append(current.Exercises, &el)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return logs, nil
}
