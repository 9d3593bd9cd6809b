package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertLogQuery      = regexp.QuoteMeta(`INSERT INTO workout_logs (user_id, plan_id, workout_date, notes, duration) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`)
	insertChildQuery    = regexp.QuoteMeta(`INSERT INTO exercise_logs (log_id, exercise_id, sets_completed, reps_completed, weight_used, notes, position) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`)
	hydratedLogsColumns = []string{
		"id", "user_id", "plan_id", "title", "workout_date", "notes", "duration", "created_at",
		"el_id", "exercise_id", "sets_completed", "reps_completed", "weight_used", "el_notes",
	}
)

func newWorkoutLog() *entity.WorkoutLog {
	return &entity.WorkoutLog{
		UserID:      userID,
		PlanID:      uuid.New(),
		WorkoutDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Notes:       "felt strong",
		Duration:    60,
		Exercises: []*entity.ExerciseLog{
			{ExerciseID: uuid.New(), SetsCompleted: 3, RepsCompleted: 8, WeightUsed: 135},
			{ExerciseID: uuid.New(), SetsCompleted: 3, RepsCompleted: 12, Notes: "bodyweight"},
		},
	}
}

func TestCreateWorkoutLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutLogsRepo(mock)
	ctx := context.Background()

	t.Run("committed with children", func(t *testing.T) {
		wl := newWorkoutLog()
		logID, childA, childB, now := uuid.New(), uuid.New(), uuid.New(), time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(logID, now))
		mock.ExpectQuery(insertChildQuery).
			WithArgs(logID, wl.Exercises[0].ExerciseID, 3, 8, 135.0, "", 0).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(childA))
		mock.ExpectQuery(insertChildQuery).
			WithArgs(logID, wl.Exercises[1].ExerciseID, 3, 12, 0.0, "bodyweight", 1).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(childB))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateWithExercises(ctx, wl))
		assert.Equal(t, logID, wl.ID)
		assert.Equal(t, now, wl.CreatedAt)
		assert.Equal(t, childA, wl.Exercises[0].ID)
		assert.Equal(t, childB, wl.Exercises[1].ID)
		assert.Equal(t, logID, wl.Exercises[1].LogID)
	})
	t.Run("no children", func(t *testing.T) {
		wl := newWorkoutLog()
		wl.Exercises = []*entity.ExerciseLog{}
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		mock.ExpectCommit()
		require.NoError(t, repo.CreateWithExercises(ctx, wl))
		assert.NotEqual(t, uuid.Nil, wl.ID)
	})
	t.Run("child insert fails and rolls back", func(t *testing.T) {
		wl := newWorkoutLog()
		logID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(logID, time.Now()))
		mock.ExpectQuery(insertChildQuery).
			WithArgs(logID, wl.Exercises[0].ExerciseID, 3, 8, 135.0, "", 0).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err := repo.CreateWithExercises(ctx, wl)
		assert.ErrorIs(t, err, errorvalues.ErrInternal)
		assert.Equal(t, uuid.Nil, wl.ID)
		assert.Equal(t, uuid.Nil, wl.Exercises[0].ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		wl := newWorkoutLog()
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		assert.ErrorIs(t, repo.CreateWithExercises(ctx, wl), errorvalues.ErrUserNotFound)
	})
	t.Run("rollback error is kept", func(t *testing.T) {
		wl := newWorkoutLog()
		rbErr := errors.New("connection lost")
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnError(context.DeadlineExceeded)
		mock.ExpectRollback().WillReturnError(rbErr)
		err := repo.CreateWithExercises(ctx, wl)
		assert.ErrorIs(t, err, errorvalues.ErrTimeout)
		assert.ErrorIs(t, err, rbErr)
	})
	t.Run("begin fails", func(t *testing.T) {
		wl := newWorkoutLog()
		mock.ExpectBegin().WillReturnError(errors.New("pool closed"))
		assert.ErrorIs(t, repo.CreateWithExercises(ctx, wl), errorvalues.ErrInternal)
	})
	t.Run("commit fails", func(t *testing.T) {
		wl := newWorkoutLog()
		wl.Exercises = nil
		mock.ExpectBegin()
		mock.ExpectQuery(insertLogQuery).
			WithArgs(wl.UserID, wl.PlanID, wl.WorkoutDate, wl.Notes, wl.Duration).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
		assert.ErrorIs(t, repo.CreateWithExercises(ctx, wl), errorvalues.ErrInternal)
		assert.Equal(t, uuid.Nil, wl.ID)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWorkoutLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutLogsRepo(mock)
	query := regexp.QuoteMeta(`WHERE l.user_id = $1
ORDER BY l.workout_date DESC, l.created_at DESC, l.id, el.position;`)
	ctx := context.Background()

	planID := uuid.New()
	newer := &entity.WorkoutLog{
		ID: uuid.New(), UserID: userID, PlanID: planID, PlanTitle: "Push Day",
		WorkoutDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Duration: 60, CreatedAt: time.Now(),
	}
	newer.Exercises = []*entity.ExerciseLog{
		{ID: uuid.New(), LogID: newer.ID, ExerciseID: uuid.New(), SetsCompleted: 3, RepsCompleted: 8, WeightUsed: 135},
		{ID: uuid.New(), LogID: newer.ID, ExerciseID: uuid.New(), SetsCompleted: 3, RepsCompleted: 12, Notes: "slow"},
	}
	// plan deleted since, no exercise results
	older := &entity.WorkoutLog{
		ID: uuid.New(), UserID: userID, PlanID: uuid.New(),
		WorkoutDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Notes: "short", Duration: 20, CreatedAt: time.Now(),
		Exercises: []*entity.ExerciseLog{},
	}

	t.Run("hydrated", func(t *testing.T) {
		rows := pgxmock.NewRows(hydratedLogsColumns)
		for _, el := range newer.Exercises {
			rows.AddRow(newer.ID, newer.UserID, newer.PlanID, newer.PlanTitle, newer.WorkoutDate, newer.Notes, newer.Duration, newer.CreatedAt,
				uuid.NullUUID{UUID: el.ID, Valid: true}, uuid.NullUUID{UUID: el.ExerciseID, Valid: true},
				el.SetsCompleted, el.RepsCompleted, el.WeightUsed, el.Notes)
		}
		rows.AddRow(older.ID, older.UserID, older.PlanID, "", older.WorkoutDate, older.Notes, older.Duration, older.CreatedAt,
			nil, nil, 0, 0, 0.0, "")
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		result, err := repo.ListByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []*entity.WorkoutLog{newer, older}, result)
		assert.Equal(t, float64(3*8*135), result[0].Volume())
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(hydratedLogsColumns))
		result, err := repo.ListByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("timeout", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(context.DeadlineExceeded)
		_, err := repo.ListByUserID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrTimeout)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWorkoutLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWorkoutLogsRepo(mock)
	query := regexp.QuoteMeta(`WHERE l.id = $1
ORDER BY el.position;`)
	ctx := context.Background()
	logID := uuid.New()

	t.Run("found", func(t *testing.T) {
		date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(query).WithArgs(logID).
			WillReturnRows(pgxmock.NewRows(hydratedLogsColumns).
				AddRow(logID, userID, uuid.New(), "Push Day", date, "", 45, time.Now(), nil, nil, 0, 0, 0.0, ""))
		result, err := repo.GetByID(ctx, logID)
		require.NoError(t, err)
		assert.Equal(t, logID, result.ID)
		assert.Equal(t, userID, result.OwnerID())
		assert.Equal(t, 45, result.Duration)
		assert.Empty(t, result.Exercises)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(logID).WillReturnRows(pgxmock.NewRows(hydratedLogsColumns))
		_, err := repo.GetByID(ctx, logID)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
