package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exerciseColumns = []string{"id", "plan_id", "name", "sets", "reps", "weight", "created_at"}

func TestCreateExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewExercisesRepo(mock, repository.WithQueryTimeout(time.Second))
	query := regexp.QuoteMeta(`INSERT INTO exercises (plan_id, name, sets, reps, weight) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`)
	ex := entity.Exercise{PlanID: uuid.New(), Name: "Bench Press", Sets: 3, Reps: 8, Weight: 135}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		id, now := uuid.New(), time.Now()
		mock.ExpectQuery(query).
			WithArgs(ex.PlanID, ex.Name, ex.Sets, ex.Reps, ex.Weight).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, now))
		require.NoError(t, repo.Create(ctx, &ex))
		assert.Equal(t, id, ex.ID)
		assert.Equal(t, now, ex.CreatedAt)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ex.PlanID, ex.Name, ex.Sets, ex.Reps, ex.Weight).
			WillReturnError(errors.New("db error"))
		assert.ErrorIs(t, repo.Create(ctx, &ex), errorvalues.ErrInternal)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExerciseByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewExercisesRepo(mock)
	ex := entity.Exercise{
		ID:          uuid.New(),
		PlanID:      uuid.New(),
		Name:        "Bench Press",
		Sets:        3,
		Reps:        8,
		Weight:      135,
		CreatedAt:   time.Now(),
		PlanOwnerID: userID,
	}
	query := regexp.QuoteMeta(`SELECT e.plan_id, e.name, e.sets, e.reps, e.weight, e.created_at, p.user_id
		FROM exercises e JOIN workout_plans p ON p.id = e.plan_id WHERE e.id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ex.ID).
			WillReturnRows(pgxmock.NewRows([]string{"plan_id", "name", "sets", "reps", "weight", "created_at", "user_id"}).
				AddRow(ex.PlanID, ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.CreatedAt, ex.PlanOwnerID))
		result, err := repo.GetByID(ctx, ex.ID)
		require.NoError(t, err)
		assert.Equal(t, ex, *result)
		assert.Equal(t, userID, result.OwnerID())
	})
	t.Run("not found or orphaned", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ex.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, ex.ID)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExercisesByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewExercisesRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, plan_id, name, sets, reps, weight, created_at FROM exercises WHERE id = ANY($1);`)
	now := time.Now()
	first := &entity.Exercise{ID: uuid.New(), PlanID: uuid.New(), Name: "Bench Press", Sets: 3, Reps: 8, Weight: 135, CreatedAt: now}
	second := &entity.Exercise{ID: uuid.New(), PlanID: uuid.New(), Name: "Dips", Sets: 3, Reps: 12, CreatedAt: now}
	ctx := context.Background()
	t.Run("empty ids skip query", func(t *testing.T) {
		result, err := repo.GetByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("success", func(t *testing.T) {
		ids := []uuid.UUID{first.ID, second.ID, uuid.New()}
		mock.ExpectQuery(query).WithArgs(ids).
			WillReturnRows(pgxmock.NewRows(exerciseColumns).
				AddRow(first.ID, first.PlanID, first.Name, first.Sets, first.Reps, first.Weight, first.CreatedAt).
				AddRow(second.ID, second.PlanID, second.Name, second.Sets, second.Reps, second.Weight, second.CreatedAt))
		result, err := repo.GetByIDs(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, []*entity.Exercise{first, second}, result)
	})
	t.Run("db error", func(t *testing.T) {
		ids := []uuid.UUID{first.ID}
		mock.ExpectQuery(query).WithArgs(ids).WillReturnError(errors.New("db error"))
		_, err := repo.GetByIDs(ctx, ids)
		assert.ErrorIs(t, err, errorvalues.ErrInternal)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExercisesByPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewExercisesRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, plan_id, name, sets, reps, weight, created_at
		FROM exercises WHERE plan_id = $1 ORDER BY created_at, id;`)
	planID := uuid.New()
	now := time.Now()
	exercises := []*entity.Exercise{
		{ID: uuid.New(), PlanID: planID, Name: "Bench Press", Sets: 3, Reps: 8, Weight: 135, CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), PlanID: planID, Name: "Dips", Sets: 3, Reps: 12, CreatedAt: now},
	}
	rows := pgxmock.NewRows(exerciseColumns)
	for _, ex := range exercises {
		rows.AddRow(ex.ID, ex.PlanID, ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.CreatedAt)
	}
	mock.ExpectQuery(query).WithArgs(planID).WillReturnRows(rows)
	result, err := repo.ListByPlanID(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, exercises, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteExercise(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewExercisesRepo(mock)
	ex := entity.Exercise{ID: uuid.New(), Name: "Incline Press", Sets: 4, Reps: 10, Weight: 95}
	update := regexp.QuoteMeta(`UPDATE exercises SET name = $1, sets = $2, reps = $3, weight = $4 WHERE id = $5;`)
	del := regexp.QuoteMeta(`DELETE FROM exercises WHERE id = $1;`)
	ctx := context.Background()
	t.Run("update", func(t *testing.T) {
		mock.ExpectExec(update).WithArgs(ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		count, err := repo.Update(ctx, &ex)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
	t.Run("update not found", func(t *testing.T) {
		mock.ExpectExec(update).WithArgs(ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		_, err := repo.Update(ctx, &ex)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(del).WithArgs(ex.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		count, err := repo.Delete(ctx, ex.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
	t.Run("delete db error", func(t *testing.T) {
		mock.ExpectExec(del).WithArgs(ex.ID).WillReturnError(errors.New("db error"))
		_, err := repo.Delete(ctx, ex.ID)
		assert.ErrorIs(t, err, errorvalues.ErrInternal)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
