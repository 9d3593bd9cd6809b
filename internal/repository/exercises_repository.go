package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type ExercisesRepository struct {
	base
}

func NewExercisesRepo(conn PgConnection, opts ...Option) *ExercisesRepository {
	return &ExercisesRepository{
		base: newBase(conn, opts),
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) error {
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	row := er.conn.QueryRow(ctx,
		`INSERT INTO exercises (plan_id, name, sets, reps, weight) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		exercise.PlanID,
		exercise.Name,
		exercise.Sets,
		exercise.Reps,
		exercise.Weight,
	)
	if err := row.Scan(&exercise.ID, &exercise.CreatedAt); err != nil {
		return storeError("creating exercise", err)
	}
	return nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	ex := entity.Exercise{ID: id}
	row := er.conn.QueryRow(ctx, `SELECT e.plan_id, e.name, e.sets, e.reps, e.weight, e.created_at, p.user_id
		FROM exercises e JOIN workout_plans p ON p.id = e.plan_id WHERE e.id = $1;`, id)
	if err := row.Scan(&ex.PlanID, &ex.Name, &ex.Sets, &ex.Reps, &ex.Weight, &ex.CreatedAt, &ex.PlanOwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, storeError("getting exercise by id", err)
	}
	return &ex, nil
}

func (er *ExercisesRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error) {
	exercises := make([]*entity.Exercise, 0, len(ids))
	if len(ids) == 0 {
		return exercises, nil
	}
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	rows, err := er.conn.Query(ctx, `SELECT id, plan_id, name, sets, reps, weight, created_at FROM exercises WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, storeError("getting exercises by ids", err)
	}
	defer rows.Close()
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("iterating exercises", err)
	}
	return exercises, nil
}

func (er *ExercisesRepository) ListByPlanID(ctx context.Context, planID uuid.UUID) ([]*entity.Exercise, error) {
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	rows, err := er.conn.Query(ctx, `SELECT id, plan_id, name, sets, reps, weight, created_at
		FROM exercises WHERE plan_id = $1 ORDER BY created_at, id;`, planID)
	if err != nil {
		return nil, storeError("listing exercises", err)
	}
	defer rows.Close()
	exercises := make([]*entity.Exercise, 0)
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("iterating exercises", err)
	}
	return exercises, nil
}

func (er *ExercisesRepository) Update(ctx context.Context, exercise *entity.Exercise) (int64, error) {
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	ct, err := er.conn.Exec(ctx, `UPDATE exercises SET name = $1, sets = $2, reps = $3, weight = $4 WHERE id = $5;`,
		exercise.Name, exercise.Sets, exercise.Reps, exercise.Weight, exercise.ID,
	)
	if err != nil {
		return 0, storeError("updating exercise", err)
	}
	if ct.RowsAffected() == 0 {
		return 0, errorvalues.ErrExerciseNotFound
	}
	return ct.RowsAffected(), nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := er.withTimeout(ctx)
	defer cancel()
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		return 0, storeError("deleting exercise", err)
	}
	if ct.RowsAffected() == 0 {
		return 0, errorvalues.ErrExerciseNotFound
	}
	return ct.RowsAffected(), nil
}

func scanExercise(rows pgx.Rows) (*entity.Exercise, error) {
	ex := entity.Exercise{}
	if err := rows.Scan(&ex.ID, &ex.PlanID, &ex.Name, &ex.Sets, &ex.Reps, &ex.Weight, &ex.CreatedAt); err != nil {
		return nil, storeError("scanning exercise", err)
	}
	return &ex, nil
}
