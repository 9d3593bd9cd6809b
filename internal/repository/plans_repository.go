package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type PlansRepository struct {
	base
}

func NewPlansRepo(conn PgConnection, opts ...Option) *PlansRepository {
	return &PlansRepository{
		base: newBase(conn, opts),
	}
}

func (pr *PlansRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO workout_plans (user_id, title, description) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;`,
		plan.UserID,
		plan.Title,
		plan.Description,
	)
	if err := row.Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return storeError("creating plan", err)
	}
	return nil
}

func (pr *PlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	plan := entity.WorkoutPlan{ID: id}
	row := pr.conn.QueryRow(ctx, `SELECT user_id, title, description, created_at, updated_at FROM workout_plans WHERE id = $1;`, id)
	if err := row.Scan(&plan.UserID, &plan.Title, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlanNotFound
		}
		return nil, storeError("getting plan by id", err)
	}
	return &plan, nil
}

func (pr *PlansRepository) ListByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, title, description, created_at, updated_at
		FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC, id;`, uid)
	if err != nil {
		return nil, storeError("listing plans", err)
	}
	defer rows.Close()
	plans := make([]*entity.WorkoutPlan, 0)
	for rows.Next() {
		p := entity.WorkoutPlan{}
		if err = rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, storeError("scanning plan", err)
		}
		plans = append(plans, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("iterating plans", err)
	}
	return plans, nil
}

func (pr *PlansRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	var count int
	row := pr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM workout_plans WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, storeError("counting plans", err)
	}
	return count, nil
}

func (pr *PlansRepository) Update(ctx context.Context, plan *entity.WorkoutPlan) (int64, error) {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	ct, err := pr.conn.Exec(ctx, `UPDATE workout_plans SET title = $1, description = $2, updated_at = NOW() WHERE id = $3;`,
		plan.Title, plan.Description, plan.ID,
	)
	if err != nil {
		return 0, storeError("updating plan", err)
	}
	if ct.RowsAffected() == 0 {
		return 0, errorvalues.ErrPlanNotFound
	}
	return ct.RowsAffected(), nil
}

func (pr *PlansRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ctx, cancel := pr.withTimeout(ctx)
	defer cancel()
	ct, err := pr.conn.Exec(ctx, `DELETE FROM workout_plans WHERE id = $1;`, id)
	if err != nil {
		return 0, storeError("deleting plan", err)
	}
	if ct.RowsAffected() == 0 {
		return 0, errorvalues.ErrPlanNotFound
	}
	return ct.RowsAffected(), nil
}
