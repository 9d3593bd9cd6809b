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

type UsersRepository struct {
	base
}

func NewUsersRepo(conn PgConnection, opts ...Option) *UsersRepository {
	return &UsersRepository{
		base: newBase(conn, opts),
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	ctx, cancel := ur.withTimeout(ctx)
	defer cancel()
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id;`, user.Name, user.PasswordHash)
	if err := row.Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return storeError("creating user", err)
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	ctx, cancel := ur.withTimeout(ctx)
	defer cancel()
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storeError("searching user by name", err)
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	ctx, cancel := ur.withTimeout(ctx)
	defer cancel()
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storeError("searching user by id", err)
	}
	return &user, nil
}
