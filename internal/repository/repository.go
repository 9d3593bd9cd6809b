package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

const DefaultQueryTimeout = 5 * time.Second

type Option func(*base)

// WithQueryTimeout bounds every statement issued by a repository.
func WithQueryTimeout(d time.Duration) Option {
	return func(b *base) {
		if d > 0 {
			b.timeout = d
		}
	}
}

type base struct {
	conn    PgConnection
	timeout time.Duration
}

func newBase(conn PgConnection, opts []Option) base {
	b := base{
		conn:    conn,
		timeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// storeError classifies a driver error that has no domain meaning.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return fmt.Errorf("%s: %w", op, errorvalues.ErrTimeout)
	// query_canceled, raised by statement_timeout
	case errors.As(err, &pgErr) && pgErr.Code == "57014":
		return fmt.Errorf("%s: %w", op, errorvalues.ErrTimeout)
	}
	return fmt.Errorf("%s: %w: %s", op, errorvalues.ErrInternal, err.Error())
}
