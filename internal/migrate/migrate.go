package migrate

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"go.uber.org/multierr"
)

// Up applies every pending migration from dir. goose works on database/sql,
// so a short lived lib/pq connection is opened for it.
func Up(connString, dir string) (err error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return fmt.Errorf("opening migrations connection: %w", err)
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
