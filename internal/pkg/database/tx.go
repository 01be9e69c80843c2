package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrLockTimeout is returned when a row lock could not be acquired within
// the bounded wait. Transient: the caller may retry the whole operation.
var ErrLockTimeout = errors.New("lock wait timed out")

// Bounded wait for row locks. A unit of work never hangs indefinitely on
// a lock held by another in-flight transaction.
const lockWait = "3s"

// pqLockNotAvailable is the Postgres error code raised when lock_timeout expires.
const pqLockNotAvailable = "55P03"

// Transact runs fn inside a single transaction: every locked read and
// write either commits as one or leaves nothing behind. A non-nil error
// from fn rolls everything back before it is returned.
func Transact(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SET LOCAL lock_timeout = '"+lockWait+"'"); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	if err := fn(tx); err != nil {
		return classifyLockError(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", classifyLockError(err))
	}

	return nil
}

func classifyLockError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqLockNotAvailable {
		return fmt.Errorf("%w: %s", ErrLockTimeout, pqErr.Message)
	}
	return err
}
