package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Store is the data-access layer. Every operation is scoped to an owning
// user id that must come from the verified session, never from request
// input, and every statement is parameterized.
type Store struct {
	db *sqlx.DB
}

// New wraps an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Queries exposes the data-access operations outside a transaction.
func (s *Store) Queries() *Queries {
	return &Queries{ext: s.db}
}

// Queries runs data-access operations against either the root handle or an
// open transaction.
type Queries struct {
	ext sqlx.ExtContext
}

// InTx runs fn inside a single transaction, committing on a nil return and
// rolling back otherwise. A transaction that fails because the database is
// busy is retried once.
func (s *Store) InTx(ctx context.Context, fn func(q *Queries) error) error {
	err := s.runTx(ctx, fn)
	if err != nil && isBusy(err) {
		err = s.runTx(ctx, fn)
	}
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&Queries{ext: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func isBusy(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && (se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked)
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) &&
		(se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}

func isForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
