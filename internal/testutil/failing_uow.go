package testutil

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alexanderramin/trackflow/internal/db"
)

// FailOnNthExecUoW commits like the real UnitOfWork but makes the FailOn-th
// write (counted from 1) inside each transaction return Err. Reads are not
// counted. Schedule saves are a delete pass followed by inserts, so FailOn
// picks which row of the save breaks.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Writes counts the writes attempted by the last transaction.
	Writes int
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	counting := &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	fnErr := fn(ctx, counting)
	u.Writes = counting.writes
	if fnErr != nil {
		return errors.Join(fnErr, ignoreTxDone(tx.Rollback()))
	}
	return tx.Commit()
}

type countingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.writes++
	if c.writes == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}

func ignoreTxDone(err error) error {
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
