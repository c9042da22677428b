package postgres

import (
	"context"
	"database/sql"

	"tvpss-crew-backend/internal/logger"
)

var readOnly = &sql.TxOptions{ReadOnly: true}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on error or panic. A failed commit is reported
// as is; the driver has already ended the transaction.
func withTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committing := false
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			logger.TxFinished(ctx, "rollback", nil)
			panic(p)
		}
		if err == nil || committing {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.TxFinished(ctx, "rollback", rbErr)
			return
		}
		logger.TxFinished(ctx, "rollback", nil)
	}()

	if err = fn(tx); err != nil {
		return err
	}

	committing = true
	if err = tx.Commit(); err != nil {
		logger.TxFinished(ctx, "commit", err)
		return err
	}
	logger.TxFinished(ctx, "commit", nil)
	return nil
}
