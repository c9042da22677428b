package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvpss-crew-backend/internal/logger"
)

func TestWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := withTx(ctx, db, readOnly, func(tx *sql.Tx) error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := withTx(ctx, db, nil, func(tx *sql.Tx) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("RollbackOnPanic", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = withTx(ctx, db, nil, func(tx *sql.Tx) error {
				panic("boom")
			})
		})
	})

	t.Run("BeginFails", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(assert.AnError)

		called := false
		err := withTx(ctx, db, nil, func(tx *sql.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, called)
	})

	t.Run("CommitFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(assert.AnError)

		err := withTx(ctx, db, nil, func(tx *sql.Tx) error {
			return nil
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("CommitFailsIsNotReportedAsRollback", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitializeWriter(&buf, "debug", "text")
		t.Cleanup(func() { logger.Initialize("info", "text") })

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(assert.AnError)

		err := withTx(ctx, db, nil, func(tx *sql.Tx) error {
			return nil
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, buf.String(), "outcome=commit")
		assert.NotContains(t, buf.String(), "outcome=rollback")
		assert.NotContains(t, buf.String(), sql.ErrTxDone.Error())
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
