package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostgres(db)
	entry := Entry{
		RequestID: "req-1",
		Outcome:   "accepted",
		Detail:    "",
		FileCount: 2,
		CreatedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	t.Run("inserts one row", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO submission_audit").
			WithArgs(entry.RequestID, entry.Outcome, entry.Detail, entry.FileCount, entry.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := r.Record(context.Background(), entry)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates db errors", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO submission_audit").
			WillReturnError(errors.New("db down"))

		err := r.Record(context.Background(), entry)
		assert.Error(t, err)
	})
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-9")
	assert.Equal(t, "req-9", RequestIDFrom(ctx))
}
