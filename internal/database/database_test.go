package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockService wires a service to a sqlmock connection and checks expectations on cleanup.
func newMockService(t *testing.T) (*service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &service{db: db}, mock
}

var fixedTime = time.Date(2049, time.December, 25, 21, 30, 0, 0, time.UTC)

func TestHealthUp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	s := &service{db: db}
	stats := s.Health()
	assert.Equal(t, "up", stats["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	s := &service{db: db}
	stats := s.Health()
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "connection refused")
}

func TestClassify(t *testing.T) {
	err := classify(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
	assert.ErrorIs(t, err, ErrValidation)

	err = classify(&pgconn.PgError{Code: foreignKeyViolation})
	assert.ErrorIs(t, err, ErrValidation)

	plain := errors.New("driver: bad connection")
	assert.Same(t, plain, classify(plain))
}

func TestValidationErrorUnwrap(t *testing.T) {
	cause := &pgconn.PgError{Code: uniqueViolation}
	err := &ValidationError{Reason: "duplicate value", Err: cause}

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "duplicate value", err.Error())
	assert.Equal(t, "userId: user does not exist", (&ValidationError{Field: "userId", Reason: "user does not exist"}).Error())
}

func TestSetList(t *testing.T) {
	var l setList
	assert.True(t, l.empty())

	l.add("status", "cancelled")
	l.add("duration", 90)

	assert.False(t, l.empty())
	assert.Equal(t, []string{"status = $1", "duration = $2"}, l.cols)
	assert.Equal(t, []any{"cancelled", 90}, l.args)
}

func TestRemoveFavorite_Idempotent(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectExec("DELETE FROM favorites WHERE user_id = \\$1 AND item_type = \\$2 AND item_id = \\$3").
		WithArgs(1, "constellation", "Orion").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(1, "constellation", "Orion").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := s.RemoveFavorite(context.Background(), 1, "constellation", "Orion")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveFavorite(context.Background(), 1, "constellation", "Orion")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveFavorite_StoreError(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectExec("DELETE FROM favorites").
		WillReturnError(errors.New("conn reset"))

	removed, err := s.RemoveFavorite(context.Background(), 1, "event", "7")
	assert.Error(t, err)
	assert.False(t, removed)
}
