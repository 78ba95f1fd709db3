package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminChecker_PrimaryAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	checker := NewAdminChecker(db, 42)

	// The static id short-circuits, no query expected.
	assert.True(t, checker.IsAdmin(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminChecker_AllowList(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		want   bool
	}{
		{"listed id is admin", true, true},
		{"unlisted id is not", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM admins WHERE tg_id = $1)`)).
				WithArgs(int64(777)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			checker := NewAdminChecker(db, 42)

			assert.Equal(t, tt.want, checker.IsAdmin(context.Background(), 777))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminChecker_FailsClosedOnStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(int64(777)).
		WillReturnError(errors.New("connection refused"))

	checker := NewAdminChecker(db, 42)

	assert.False(t, checker.IsAdmin(context.Background(), 777))
}
