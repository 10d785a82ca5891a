package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var cols = []string{"id", "user_id", "amount", "category", "description", "currency", "created_at"}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `(?s)^INSERT\s+INTO\s+expenses\s*\(user_id,\s*amount,\s*category,\s*description,\s*currency\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at$`

	mock.ExpectQuery(q).
		WithArgs("u1", 12.5, "food", "lunch", "USD").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("e1", time.Now()))

	got, err := repo.Create(context.Background(), &models.Expense{UserID: "u1", Amount: 12.5, Category: "food", Description: "lunch", Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)

	mock.ExpectQuery(q).WillReturnError(errors.New("check violation"))
	_, err = repo.Create(context.Background(), &models.Expense{UserID: "u1", Amount: -1})
	assert.ErrorContains(t, err, "db error: check violation")
}

func TestList_AllAndSince(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)FROM\s+expenses\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("e2", "u1", 20.0, "bills", "power", "USD", now).
			AddRow("e1", "u1", 5.0, "food", "tea", "USD", now.Add(-time.Hour)))

	all, err := repo.List(context.Background(), "u1", time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 20.0, all[0].Amount)

	since := now.AddDate(0, 0, -7)
	mock.ExpectQuery(`(?s)WHERE\s+user_id\s*=\s*\$1\s+AND\s+created_at\s*>=\s*\$2\s+ORDER\s+BY\s+created_at\s+DESC$`).
		WithArgs("u1", since).
		WillReturnRows(sqlmock.NewRows(cols))

	week, err := repo.List(context.Background(), "u1", since)
	require.NoError(t, err)
	assert.Empty(t, week)
	require.NoError(t, mock.ExpectationsWereMet())
}
