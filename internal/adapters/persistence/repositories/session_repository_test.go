package repositories

import (
	"context"
	"testing"
	"time"

	"ems-gateway/internal/adapters/persistence/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func sessionRows(s *models.Session) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "role", "token_sealed", "user_data", "created_at", "last_seen_at", "expires_at"}).
		AddRow(s.ID, s.Role, s.TokenSealed, s.UserData, s.CreatedAt, s.LastSeenAt, s.ExpiresAt)
}

func TestSessionRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec("INSERT INTO `sessions`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Session{
		ID:          "11111111-1111-1111-1111-111111111111",
		Role:        "ADMIN",
		TokenSealed: "sealed",
		LastSeenAt:  time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	want := &models.Session{
		ID:          "11111111-1111-1111-1111-111111111111",
		Role:        "HR",
		TokenSealed: "sealed",
		UserData:    `{"username":"hr1"}`,
		CreatedAt:   time.Now().Add(-time.Hour),
		LastSeenAt:  time.Now(),
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	mock.ExpectQuery("SELECT \\* FROM `sessions` WHERE id = \\? AND expires_at > \\?").
		WithArgs(want.ID, sqlmock.AnyArg()).
		WillReturnRows(sessionRows(want))

	got, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "HR", got.Role)
	assert.Equal(t, "sealed", got.TokenSealed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryGetByIDExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	// the expiry predicate filters the row out, the repo reports not-found
	mock.ExpectQuery("SELECT \\* FROM `sessions` WHERE id = \\? AND expires_at > \\?").
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), "gone")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryTouch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec("UPDATE `sessions` SET `last_seen_at`=\\? WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Touch(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec("DELETE FROM `sessions` WHERE id = \\?").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec("DELETE FROM `sessions` WHERE expires_at < \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCountActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `sessions` WHERE expires_at > \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(7)))

	n, err := repo.CountActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
