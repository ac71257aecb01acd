package postgres

import (
	"context"
	"testing"

	"kennel/internal/domain/entity"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockUserRepository opens a gorm handle over a sqlmock connection with the
// same session settings as the production handle (no implicit per-statement
// transaction).
func newMockUserRepository(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestUserRepository_Delete_DetachAndDeleteShareOneTransaction(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dogs" SET "owner_id"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_RollsBackWhenDeleteFails(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dogs" SET "owner_id"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 7)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet(), "detached dogs must not be committed when the delete fails")
}

func TestUserRepository_Delete_MissingUserRollsBack(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "dogs" SET "owner_id"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmailMapsToConflict(t *testing.T) {
	repo, mock := newMockUserRepository(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.User{
		Name:         "alice",
		LastName:     "smith",
		Email:        "alice@example.com",
		PasswordHash: "$hashed$",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	require.NoError(t, mock.ExpectationsWereMet())
}
