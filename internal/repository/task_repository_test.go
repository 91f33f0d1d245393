package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DaveedGangi/taskmanagerBackend/internal/models"
)

// setupMockDB opens GORM over a sqlmock connection so the emitted SQL
// can be asserted directly. The default transaction wrapper is skipped
// since the repository issues single statements only.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(1, "alice", "$2a$10$digest")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(rows)

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "alice", user.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsernameNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	_, err := repo.FindByUsername("ghost")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_UpdateZeroRowsIsSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(9999, map[string]interface{}{
		"title":      "ghost",
		"status":     models.TaskStatusPending,
		"updated_by": uint64(1),
	})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_DeleteZeroRowsIsSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec(`DELETE FROM "tasks"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(9999))

	require.NoError(t, mock.ExpectationsWereMet())
}
