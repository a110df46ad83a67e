package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestSeedDemo_CreatesUserAndCategories(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs(DemoEmail).
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `categorias`").
		WillReturnResult(sqlmock.NewResult(1, 5))
	mock.ExpectCommit()

	require.NoError(t, SeedDemo(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDemo_SkipsWhenUserExists(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs(DemoEmail).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "senha", "data_criacao"}).
			AddRow(1, "Usuário Demo", DemoEmail, "hash", time.Now()))

	require.NoError(t, SeedDemo(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDemo_RollsBackOnCategoryFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs(DemoEmail).
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `categorias`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := SeedDemo(db)
	assert.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}
