package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"warbler/models"
)

// newTestDB opens a fresh in-memory database per test. The database is
// named after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}, &models.Follow{}))

	return db
}

// mustSignup creates a user through the credential store and fails the test
// on any error.
func mustSignup(t *testing.T, users UserRepository, username, email string) *models.User {
	t.Helper()

	user, err := users.Signup(username, email, "password", "")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}
