package database

import (
	"path/filepath"
	"testing"

	"starwars/config"
	"starwars/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.Config{SQLitePath: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"usuario", "character", "planeta", "favorite"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	// running twice is a no-op
	assert.NoError(t, Migrate(db))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	fav := models.NewFavorite(models.PlanetFavorite{ID: 12}, 34)
	assert.Error(t, db.Create(&fav).Error)
}

func TestFavoriteTargetHookRunsOnCreate(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Email: "a@b.c", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	err := db.Create(&models.Favorite{UserID: user.ID}).Error
	assert.ErrorIs(t, err, models.ErrInvalidFavoriteTarget)
}

func TestSeedUsers(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{SeedUserEmail: "admin@starwars.dev", SeedUserPassword: "r2d2"}

	require.NoError(t, SeedUsers(db, cfg))
	require.NoError(t, SeedUsers(db, cfg))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@starwars.dev", users[0].Email)
	assert.True(t, users[0].IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("r2d2")))
}

func TestSeedUsersSkippedOrRejected(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, SeedUsers(db, &config.Config{}))
	assert.ErrorIs(t, SeedUsers(db, &config.Config{SeedUserEmail: "x@y.z"}), ErrSeedPasswordMissing)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
