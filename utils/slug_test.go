package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSlugTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("CREATE TABLE pages (slug TEXT)").Error)
	return db
}

func TestUniqueSlug(t *testing.T) {
	db := newSlugTestDB(t)

	s, err := UniqueSlug(db, "pages", "General English")
	require.NoError(t, err)
	require.Equal(t, "general-english", s)

	require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", "general-english").Error)

	s, err = UniqueSlug(db, "pages", "General English")
	require.NoError(t, err)
	require.Equal(t, "general-english-2", s)

	require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", "general-english-2").Error)

	s, err = UniqueSlug(db, "pages", "General English!")
	require.NoError(t, err)
	require.Equal(t, "general-english-3", s)
}
