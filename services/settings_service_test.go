package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglotlc/backend/models"
)

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first read creates the singleton row", func(t *testing.T) {
		db := newTestDB(t)
		store := NewSettingsStore(db, nil, 0)

		settings, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.SettingsRowID, settings.ID)

		var row models.SiteSettings
		require.NoError(t, db.First(&row, models.SettingsRowID).Error)
		assert.Equal(t, "PolyglotLC", row.SiteName)

		var count int64
		db.Model(&models.SiteSettings{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("repeated reads reuse the same row", func(t *testing.T) {
		db := newTestDB(t)
		store := NewSettingsStore(db, nil, 0)

		_, err := store.Get(ctx)
		require.NoError(t, err)
		_, err = store.Get(ctx)
		require.NoError(t, err)

		var count int64
		db.Model(&models.SiteSettings{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("update lands on the singleton regardless of payload identity", func(t *testing.T) {
		db := newTestDB(t)
		store := NewSettingsStore(db, nil, 0)

		settings, err := store.Get(ctx)
		require.NoError(t, err)

		settings.ID = 42
		settings.SiteName = "PolyglotLC Learning Center"
		settings.PhonePrimary = "+998 71 200 00 00"
		require.NoError(t, store.Update(ctx, &settings))

		var count int64
		db.Model(&models.SiteSettings{}).Count(&count)
		assert.Equal(t, int64(1), count)

		reloaded, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.SettingsRowID, reloaded.ID)
		assert.Equal(t, "PolyglotLC Learning Center", reloaded.SiteName)
		assert.Equal(t, "+998 71 200 00 00", reloaded.PhonePrimary)
	})
}
