package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/polyglotlc/backend/models"
)

const settingsCacheKey = "site_settings"

// DefaultSettingsTTL bounds how stale a cached settings read may be after
// an update; writes do not invalidate the cache.
const DefaultSettingsTTL = time.Hour

// SettingsStore serves the singleton site settings row with an optional
// read-through Redis cache. The cache is advisory: a nil client disables it
// and every read falls through to the database.
type SettingsStore struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

func NewSettingsStore(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *SettingsStore {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &SettingsStore{db: db, rdb: rdb, ttl: ttl}
}

// Get returns the settings row, creating a default-valued one on first
// access. Cached reads may lag a write by up to the store TTL.
func (s *SettingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, settingsCacheKey).Result()
		if err == nil {
			if json.Unmarshal([]byte(cached), &settings) == nil {
				return settings, nil
			}
			log.Printf("⚠️ Failed to unmarshal cached site settings, falling back to database")
		} else if err != redis.Nil {
			log.Printf("⚠️ Redis GET failed for site settings: %v", err)
		}
	}

	settings.ID = models.SettingsRowID
	if err := s.db.FirstOrCreate(&settings, models.SiteSettings{ID: models.SettingsRowID}).Error; err != nil {
		return models.SiteSettings{}, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(settings); err == nil {
			if err := s.rdb.Set(ctx, settingsCacheKey, data, s.ttl).Err(); err != nil {
				log.Printf("⚠️ Failed to cache site settings: %v", err)
			}
		}
	}

	return settings, nil
}

// Update persists onto the singleton row regardless of the identity carried
// by settings. The cache is left to expire on its own.
func (s *SettingsStore) Update(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = models.SettingsRowID
	return s.db.Save(settings).Error
}
