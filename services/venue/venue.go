// Package venue manages the pricing settings singleton and venue branding.
package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	settingsRepo "recreio/database/repository/settings"
	"recreio/models"
	"recreio/services/storage"
	"recreio/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// logoFolder is the Cloudinary folder for venue branding assets.
const logoFolder = "branding"

// DefaultVenueService implements VenueService.
type DefaultVenueService struct {
	Repo    settingsRepo.SettingsRepository
	Cache   *redis.Client
	Storage storage.StorageService
}

// GetSettings returns the pricing settings. Reads go through the Redis
// cache; a miss falls back to the repository and refills the cache.
func (s *DefaultVenueService) GetSettings() (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, utils.SettingsCacheKey).Result()
		if err == nil {
			var settings models.Settings
			if err := json.Unmarshal([]byte(raw), &settings); err == nil {
				return &settings, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("settings cache read failed", zap.Error(err))
		}
	}

	settings, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	s.fillCache(ctx, settings)
	return settings, nil
}

// UpdateSettings persists new rates and invalidates the cache.
func (s *DefaultVenueService) UpdateSettings(settings *models.Settings) error {
	if settings.FirstHourRate < 0 || settings.AdditionalHourRate < 0 || settings.FullAfternoonRate < 0 {
		return fmt.Errorf("rates cannot be negative")
	}
	if err := s.Repo.Update(settings); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// UploadLogo stores the brand logo and records its URL.
func (s *DefaultVenueService) UploadLogo(ctx context.Context, file io.Reader) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("no storage service configured")
	}
	url, err := s.Storage.UploadImage(ctx, file, logoFolder)
	if err != nil {
		return "", err
	}
	if err := s.Repo.SetLogoURL(url); err != nil {
		return "", err
	}
	s.invalidateCache()
	return url, nil
}

func (s *DefaultVenueService) fillCache(ctx context.Context, settings *models.Settings) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.SettingsCacheKey, b, utils.SettingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("settings cache write failed", zap.Error(err))
	}
}

func (s *DefaultVenueService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.SettingsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("settings cache invalidation failed", zap.Error(err))
	}
}
