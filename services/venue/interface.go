package venue

import (
	"context"
	"io"

	"recreio/models"
)

// VenueService manages the venue's pricing settings and branding.
type VenueService interface {
	// GetSettings returns the pricing settings, served from cache when
	// fresh.
	GetSettings() (*models.Settings, error)
	// UpdateSettings persists new rates and invalidates the cache.
	UpdateSettings(settings *models.Settings) error
	// UploadLogo stores the brand logo and records its URL.
	UploadLogo(ctx context.Context, file io.Reader) (string, error)
}
