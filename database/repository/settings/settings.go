package settingsRepo

import "recreio/models"

// SettingsRepository defines access to the venue's singleton settings
// document.
type SettingsRepository interface {
	// Get retrieves the settings document, creating it with defaults when
	// it does not exist yet.
	Get() (*models.Settings, error)
	// Update merges the given fields into the settings document.
	Update(settings *models.Settings) error
	// SetLogoURL stores the uploaded brand logo reference.
	SetLogoURL(url string) error
}
