package handlers

import (
	"net/http"

	"recreio/models"
	"recreio/services/venue"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VenueHandler exposes the pricing settings and branding endpoints.
type VenueHandler struct {
	Service venue.VenueService
}

// GetSettingsHandler handles GET /api/settings.
func (h *VenueHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Service.GetSettings()
	if err != nil {
		utils.GetLogger().Error("failed to load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler handles PUT /api/settings.
func (h *VenueHandler) UpdateSettingsHandler(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateSettings(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// UploadLogoHandler handles POST /api/settings/logo with a multipart form
// file under the "logo" field.
func (h *VenueHandler) UploadLogoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing logo file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read logo file"})
		return
	}
	defer file.Close()

	url, err := h.Service.UploadLogo(c.Request.Context(), file)
	if err != nil {
		utils.GetLogger().Error("logo upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload logo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logoUrl": url})
}
