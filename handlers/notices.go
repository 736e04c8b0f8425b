package handlers

import (
	"errors"
	"net/http"

	noticeRepo "recreio/database/repository/notice"
	"recreio/services/notices"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoticeHandler exposes operator alert endpoints.
type NoticeHandler struct {
	Service notices.NoticeService
}

// ListHandler handles GET /api/notices.
func (h *NoticeHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("failed to list notices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notices"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// DismissHandler handles DELETE /api/notices/:id.
func (h *NoticeHandler) DismissHandler(c *gin.Context) {
	if err := h.Service.Dismiss(c.Param("id")); err != nil {
		if errors.Is(err, noticeRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss notice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notice dismissed"})
}

// DismissAllHandler handles DELETE /api/notices.
func (h *NoticeHandler) DismissAllHandler(c *gin.Context) {
	if err := h.Service.DismissAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notices dismissed"})
}
