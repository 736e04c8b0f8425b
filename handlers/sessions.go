package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	sessionRepo "recreio/database/repository/session"
	"recreio/services/billing"
	"recreio/services/coupons"
	"recreio/services/sessions"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes active-session endpoints.
type SessionHandler struct {
	Service sessions.SessionService
}

// CheckInHandler handles POST /api/sessions.
func (h *SessionHandler) CheckInHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input sessions.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.CheckIn(input)
	if err != nil {
		var inapplicable billing.InapplicableCouponError
		switch {
		case errors.Is(err, coupons.ErrCouponInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is invalid or expired"})
		case errors.As(err, &inapplicable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": inapplicable.Reason})
		default:
			logger.Error("check-in failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListHandler handles GET /api/sessions.
func (h *SessionHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("failed to list sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetHandler handles GET /api/sessions/:id.
func (h *SessionHandler) GetHandler(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		utils.GetLogger().Error("failed to get session", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// QuoteHandler handles GET /api/sessions/:id/quote. The response is a live
// cost breakdown; nothing is persisted.
func (h *SessionHandler) QuoteHandler(c *gin.Context) {
	id := c.Param("id")
	quote, err := h.Service.Quote(id, time.Now())
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		utils.GetLogger().Error("failed to quote session", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quote session"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// AddTimeHandler handles PUT /api/sessions/:id/time.
func (h *SessionHandler) AddTimeHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		MaxTime int `json:"maxTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.AddTime(id, req.MaxTime); err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contracted time updated"})
}

// CancelHandler handles DELETE /api/sessions/:id/cancel. Cancellation is
// for mistaken check-ins; all consumption returns to stock.
func (h *SessionHandler) CancelHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		utils.GetLogger().Error("failed to cancel session", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled, stock restored"})
}

// DeleteHandler handles DELETE /api/sessions/:id. Removal without
// restocking, for groups that left without settling.
func (h *SessionHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		utils.GetLogger().Error("failed to delete session", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// WatchHandler handles GET /api/sessions/watch: a server-sent-event stream
// of session changes driving the live floor board.
func (h *SessionHandler) WatchHandler(c *gin.Context) {
	events, err := h.Service.Watch(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to open session watch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open change stream"})
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(event.Type, event)
		return true
	})
}
