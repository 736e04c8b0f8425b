package handlers

import (
	"errors"
	"net/http"

	productRepo "recreio/database/repository/product"
	sessionRepo "recreio/database/repository/session"
	"recreio/services/consumption"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsumptionHandler exposes the session tab endpoints.
type ConsumptionHandler struct {
	Ledger consumption.Ledger
}

// IncrementHandler handles POST /api/sessions/:id/consumption/:productId.
func (h *ConsumptionHandler) IncrementHandler(c *gin.Context) {
	session, err := h.Ledger.Increment(c.Param("id"), c.Param("productId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DecrementHandler handles PUT /api/sessions/:id/consumption/:productId/decrement.
func (h *ConsumptionHandler) DecrementHandler(c *gin.Context) {
	session, err := h.Ledger.Decrement(c.Param("id"), c.Param("productId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveHandler handles DELETE /api/sessions/:id/consumption/:productId.
func (h *ConsumptionHandler) RemoveHandler(c *gin.Context) {
	session, err := h.Ledger.Remove(c.Param("id"), c.Param("productId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *ConsumptionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, productRepo.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
	case errors.Is(err, sessionRepo.ErrNotFound), errors.Is(err, productRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("consumption update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consumption"})
	}
}
