package handlers

import (
	"errors"
	"net/http"
	"time"

	sessionRepo "recreio/database/repository/session"
	"recreio/services/billing"
	"recreio/services/checkout"
	"recreio/services/coupons"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the settlement endpoints.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

// QuoteHandler handles GET /api/checkout/:id/quote. An optional "coupon"
// query parameter previews a last-minute coupon.
func (h *CheckoutHandler) QuoteHandler(c *gin.Context) {
	quote, err := h.Service.Quote(c.Param("id"), c.Query("coupon"), time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// SettleHandler handles POST /api/checkout/:id.
func (h *CheckoutHandler) SettleHandler(c *gin.Context) {
	var input checkout.SettleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.SessionID = c.Param("id")

	result, err := h.Service.Settle(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) respondError(c *gin.Context, err error) {
	var inapplicable billing.InapplicableCouponError
	switch {
	case errors.Is(err, sessionRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, checkout.ErrDrawerNotOpen):
		c.JSON(http.StatusConflict, gin.H{"error": "No cash drawer is open"})
	case errors.Is(err, checkout.ErrAmountMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Tendered payments do not cover the amount due"})
	case errors.Is(err, coupons.ErrCouponInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is invalid or expired"})
	case errors.As(err, &inapplicable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": inapplicable.Reason})
	case errors.Is(err, checkout.ErrTransactionAborted):
		utils.GetLogger().Error("settlement aborted", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Settlement conflicted with a concurrent change, retry"})
	default:
		utils.GetLogger().Error("settlement failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
	}
}
