package handlers

import (
	"errors"
	"net/http"

	couponRepo "recreio/database/repository/coupon"
	"recreio/models"
	"recreio/services/coupons"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler exposes coupon definition and validation endpoints.
type CouponHandler struct {
	Service coupons.CouponService
}

// ValidateHandler handles GET /api/coupons/validate/:code. Returns the
// coupon when it is currently usable.
func (h *CouponHandler) ValidateHandler(c *gin.Context) {
	coupon, err := h.Service.Lookup(c.Param("code"))
	if err != nil {
		if errors.Is(err, coupons.ErrCouponInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is invalid or expired"})
			return
		}
		utils.GetLogger().Error("coupon lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// ListHandler handles GET /api/coupons.
func (h *CouponHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.GetAll()
	if err != nil {
		utils.GetLogger().Error("failed to list coupons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateHandler handles POST /api/coupons.
func (h *CouponHandler) CreateHandler(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// UpdateHandler handles PUT /api/coupons/:id.
func (h *CouponHandler) UpdateHandler(c *gin.Context) {
	var coupon models.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon.ID = c.Param("id")
	if err := h.Service.Update(&coupon); err != nil {
		if errors.Is(err, couponRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated"})
}

// DeleteHandler handles DELETE /api/coupons/:id.
func (h *CouponHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, couponRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
