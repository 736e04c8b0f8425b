package handlers

import (
	"errors"
	"net/http"

	productRepo "recreio/database/repository/product"
	"recreio/models"
	"recreio/services/products"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler exposes catalogue endpoints.
type ProductHandler struct {
	Service products.ProductService
}

// ListHandler handles GET /api/products.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetHandler handles GET /api/products/:id.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	product, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateHandler handles POST /api/products.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.Create(&product)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /api/products/:id.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = c.Param("id")
	if err := h.Service.Update(&product); err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteHandler handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, productRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// RestockHandler handles PUT /api/products/:id/stock. The delta is signed;
// a negative adjustment that would drive stock below zero is rejected.
func (h *ProductHandler) RestockHandler(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Service.Restock(c.Param("id"), req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, productRepo.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Adjustment would drive stock negative"})
		case errors.Is(err, productRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			utils.GetLogger().Error("restock failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}
