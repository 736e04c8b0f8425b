package handlers

import (
	"errors"
	"net/http"
	"time"

	saleRepo "recreio/database/repository/sale"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportsHandler exposes read-only sale-record queries. Nothing here ever
// mutates core state.
type ReportsHandler struct {
	Sales saleRepo.SaleRepository
}

// ListSalesHandler handles GET /api/reports/sales?from=...&to=... with
// RFC 3339 bounds. The "to" bound defaults to now.
func (h *ReportsHandler) ListSalesHandler(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'from' bound, expected RFC 3339"})
		return
	}
	to := time.Now()
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' bound, expected RFC 3339"})
			return
		}
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must be after 'from'"})
		return
	}

	sales, err := h.Sales.ListRange(from, to)
	if err != nil {
		utils.GetLogger().Error("failed to list sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// GetSaleHandler handles GET /api/reports/sales/:id.
func (h *ReportsHandler) GetSaleHandler(c *gin.Context) {
	sale, err := h.Sales.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, saleRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale record not found"})
			return
		}
		utils.GetLogger().Error("failed to get sale record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sale record"})
		return
	}
	c.JSON(http.StatusOK, sale)
}
