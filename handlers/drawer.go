package handlers

import (
	"errors"
	"net/http"

	"recreio/middleware"
	"recreio/services/drawer"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DrawerHandler exposes the cash-drawer endpoints.
type DrawerHandler struct {
	Service drawer.DrawerService
}

// OpenHandler handles POST /api/drawer/open.
func (h *DrawerHandler) OpenHandler(c *gin.Context) {
	operator, ok := middleware.OperatorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing operator identity"})
		return
	}

	var req struct {
		OpeningBalance float64 `json:"openingBalance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.Open(req.OpeningBalance, operator)
	if err != nil {
		if errors.Is(err, drawer.ErrAlreadyOpen) {
			c.JSON(http.StatusConflict, gin.H{"error": "A cash drawer is already open"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// CurrentHandler handles GET /api/drawer/current.
func (h *DrawerHandler) CurrentHandler(c *gin.Context) {
	session, err := h.Service.Current()
	if err != nil {
		utils.GetLogger().Error("failed to load open drawer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drawer"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No cash drawer is open"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// WithdrawHandler handles POST /api/drawer/withdrawals.
func (h *DrawerHandler) WithdrawHandler(c *gin.Context) {
	operator, ok := middleware.OperatorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing operator identity"})
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
		Reason string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.Withdraw(req.Amount, req.Reason, operator)
	if err != nil {
		if errors.Is(err, drawer.ErrNotOpen) {
			c.JSON(http.StatusConflict, gin.H{"error": "No cash drawer is open"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CloseHandler handles POST /api/drawer/close. The cash-sales total is
// recomputed from the sale records of the drawer's own period, not taken
// from the client.
func (h *DrawerHandler) CloseHandler(c *gin.Context) {
	operator, ok := middleware.OperatorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing operator identity"})
		return
	}

	var req struct {
		CountedBalance float64 `json:"countedBalance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	open, err := h.Service.Current()
	if err != nil {
		utils.GetLogger().Error("failed to load open drawer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drawer"})
		return
	}
	if open == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No cash drawer is open"})
		return
	}

	sales, err := h.Service.SalesSince(open.OpenedAt)
	if err != nil {
		utils.GetLogger().Error("failed to load drawer sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales for reconciliation"})
		return
	}
	var cashSalesTotal float64
	for i := range sales {
		cashSalesTotal += sales[i].CashCollected()
	}

	session, err := h.Service.Close(req.CountedBalance, cashSalesTotal, operator)
	if err != nil {
		switch {
		case errors.Is(err, drawer.ErrNotOpen), errors.Is(err, drawer.ErrAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "No cash drawer is open"})
		default:
			utils.GetLogger().Error("failed to close drawer", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close drawer"})
		}
		return
	}
	c.JSON(http.StatusOK, session)
}

// SalesHandler handles GET /api/drawer/sales: the sale records of the open
// drawer's period, for the running reconciliation view.
func (h *DrawerHandler) SalesHandler(c *gin.Context) {
	open, err := h.Service.Current()
	if err != nil {
		utils.GetLogger().Error("failed to load open drawer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load drawer"})
		return
	}
	if open == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No cash drawer is open"})
		return
	}

	sales, err := h.Service.SalesSince(open.OpenedAt)
	if err != nil {
		utils.GetLogger().Error("failed to load drawer sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}
