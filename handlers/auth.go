package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"recreio/config"
	"recreio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tokenLifetime bounds an operator shift; expired tokens force a re-login.
const tokenLifetime = 14 * time.Hour

// AuthHandler issues operator tokens.
type AuthHandler struct{}

// LoginHandler handles POST /api/auth/login. Operators share a venue access
// key; the issued token carries their individual identity for attribution.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email     string `json:"email" binding:"required"`
		AccessKey string `json:"accessKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expected := config.AppConfig.OperatorAccessKey
	if expected == "" || subtle.ConstantTimeCompare([]byte(req.AccessKey), []byte(expected)) != 1 {
		logger.Warn("rejected operator login", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid access key"})
		return
	}

	token, err := utils.GenerateToken(req.Email, req.Email, tokenLifetime)
	if err != nil {
		logger.Error("failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
