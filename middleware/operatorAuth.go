package middleware

import (
	"net/http"
	"strings"

	"recreio/models"
	"recreio/utils"

	"github.com/gin-gonic/gin"
)

// OperatorContextKey is the gin context key under which the authenticated
// operator is stored.
const OperatorContextKey = "operator"

// OperatorAuthMiddleware validates the bearer token and stores the operator
// identity in the request context. Drawer and settlement writes are
// attributed to this identity.
func OperatorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, email, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(OperatorContextKey, models.Operator{UID: subject, Email: email})
		c.Next()
	}
}

// OperatorFrom extracts the authenticated operator from the context.
func OperatorFrom(c *gin.Context) (models.Operator, bool) {
	value, exists := c.Get(OperatorContextKey)
	if !exists {
		return models.Operator{}, false
	}
	operator, ok := value.(models.Operator)
	return operator, ok
}
