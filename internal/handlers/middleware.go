package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// anonymousUserID keys the shared bucket used when no identity is presented.
const anonymousUserID = 0

// identityMiddleware resolves the caller's identity. No Authorization header
// means the anonymous bucket; a present but malformed or invalid token is
// rejected so a signed-in user never silently falls back to anonymous.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Set(userIDKey, anonymousUserID)
		c.Next()
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// callerID reads the identity stored by identityMiddleware.
func callerID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
