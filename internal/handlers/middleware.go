package handlers

import (
	"errors"
	"net/http"
	"strings"

	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// identityMiddleware is the authentication gate: extract the bearer
// token, verify it, resolve the account behind it and bind the identity
// to the request context. Each step short-circuits with its own status:
// missing credential → 401, bad signature/expired → 403, account gone →
// 404. The stored identity never includes the password hash.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userID, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	ident, err := h.services.Identify(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": "user not found",
			})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to resolve identity", "identity_lookup_failed", err)
		c.Abort()
		return
	}

	c.Set(identityKey, *ident)
	c.Next()
}

// callerIdentity returns the identity bound by identityMiddleware.
func callerIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}
