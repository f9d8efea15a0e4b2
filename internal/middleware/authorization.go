package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/utils"
)

// claimsContextKey is the gin context key holding the decoded claims
const claimsContextKey = "auth_claims"

// Authorization validates the bearer token on every request before it
// reaches a handler. Exempt paths bypass the check. A missing header,
// wrong scheme or malformed token all short-circuit with 401 without
// touching any handler or database connection.
func Authorization(tokens *utils.TokenService, exemptPaths []string) gin.HandlerFunc {
	exempt := make(map[string]bool, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = true
	}

	return func(c *gin.Context) {
		if exempt[c.Request.URL.Path] {
			c.Next()
			return
		}

		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing or invalid authorization token"})
			return
		}

		claims, err := tokens.Decode(token)
		if err != nil {
			zap.L().Info("rejected token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(401, gin.H{"error": "missing or invalid authorization token"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext retrieves the decoded claims attached by the
// Authorization middleware.
func ClaimsFromContext(c *gin.Context) (*utils.Claims, bool) {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*utils.Claims)
	return claims, ok
}

// extractBearerToken requires the header to be exactly the scheme literal
// "Bearer" followed by one token. Any other shape is rejected.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}
