package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func login(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req identity.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
			return
		}

		id, err := as.Identities.Authenticate(req.Email, req.Password)
		if err != nil {
			as.Logger.Warn("Login rejected", zap.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}

		pair := as.Sessions.Issue(id)

		as.Logger.Info("Login succeeded",
			zap.String("email", id.Email),
			zap.String("role", id.Role))

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"token":        pair.AccessToken,
			"refreshToken": pair.RefreshToken,
			"user":         id,
		})
	}
}

func refresh(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		// Accept the refresh token from the body or, failing that, the
		// Authorization header.
		_ = c.ShouldBindJSON(&req)
		token := req.RefreshToken
		if token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Refresh token required"})
			return
		}

		pair, err := as.Sessions.Rotate(token)
		if err != nil {
			as.Logger.Warn("Token rotation rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid refresh token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"token":        pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		})
	}
}

func logout(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization required"})
			return
		}

		if _, err := as.Sessions.ResolveAccess(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			return
		}

		as.Sessions.Revoke(token)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
