package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// AuthMW wraps the token service and session repository for middleware
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) *AuthMW {
	return &AuthMW{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
	}
}

// WithJWT returns middleware requiring a Bearer access token whose session
// is still live. A client-held identifier is never accepted as identity on
// its own; only the signed token naming a server-side session is.
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := mw.tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		session, err := mw.sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
		if err != nil || session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}
		if session.UserID != claims.UserID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user mismatch"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}
