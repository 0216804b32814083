package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
	jwtpkg "github.com/soez-labs/blogforge/internal/pkg/jwt"
	"github.com/soez-labs/blogforge/internal/pkg/response"
	sessionpkg "github.com/soez-labs/blogforge/internal/pkg/session"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeySID    = "session_id"

	// TokenCookie carries the session JWT for browser requests.
	TokenCookie = "bf-token"
)

// SessionValidator checks a raw token and returns the authenticated
// claims. Implementations must verify the backing session server-side;
// decoding the token alone is not enough.
type SessionValidator interface {
	Validate(token string) (*jwtpkg.Claims, error)
}

// DBValidator validates JWTs against the user_sessions table.
type DBValidator struct {
	DB *gorm.DB
}

func (v *DBValidator) Validate(rawToken string) (*jwtpkg.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, apperrors.Unauthorized("token is required")
	}
	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, "invalid token", err)
	}
	active, err := sessionpkg.IsActive(v.DB, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, apperrors.Store("failed to check session", err)
	}
	if !active {
		return nil, apperrors.Unauthorized("session expired or revoked")
	}
	sessionpkg.Touch(v.DB, claims.UserID, claims.SessionID)
	return claims, nil
}

// Auth returns a middleware that rejects unauthenticated API requests
// with a 401 JSON body and no redirect.
func Auth(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Validate(ExtractToken(c))
		if err != nil {
			response.Unauthorized(c, "Unauthorized - please log in")
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		if claims.SessionID != "" {
			c.Set(ContextKeySID, claims.SessionID)
		}
		c.Next()
	}
}

// OptionalAuth sets the user ID if a valid token is present, but does
// not block the request.
func OptionalAuth(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := v.Validate(ExtractToken(c)); err == nil && claims.UserID != "" {
			c.Set(ContextKeyUserID, claims.UserID)
			if claims.SessionID != "" {
				c.Set(ContextKeySID, claims.SessionID)
			}
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

// ExtractToken pulls the session token from the Authorization header,
// the token query parameter, or the session cookie, in that order.
func ExtractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	if token := NormalizeToken(c.Query("token")); token != "" {
		return token
	}
	if raw, err := c.Cookie(TokenCookie); err == nil {
		return NormalizeToken(raw)
	}
	return ""
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
