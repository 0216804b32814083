package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// PageGuard protects browser-facing pages. Unauthenticated requests are
// redirected to the sign-in page with the originally requested path
// preserved as the return target.
func PageGuard(v SessionValidator, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Validate(ExtractToken(c))
		if err != nil {
			target := loginPath + "?redirectTo=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		if claims.SessionID != "" {
			c.Set(ContextKeySID, claims.SessionID)
		}
		c.Next()
	}
}

// LoginRedirect sends already-authenticated visitors of the sign-in
// page to the dashboard instead.
func LoginRedirect(v SessionValidator, dashboardPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := v.Validate(ExtractToken(c)); err == nil {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
