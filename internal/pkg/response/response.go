package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

// OK sends a 200 response. The payload already carries the success flag
// where the API contract requires one.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Success sends a 200 {"success": true, ...} envelope with the given
// extra fields merged in.
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized - please log in"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// InternalError sends a 500 error response with a user-safe message only.
func InternalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
}

// Error maps a taxonomy error onto the wire. Unclassified errors become
// a generic 500; the wrapped cause never leaves the server. The full
// error is attached to the context so the request logger records it.
func Error(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	message := appErr.Message
	if appErr.Kind == apperrors.KindUnknown || message == "" {
		message = "An unexpected error occurred"
	}
	c.Error(err)
	c.AbortWithStatusJSON(appErr.Kind.HTTPStatus(), gin.H{"error": message})
}
