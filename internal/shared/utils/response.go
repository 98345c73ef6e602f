package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/auth"
	"helpdesk/internal/shared/errors"
)

// UserEcho is the caller identity echoed on API-key authenticated responses.
type UserEcho struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DataResponse sends a success payload. When the request authenticated via
// API key, the payload additionally carries the resolved user identity so
// programmatic clients can confirm whose key was used.
func DataResponse(c *gin.Context, statusCode int, payload gin.H) {
	if p, ok := auth.FromContext(c); ok && p.IsAPIKey() {
		payload["user"] = UserEcho{ID: p.ID, Name: p.Name, Email: p.Email}
	}
	c.JSON(statusCode, payload)
}

// MessageResponse sends a `{"message": ...}` success body.
func MessageResponse(c *gin.Context, statusCode int, message string) {
	DataResponse(c, statusCode, gin.H{"message": message})
}

// ErrorResponse sends a uniform `{"error": ...}` body with the given status.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithError maps an application error to its HTTP status.
// Non-AppError values collapse to a generic 500 so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
