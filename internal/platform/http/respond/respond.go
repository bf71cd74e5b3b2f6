// Package respond translates application errors into HTTP responses.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// MsgInternal is the only message clients see for server errors.
const MsgInternal = "Internal server error"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Status returns the HTTP status and title for kind.
func Status(kind apperr.Kind) (int, string) {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest, "Validation Failed"
	case apperr.KindAuth:
		return http.StatusUnauthorized, "Unauthorized"
	case apperr.KindForbidden:
		return http.StatusForbidden, "Forbidden"
	case apperr.KindNotFound:
		return http.StatusNotFound, "Not Found"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

// Body builds the status and body for err without writing anything.
func Body(err error) (int, ErrorResponse) {
	appErr, ok := apperr.As(err)
	if !ok {
		status, title := Status(apperr.KindServer)
		return status, ErrorResponse{Title: title, Message: MsgInternal}
	}

	status, title := Status(appErr.Kind)
	if appErr.Kind == apperr.KindServer {
		return status, ErrorResponse{Title: title, Message: MsgInternal}
	}
	return status, ErrorResponse{Title: title, Message: appErr.Message, Field: appErr.Field}
}

// Error writes the response for err. Server errors are logged with their cause.
func Error(c *gin.Context, err error) {
	c.JSON(prepare(c, err))
}

// Abort writes the response for err and stops the handler chain.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(prepare(c, err))
}

func prepare(c *gin.Context, err error) (int, ErrorResponse) {
	status, body := Body(err)
	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
		)
	}
	return status, body
}
