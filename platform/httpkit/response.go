// Package httpkit holds the gin helpers shared by every module: JSON
// responses, error mapping, request ids, logging and rate limiting.
package httpkit

import (
	"errors"
	"net/http"

	"homeverse_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// HandleError writes err as a JSON error and reports whether it did.
// Classified errors use their kind's status and message. Anything else is a
// 500 whose cause is attached to the gin context for the request logger and
// never echoed to the caller.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
		return true
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		_ = c.Error(err).SetMeta(appErr.Kind.String())
	}
	c.JSON(status, ErrorResponse{Error: appErr.Message, Details: appErr.Details})
	return true
}
