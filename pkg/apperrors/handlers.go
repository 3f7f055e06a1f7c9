package apperrors

import (
	"academy_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body every failed request gets: a short message
// plus a machine-readable code. Stack traces and causes never leave the
// server.
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError translates any error into the HTTP response for it.
// Non-AppError values are treated as internal failures.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
