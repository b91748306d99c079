package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every error.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes errors to a gin response.
type GinErrorHandler struct {
	Debug bool
	// Fallback is used for errors that are not *AppError. Defaults to InternalError.
	Fallback func(err error) *AppError
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		if h.Fallback != nil {
			appErr = h.Fallback(err)
		} else {
			appErr = InternalError(err)
		}
		if !h.Debug {
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		slog.ErrorContext(c.Request.Context(), "server error",
			"code", appErr.Code,
			"error", appErr.Unwrap(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError writes err, wrapping unknown errors into a generic 500.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// HandleErrorWithFallback writes err, wrapping unknown errors with fallback.
func HandleErrorWithFallback(c *gin.Context, err error, fallback func(error) *AppError) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode, Fallback: fallback}
	handler.HandleGinError(c, err)
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
