package handlers

import (
	"errors"
	"io"

	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/middleware"
	"tutorlux_backend/internal/validator"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindJSON decodes the body into obj. An empty body leaves obj at its zero
// value so the service can report which field is missing.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return true
}

// Validate runs struct validation, writing a 400 on failure. The returned
// error is the *validator.ValidationError when there was one.
func (h *BaseHandler) Validate(c *gin.Context, obj interface{}) (*validator.ValidationError, bool) {
	ctx := c.Request.Context()

	err := h.validator.Validate(obj)
	if err == nil {
		return nil, true
	}

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		return vErr, false
	}

	logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
	return nil, false
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}

	vErr, ok := h.Validate(c, obj)
	if vErr != nil {
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	}
	return ok
}

// HandleServiceError writes err. Errors that are not *AppError become a 500
// carrying code, so each endpoint keeps its own failure code.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error, code apperrors.ErrorCode, domain, message string) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"code", appErr.Code,
				"error", appErr.Message,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleErrorWithFallback(c, err, func(err error) *apperrors.AppError {
		return apperrors.InternalErrorWithCode(err, code, domain, message)
	})
}

// GetAndAuthorizeUserID reads the id stored by the auth middleware.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID, true
}

// GetIdentity returns who the bearer token was issued to.
func (h *BaseHandler) GetIdentity(c *gin.Context) (auth.Identity, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return auth.Identity{}, false
	}
	return claims.Identity(), true
}
