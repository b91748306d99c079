package handlers

import (
	"net/http"

	"tutorlux_backend/internal/services"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes mounts /user under rg. Every route requires authMW.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	user := rg.Group("/user")
	user.Use(authMW)
	{
		user.GET("/me", h.GetMe)
		user.PATCH("/update", h.UpdateProfile)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err, apperrors.CodeInternalError, "user", "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		h.HandleServiceError(c, err, apperrors.CodeUpdateFailed, "user", "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
