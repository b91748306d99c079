package handlers

import (
	"net/http"

	"tutorlux_backend/internal/services"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes mounts /auth under rg.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.SignUp(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err, apperrors.CodeAccountCreationFailed, "auth", "Failed to create account")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err, apperrors.CodeSigninFailed, "auth", "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, resp)
}
