package handlers

import (
	"net/http"

	"tutorlux_backend/internal/services"
	"tutorlux_backend/internal/services/dto"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	*BaseHandler
	tutorService services.TutorService
}

func NewTutorHandler(base *BaseHandler, tutorService services.TutorService) *TutorHandler {
	return &TutorHandler{
		BaseHandler:  base,
		tutorService: tutorService,
	}
}

// RegisterRoutes mounts /tutors under rg. Only contact requires authMW.
func (h *TutorHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	tutors := rg.Group("/tutors")
	{
		tutors.GET("/search", h.Search)
		tutors.GET("/:id", h.GetByID)
		tutors.POST("/contact", authMW, h.Contact)
	}
}

func (h *TutorHandler) Search(c *gin.Context) {
	var query dto.TutorSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.tutorService.Search(c.Request.Context(), query.Category)
	if err != nil {
		h.HandleServiceError(c, err, apperrors.CodeTutorSearchFailed, "tutor", "Failed to fetch tutors")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TutorHandler) GetByID(c *gin.Context) {
	param := dto.TutorIDParam{ID: c.Param("id")}
	if vErr, ok := h.Validate(c, &param); !ok {
		if vErr != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidTutorID)
		}
		return
	}

	resp, err := h.tutorService.GetByID(c.Request.Context(), param.ID)
	if err != nil {
		h.HandleServiceError(c, err, apperrors.CodeTutorFetchFailed, "tutor", "Failed to fetch tutor")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TutorHandler) Contact(c *gin.Context) {
	sender, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.ContactTutorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if vErr, ok := h.Validate(c, &req); !ok {
		if vErr == nil {
			return
		}
		if vErr.Has("tutorEmail") || vErr.Has("tutorName") || vErr.Has("message") {
			apperrors.HandleError(c, apperrors.ErrContactFieldsRequired)
			return
		}
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		return
	}

	if err := h.tutorService.Contact(c.Request.Context(), sender, &req); err != nil {
		h.HandleServiceError(c, err, apperrors.CodeContactFailed, "tutor", "Failed to send contact message")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Email sent successfully"})
}
