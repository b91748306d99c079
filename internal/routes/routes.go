package routes

import (
	"tutorlux_backend/internal/handlers"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the API, health and metrics endpoints.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMW gin.HandlerFunc,
) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authMW)
		appHandlers.TutorHandler.RegisterRoutes(api, authMW)
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ginRouter.NoRoute(func(c *gin.Context) {
		apperrors.HandleError(c, apperrors.ErrRouteNotFound)
	})

	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
