package routes

import (
	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/handlers"
)

// RegisterRoutes mounts all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.TrainerHandler.RegisterRoutes(api)
		appHandlers.MembershipHandler.RegisterRoutes(api)
		appHandlers.ShopHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.PortalHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}
}
