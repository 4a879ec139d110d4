package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

// PortalHandler serves the trainer portal. The authenticated subject here is
// a trainer, so the token userID is the trainer ID.
type PortalHandler struct {
	*BaseHandler
	portalService services.PortalService
}

func NewPortalHandler(base *BaseHandler, portalService services.PortalService) *PortalHandler {
	return &PortalHandler{BaseHandler: base, portalService: portalService}
}

func (h *PortalHandler) RegisterRoutes(r *gin.RouterGroup) {
	portal := r.Group("/portal")
	portal.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleTrainer))
	{
		portal.GET("/users", h.AssignedUsers)
		portal.POST("/users/:userId/plan", h.SendPlan)
		portal.DELETE("/users/:userId", h.Unassign)
	}
}

func (h *PortalHandler) AssignedUsers(c *gin.Context) {
	trainerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.portalService.AssignedUsers(h.GetDB(c), trainerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": resp})
}

func (h *PortalHandler) SendPlan(c *gin.Context) {
	trainerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.portalService.SendPlanEmail(h.GetDB(c), trainerID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout plan sent", "user": user})
}

func (h *PortalHandler) Unassign(c *gin.Context) {
	trainerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.portalService.Unassign(h.GetDB(c), trainerID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client removed"})
}
