package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	owner := r.Group("/owner")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleOwner))
	{
		owner.GET("/owners", h.ListOwners)
		owner.POST("/owners", h.CreateOwner)
		owner.GET("/profile", h.Profile)
		owner.PUT("/profile", h.UpdateProfile)
		owner.GET("/stats", h.Stats)
	}
}

func (h *AdminHandler) ListOwners(c *gin.Context) {
	resp, err := h.adminService.ListOwners(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"owners": resp})
}

func (h *AdminHandler) CreateOwner(c *gin.Context) {
	var req dto.CreateOwnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.CreateOwner(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdminHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adminService.Profile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	resp, err := h.adminService.Stats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
