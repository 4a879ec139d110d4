package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Create)

	owner := r.Group("/owner/contact")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleOwner))
	{
		owner.GET("", h.List)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.contactService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContactHandler) List(c *gin.Context) {
	resp, err := h.contactService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": resp})
}
