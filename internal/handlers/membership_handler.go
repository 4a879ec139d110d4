package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
}

func NewMembershipHandler(base *BaseHandler, membershipService services.MembershipService) *MembershipHandler {
	return &MembershipHandler{BaseHandler: base, membershipService: membershipService}
}

func (h *MembershipHandler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:planId", h.GetPlan)
	}

	membership := r.Group("/membership")
	membership.Use(middleware.AuthMiddleware())
	{
		membership.POST("/subscribe", h.SubscribeByTier)
		membership.POST("/subscribe-plan", h.SubscribeByPlanID)
	}

	owner := r.Group("/owner/plans")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleOwner))
	{
		owner.POST("", h.CreatePlan)
		owner.PUT("/:planId", h.UpdatePlan)
		owner.DELETE("/:planId", h.DeletePlan)
	}
}

func (h *MembershipHandler) ListPlans(c *gin.Context) {
	resp, err := h.membershipService.ListPlans(h.GetDB(c), time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": resp})
}

func (h *MembershipHandler) GetPlan(c *gin.Context) {
	resp, err := h.membershipService.GetPlan(h.GetDB(c), c.Param("planId"), time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) SubscribeByTier(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeByTierRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.SubscribeByTier(h.GetDB(c), userID, req.Plan, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) SubscribeByPlanID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeByPlanIDRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.SubscribeByPlanID(h.GetDB(c), userID, req.PlanID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.CreatePlan(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MembershipHandler) UpdatePlan(c *gin.Context) {
	var req dto.UpdatePlanRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.membershipService.UpdatePlan(h.GetDB(c), c.Param("planId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) DeletePlan(c *gin.Context) {
	if err := h.membershipService.DeletePlan(h.GetDB(c), c.Param("planId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
