package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService services.TrainerService
}

func NewTrainerHandler(base *BaseHandler, trainerService services.TrainerService) *TrainerHandler {
	return &TrainerHandler{BaseHandler: base, trainerService: trainerService}
}

func (h *TrainerHandler) RegisterRoutes(r *gin.RouterGroup) {
	trainers := r.Group("/trainers")
	{
		trainers.GET("", h.List)
		trainers.GET("/:trainerId", h.Get)
	}

	owner := r.Group("/owner/trainers")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleOwner))
	{
		owner.POST("", h.Create)
		owner.PUT("/:trainerId", h.Update)
		owner.DELETE("/:trainerId", h.Delete)
	}
}

func (h *TrainerHandler) List(c *gin.Context) {
	resp, err := h.trainerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": resp})
}

func (h *TrainerHandler) Get(c *gin.Context) {
	resp, err := h.trainerService.Get(h.GetDB(c), c.Param("trainerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.trainerService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	var req dto.UpdateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.trainerService.Update(h.GetDB(c), c.Param("trainerId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.trainerService.Delete(h.GetDB(c), c.Param("trainerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}
