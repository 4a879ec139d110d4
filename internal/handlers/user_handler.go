package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/services"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/dashboard", h.Dashboard)
		me.PUT("/profile", h.UpdateProfile)

		// Legacy single-trainer selection.
		me.POST("/trainer", h.SelectTrainer)

		me.GET("/trainers", h.ListTrainers)
		me.POST("/trainers/:trainerId", h.AddTrainer)
		me.DELETE("/trainers/:trainerId", h.RemoveTrainer)
	}
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.Dashboard(h.GetDB(c), userID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) SelectTrainer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelectTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.SelectTrainer(h.GetDB(c), userID, &req, time.Now()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer selected"})
}

func (h *UserHandler) ListTrainers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.ListTrainers(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": resp})
}

func (h *UserHandler) AddTrainer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.AddTrainer(h.GetDB(c), userID, c.Param("trainerId"), time.Now()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer added"})
}

func (h *UserHandler) RemoveTrainer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.RemoveTrainer(h.GetDB(c), userID, c.Param("trainerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer removed"})
}
